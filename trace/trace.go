// Package trace logs parser evaluation through commonlog. Wrapping is cheap
// when the log level is off; messages are emitted at debug level.
package trace

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/input"
	"github.com/dhamidi/parsec/parse"
)

var log = commonlog.GetLogger("parsec")

// Named wraps p so every evaluation logs its entry and outcome under name.
func Named[A any](p parse.Parser[A], name string) parse.Parser[A] {
	return NamedWith(p, name, log)
}

// NamedWith is Named with an explicit logger.
func NamedWith[A any](p parse.Parser[A], name string, logger commonlog.Logger) parse.Parser[A] {
	return parse.Observe(p, name, hook{logger})
}

type hook struct {
	log commonlog.Logger
}

func (h hook) Enter(name string, at input.Cursor) {
	h.log.Debugf("%s: enter at %d:%d", name, at.Line(), at.Column())
}

func (h hook) Exit(name string, at input.Cursor, ok, consumed bool, err error) {
	if ok {
		h.log.Debugf("%s: ok at %d:%d (consumed=%t)", name, at.Line(), at.Column(), consumed)
		return
	}
	h.log.Debugf("%s: fail at %d:%d (consumed=%t): %s", name, at.Line(), at.Column(), consumed, err)
}
