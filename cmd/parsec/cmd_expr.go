package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/trace"
)

func newExprCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expr [expression]",
		Short: "Evaluate an integer arithmetic expression",
		Long: `Evaluate an expression with +, -, *, /, and parentheses.

If no expression is provided, reads one from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			if len(args) == 1 {
				src = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				src = strings.TrimRight(string(data), "\n")
			}

			value, err := parse.ParseFully(trace.Named(exprParser(), "expr"), src)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func spaces() parse.Parser[parse.Unit] {
	return parse.Hide(parse.SkipMany(parse.Satisfy(func(r rune) bool { return r == ' ' || r == '\t' })))
}

func lexeme[A any](p parse.Parser[A]) parse.Parser[A] {
	return parse.ThenSkip(p, spaces())
}

func symbol(s string) parse.Parser[string] {
	return lexeme(parse.String(s))
}

func number() parse.Parser[int64] {
	digits := parse.Some(parse.Satisfy(isDigit, "digit"))
	value := func(ds []rune) int64 {
		var n int64
		for _, d := range ds {
			n = n*10 + int64(d-'0')
		}
		return n
	}
	return lexeme(parse.Label(parse.Map(digits, value), "number"))
}

type binop func(int64, int64) int64

// chain parses p followed by zero or more (operator, operand) steps and
// folds them left-associatively.
func chain(p parse.Parser[int64], step parse.Parser[parse.Pair[binop, int64]]) parse.Parser[int64] {
	return parse.Lift2(func(first int64, steps []parse.Pair[binop, int64]) int64 {
		acc := first
		for _, s := range steps {
			acc = s.First(acc, s.Second)
		}
		return acc
	}, p, parse.Many(step))
}

func exprParser() parse.Parser[int64] {
	var expr func() parse.Parser[int64]

	atom := func() parse.Parser[int64] {
		paren := parse.Then(symbol("("), parse.ThenSkip(parse.Lazy(func() parse.Parser[int64] { return expr() }), symbol(")")))
		return parse.Alt(number(), paren)
	}

	term := func() parse.Parser[int64] {
		operand := atom()
		nonZero := parse.FilterOut(operand, func(v int64) (string, bool) {
			if v == 0 {
				return "division by zero", true
			}
			return "", false
		})
		step := parse.Alt(
			parse.Both(parse.As(symbol("*"), binop(func(a, b int64) int64 { return a * b })), operand),
			parse.Both(parse.As(symbol("/"), binop(func(a, b int64) int64 { return a / b })), nonZero),
		)
		return chain(operand, step)
	}

	expr = func() parse.Parser[int64] {
		operand := term()
		step := parse.Alt(
			parse.Both(parse.As(symbol("+"), binop(func(a, b int64) int64 { return a + b })), operand),
			parse.Both(parse.As(symbol("-"), binop(func(a, b int64) int64 { return a - b })), operand),
		)
		return chain(operand, step)
	}

	return parse.Then(spaces(), expr())
}
