package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/trace"
)

func newCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv [file]",
		Short: "Parse CSV input and print the rows as JSON",
		Long: `Parse comma-separated values with double-quoted fields.

If a file is provided it is read; otherwise input comes from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			rows, err := parse.ParseFully(trace.Named(csvParser(), "csv"), string(data))
			if err != nil {
				return err
			}
			if n := len(rows); n > 0 && len(rows[n-1]) == 1 && rows[n-1][0] == "" {
				// a trailing newline produces one empty record
				rows = rows[:n-1]
			}
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func csvParser() parse.Parser[[][]string] {
	runesToString := func(rs []rune) string { return string(rs) }

	bare := parse.Map(parse.Many(parse.NoneOf(",\"\r\n")), runesToString)
	escapedQuote := parse.As(parse.Atomic(parse.String(`""`)), '"')
	quoted := parse.Then(parse.Rune('"'),
		parse.ThenSkip(
			parse.Map(parse.Many(parse.Alt(escapedQuote, parse.NoneOf(`"`))), runesToString),
			parse.Label(parse.Rune('"'), "closing quote")))
	field := parse.Alt(quoted, bare)

	record := parse.SepBy1(field, parse.Rune(','))
	newline := parse.Alt(parse.Atomic(parse.String("\r\n")), parse.String("\n"))
	return parse.SepEndBy(record, newline)
}
