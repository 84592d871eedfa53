package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Demo grammars built on the parsec combinator core",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log parser evaluation (repeat for more detail)")

	rootCmd.AddCommand(newExprCmd())
	rootCmd.AddCommand(newCSVCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
