package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lisper",
	Short: "A small scheme-family lisp interpreter",
	Long: `lisper evaluates programs in a small scheme-family lisp with lexical
scoping, closures and self-referential function definitions.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
