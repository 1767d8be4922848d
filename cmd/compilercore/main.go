// Command compilercore is a thin front end over the regex pipeline. It
// performs no algorithmic work itself — it only wires
// github.com/spf13/cobra flag/command parsing to the regex package
// (spec §1: CLI wiring is out of core scope; carried here as ambient
// tooling in the manner of the teacher's lang/cmd/cow-lang/main.go).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shadowCow/compilercore/internal/diag"
	"github.com/shadowCow/compilercore/regex"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "compilercore",
		Short: "Regex-to-DFA and grammar-to-LALR compiler core",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				diag.SetDebug()
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log build diagnostics")

	regexCmd := &cobra.Command{Use: "regex", Short: "Regex compilation commands"}
	regexCmd.AddCommand(newRegexCompileCmd(), newRegexMatchCmd())

	root.AddCommand(regexCmd)
	return root
}

func newRegexCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <pattern>",
		Short: "Compile a pattern and print its postfix form and minimized DFA size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regex.Compile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("postfix: %s\n", re.Postfix)
			fmt.Printf("minimized DFA states: %d\n", len(re.DFA.States))
			return nil
		},
	}
}

func newRegexMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report whether input is accepted by pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regex.Compile(args[0])
			if err != nil {
				return err
			}
			if re.MatchString(args[1]) {
				fmt.Println("accept")
			} else {
				fmt.Println("reject")
			}
			return nil
		},
	}
}
