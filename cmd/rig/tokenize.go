package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rig/internal/diagfmt"
	"rig/internal/driver"
)

func newTokenizeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.rig",
		Short: "Tokenize a rig source file",
		Long:  `Tokenize breaks a rig source file into tokens and prints them`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "pretty", "json", "msgpack":
			default:
				return fmt.Errorf("unknown format %q (want pretty|json|msgpack)", format)
			}
			res, err := driver.Tokenize(args[0], a.driverOptions())
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			if err := diagfmt.Pretty(stderr, res.Bag, res.FileSet, a.prettyOpts(stderr)); err != nil {
				return fmt.Errorf("write diagnostics: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				err = diagfmt.FormatTokensJSON(out, res.Tokens)
			case "msgpack":
				err = diagfmt.FormatTokensMsgpack(out, res.Tokens)
			default:
				err = diagfmt.FormatTokensPretty(out, res.Tokens)
			}
			if err != nil {
				return fmt.Errorf("write tokens: %w", err)
			}
			if res.Bag.HasErrors() {
				return errDiagnostics
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}
