package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"rig/internal/diagfmt"
	"rig/internal/driver"
)

var parseFormats = []string{"tree", "json", "yaml", "msgpack", "source"}

func newParseCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse [flags] file.rig",
		Short: "Parse a rig source file and print its AST",
		Long: `Parse builds the syntax tree of a rig source file. The tree is printed
even when syntax errors were reported; it then holds every unit that parsed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(parseFormats, format) {
				return fmt.Errorf("unknown format %q (want tree|json|yaml|msgpack|source)", format)
			}
			res, err := driver.Parse(args[0], a.driverOptions())
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
				err = diagfmt.FormatASTJSON(out, res.Builder, res.ASTFile)
			case "yaml":
				err = diagfmt.FormatASTYAML(out, res.Builder, res.ASTFile)
			case "msgpack":
				err = diagfmt.FormatASTMsgpack(out, res.Builder, res.ASTFile)
			case "source":
				err = diagfmt.FormatSource(out, res.Builder, res.ASTFile)
			default:
				err = diagfmt.FormatASTTree(out, res.Builder, res.ASTFile, res.FileSet)
			}
			if err != nil {
				return fmt.Errorf("write ast: %w", err)
			}
			if res.Bag.HasErrors() {
				return errDiagnostics
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "tree", "output format (tree|json|yaml|msgpack|source)")
	return cmd
}

