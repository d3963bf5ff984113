package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// DocumentOptions pick the file a command works on and how it is read.
type DocumentOptions struct {
	Path     string
	Markup   string
	Register string
}

func AddDocumentArgs(cmd *cobra.Command, o *DocumentOptions) {
	cmd.Flags().StringVarP(&o.Markup, "markup", "m", "",
		"Force the markup type (fmr, markdown, html, wiki, vimwiki, viki, org, rest).")
	cmd.Flags().StringVarP(&o.Register, "register", "r", "",
		`Clipboard register used by cut, copy and paste. Defaults to "+".`)
}

// DocumentArg takes the document path from the first argument.
func DocumentArg(o *DocumentOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires a document path")
		}
		o.Path = args[0]
		return nil
	}
}
