// Package options holds the flag sets shared by outliner commands.
package options

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions choose between the colored text output and JSON.
type OutputOptions struct {
	JSON bool
	// Out receives JSON errors; color.Output when nil.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&o.JSON, "json", false,
		"Print results and errors as JSON.")
}

// HandleError passes err through, or in JSON mode prints it as
// {"error": "..."} and reports success so scripts read one JSON document.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.JSON {
		return err
	}
	w := o.Out
	if w == nil {
		w = color.Output
	}
	return json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{err.Error()})
}
