// Package info provides the runner that describes the configuration in use.
package info

import (
	"context"
	"os"
	"strconv"

	"tableflip.dev/outliner/pkg/markup"
	"tableflip.dev/outliner/pkg/printers"
	"tableflip.dev/outliner/pkg/store"
)

// Details is what Info reports.
type Details struct {
	ConfigPath string   `json:"configPath,omitempty"`
	Registers  string   `json:"registers"`
	Clipboard  string   `json:"clipboard"`
	Marker     string   `json:"marker"`
	Markup     string   `json:"markup,omitempty"`
	Verify     bool     `json:"verify"`
	Markups    []string `json:"markups"`
	Stored     []string `json:"stored"`
}

type Info struct {
	// Config is loaded from disk when nil.
	Config  store.Config
	JSON    bool
	Printer printers.PrettyPrint
}

func (n *Info) Do(_ context.Context) error {
	if n.Config == nil {
		var err error
		if n.Config, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	d := Details{
		ConfigPath: os.Getenv("OUTLINER_CONFIG_PATH"),
		Registers:  n.Config.RegistersPath(),
		Clipboard:  n.Config.Clipboard(),
		Marker:     n.Config.Marker(),
		Markup:     n.Config.Markup(),
		Verify:     n.Config.Verify(),
		Markups:    markup.NewRegistry().Names(),
	}
	if d.Registers != "" {
		d.Stored = store.OpenRegisters(d.Registers).Names()
	}
	if n.JSON {
		return n.Printer.JSON(d)
	}

	config := d.ConfigPath
	if config == "" {
		config = "OUTLINER_CONFIG_PATH not set, searching . and $HOME"
	}
	markupType := d.Markup
	if markupType == "" {
		markupType = "by file extension"
	}
	n.Printer.Title("Config")
	n.Printer.Fields([][2]string{
		{"config", config},
		{"registers", d.Registers},
		{"clipboard", d.Clipboard},
		{"marker", d.Marker},
		{"markup", markupType},
		{"verify", strconv.FormatBool(d.Verify)},
	})
	n.Printer.Title("Markups")
	n.Printer.List(d.Markups)
	n.Printer.Title("Registers")
	n.Printer.List(d.Stored)
	return nil
}
