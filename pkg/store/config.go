package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is what the outliner reads from .outliner.yaml and the
// environment.
type Config interface {
	// RegistersPath is where clipboard registers are kept.
	RegistersPath() string
	// Clipboard is one of disk, system or memory.
	Clipboard() string
	Marker() string
	// Markup forces a markup type for every document.
	Markup() string
	// RStrip returns the characters trimmed from the right of headings for
	// a markup type.
	RStrip(markup string) string
	Verify() bool
}

func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("registers", "~/.outliner/registers")
	v.SetDefault("clipboard", "disk")
	v.SetDefault("marker", "{{{")
	v.SetDefault("verify", false)
	v.SetConfigName(".outliner") // .yaml is implicit
	v.SetEnvPrefix("OUTLINER")
	v.AutomaticEnv()

	if override := os.Getenv("OUTLINER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	registers, err := homedir.Expand(v.GetString("registers"))
	if err != nil {
		return nil, fmt.Errorf("registers path: %w", err)
	}

	return &fileConfig{
		Registers:     registers,
		ClipboardKind: v.GetString("clipboard"),
		FoldMarker:    v.GetString("marker"),
		MarkupType:    v.GetString("markup"),
		Strip:         v.GetStringMapString("rstrip"),
		VerifyEdits:   v.GetBool("verify"),
	}, nil
}

type fileConfig struct {
	Registers     string            `json:"registers"`
	ClipboardKind string            `json:"clipboard"`
	FoldMarker    string            `json:"marker"`
	MarkupType    string            `json:"markup"`
	Strip         map[string]string `json:"rstrip"`
	VerifyEdits   bool              `json:"verify"`
}

func (f *fileConfig) RegistersPath() string { return f.Registers }

func (f *fileConfig) Clipboard() string { return f.ClipboardKind }

func (f *fileConfig) Marker() string { return f.FoldMarker }

func (f *fileConfig) Markup() string { return f.MarkupType }

func (f *fileConfig) RStrip(markup string) string { return f.Strip[markup] }

func (f *fileConfig) Verify() bool { return f.VerifyEdits }

// MemoryConfig is the default configuration with the clipboard kept in
// memory and nothing read from disk.
func MemoryConfig() Config {
	return &fileConfig{
		ClipboardKind: "memory",
		FoldMarker:    "{{{",
	}
}
