package markup

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Options configure adapters that take settings.
type Options struct {
	// Marker is the start fold marker, DefaultMarker when empty.
	Marker string
	// RStrip is trimmed from the right of fold marker headings.
	RStrip string
}

// Factory builds a fresh adapter. Adapters may keep per-document state, so
// every document gets its own instance.
type Factory func(Options) Adapter

// Registry maps markup names and file extensions to adapters.
type Registry struct {
	factories  map[string]Factory
	extensions map[string]string
}

// Default is the name used when nothing else matches.
const Default = "fmr"

// NewRegistry returns a registry holding every built-in adapter.
func NewRegistry() *Registry {
	r := &Registry{
		factories:  make(map[string]Factory),
		extensions: make(map[string]string),
	}
	r.Register("fmr", func(o Options) Adapter { return NewFoldMarker(o.Marker, o.RStrip) })
	r.Register("html", func(Options) Adapter { return HTML{} }, ".html", ".htm", ".xhtml")
	r.Register("wiki", func(Options) Adapter { return NewWiki() }, ".wiki", ".mediawiki", ".mw")
	r.Register("vimwiki", func(Options) Adapter { return NewVimwiki() })
	r.Register("viki", func(Options) Adapter { return Asterisk{} }, ".viki")
	r.Register("org", func(Options) Adapter { return Asterisk{} }, ".org")
	r.Register("rest", func(Options) Adapter { return NewRest() }, ".rst", ".rest")
	r.Register("markdown", func(Options) Adapter { return NewMarkdown() }, ".md", ".markdown")
	return r
}

// Register adds or replaces a factory and claims the given extensions.
func (r *Registry) Register(name string, f Factory, exts ...string) {
	r.factories[name] = f
	for _, ext := range exts {
		r.extensions[strings.ToLower(ext)] = name
	}
}

// New builds the adapter registered as name.
func (r *Registry) New(name string, o Options) (Adapter, error) {
	f, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("markup: unknown type %q", name)
	}
	return f(o), nil
}

// ForFile picks an adapter by file extension, falling back to fold markers.
func (r *Registry) ForFile(filename string, o Options) Adapter {
	name, ok := r.extensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		name = Default
	}
	return r.factories[name](o)
}

// Names lists the registered markup types.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
