package store

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/outliner/pkg/host"
)

// DefaultRegister is the register cut, copy and paste use unless told
// otherwise.
const DefaultRegister = "+"

const registerPrefix = "register"

// Registers keeps named clipboard registers on disk so text cut in one
// invocation can be pasted in the next.
type Registers struct {
	d        *diskv.Diskv
	basePath string
}

// OpenRegisters returns the registers stored under basePath.
func OpenRegisters(basePath string) *Registers {
	return &Registers{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}
}

// Get returns the text of a register, "" when it was never set.
func (r *Registers) Get(name string) (string, error) {
	key := toKey(name)
	if !r.d.Has(key) {
		return "", nil
	}
	b, err := r.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("store: read register %q: %w", name, err)
	}
	return string(b), nil
}

// Set replaces the text of a register.
func (r *Registers) Set(name, text string) error {
	if err := r.d.Write(toKey(name), []byte(text)); err != nil {
		return fmt.Errorf("store: write register %q: %w", name, err)
	}
	return nil
}

// Clear removes a register.
func (r *Registers) Clear(name string) error {
	key := toKey(name)
	if !r.d.Has(key) {
		return nil
	}
	return r.d.Erase(key)
}

// Names lists the registers that hold text.
func (r *Registers) Names() []string {
	var names []string
	for key := range r.d.Keys(nil) {
		if name, ok := fromKey(key); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Clipboard exposes one register as a clipboard.
func (r *Registers) Clipboard(name string) host.ClipboardStore {
	return &register{r: r, name: name}
}

type register struct {
	r    *Registers
	name string
}

func (c *register) Read() (string, error) { return c.r.Get(c.name) }

func (c *register) Write(text string) error { return c.r.Set(c.name, text) }

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `register-<hex name>`
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", registerPrefix, hex.EncodeToString([]byte(name)))
}

func fromKey(key string) (string, bool) {
	enc, ok := strings.CutPrefix(key, registerPrefix+"-")
	if !ok {
		return "", false
	}
	b, err := hex.DecodeString(enc)
	if err != nil {
		return "", false
	}
	return string(b), true
}
