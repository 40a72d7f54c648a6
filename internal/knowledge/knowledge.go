// Package knowledge provides the reference blurbs shown for each architecture style.
package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/archsurvey/schema"
	"gopkg.in/yaml.v3"
)

//go:embed contexts.yaml
var defaultContexts []byte

// ErrContextNotFound is returned when no blurb exists for a style.
var ErrContextNotFound = errors.New("architecture context not found")

// Library holds one context per architecture style.
type Library struct {
	contexts map[schema.Style]schema.ArchitectureContext
}

// Default returns the embedded library.
func Default() (*Library, error) {
	lib := &Library{contexts: make(map[schema.Style]schema.ArchitectureContext)}
	if err := lib.merge(defaultContexts); err != nil {
		return nil, fmt.Errorf("failed to parse embedded contexts: %w", err)
	}
	return lib, nil
}

// Load returns the embedded library with the entries of path layered on top.
// An empty path yields the embedded library alone.
func Load(path string) (*Library, error) {
	lib, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}
	if err := lib.merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse context file %s: %w", path, err)
	}
	return lib, nil
}

// merge decodes a YAML document keyed by style and overrides matching entries.
func (l *Library) merge(data []byte) error {
	var raw map[string]schema.ArchitectureContext
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, ctx := range raw {
		style := schema.Style(strings.ToLower(strings.TrimSpace(key)))
		if _, ok := schema.ValidStyles[style]; !ok {
			return fmt.Errorf("unknown architecture style '%s'", key)
		}
		ctx.Style = style
		l.contexts[style] = ctx
	}
	return nil
}

// Lookup returns the context for a style.
func (l *Library) Lookup(style schema.Style) (schema.ArchitectureContext, error) {
	ctx, ok := l.contexts[style]
	if !ok {
		return schema.ArchitectureContext{}, fmt.Errorf("%w: %s", ErrContextNotFound, style)
	}
	return ctx, nil
}

// Styles returns the styles that have a context, in canonical order.
func (l *Library) Styles() []schema.Style {
	var styles []schema.Style
	for _, s := range schema.AllStyles {
		if _, ok := l.contexts[s]; ok {
			styles = append(styles, s)
		}
	}
	return styles
}
