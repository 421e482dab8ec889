// Package catalog is the static registry of block types: how each type is
// styled, how it is prefixed in the assembled prompt, and what the palette
// offers when a block of that type is dropped onto the canvas.
package catalog

import "promptstudio/internal/domain"

// FallbackType is the entry served for block types missing from the registry.
const FallbackType = domain.BlockTypeInstruction

// Lookup returns the config for t, falling back to the instruction entry.
func Lookup(t domain.BlockType) domain.BlockConfig {
	if cfg, ok := configs[t]; ok {
		return cfg
	}
	return configs[FallbackType]
}

// Has reports whether t is a registered block type.
func Has(t domain.BlockType) bool {
	_, ok := configs[t]
	return ok
}

// Types returns every registered block type in palette order.
func Types() []domain.BlockType {
	types := make([]domain.BlockType, 0, len(configs))
	for _, g := range palette {
		for _, e := range g.Entries {
			types = append(types, e.Type)
		}
	}
	return types
}

// Palette returns a copy of the palette groups.
func Palette() []PaletteGroup {
	out := make([]PaletteGroup, len(palette))
	for i, g := range palette {
		out[i] = PaletteGroup{
			Name:    g.Name,
			Emoji:   g.Emoji,
			Entries: append([]PaletteEntry(nil), g.Entries...),
		}
	}
	return out
}

// Entry returns the palette entry for t.
func Entry(t domain.BlockType) (PaletteEntry, bool) {
	for _, g := range palette {
		for _, e := range g.Entries {
			if e.Type == t {
				return e, true
			}
		}
	}
	return PaletteEntry{}, false
}

// DefaultContent returns the text a freshly dropped block of type t starts with.
func DefaultContent(t domain.BlockType) string {
	e, _ := Entry(t)
	return e.DefaultContent
}
