// Package index turns the emoji catalog into searchable descriptors.
package index

import (
	"strings"

	"emojipick/internal/catalog"
	"emojipick/internal/domain"
)

// BuildDescriptors creates one descriptor per catalog entry, in catalog order.
// It runs once per process; the result is shared read-only.
func BuildDescriptors(p catalog.Provider) []domain.Descriptor {
	entries := p.Entries()
	descriptors := make([]domain.Descriptor, 0, len(entries))
	for _, e := range entries {
		descriptors = append(descriptors, domain.Descriptor{
			Glyph:    e.Glyph,
			Name:     e.Name,
			Keywords: Keywords(e.Name, e.Aliases),
		})
	}
	return descriptors
}

// Keywords lowercases the name followed by every alias, joined with single spaces
func Keywords(name string, aliases []string) string {
	parts := make([]string, 0, len(aliases)+1)
	if name != "" {
		parts = append(parts, name)
	}
	for _, a := range aliases {
		if a != "" {
			parts = append(parts, a)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
