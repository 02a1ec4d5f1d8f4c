// Package catalog provides the fixed emoji catalog the picker is built from.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/yuin/goldmark-emoji/definition"

	"emojipick/internal/domain"
)

//go:embed emoji.json
var emojiJSON []byte

// Provider exposes an ordered, exhaustive list of catalog entries
type Provider interface {
	Entries() []domain.Emoji
}

// rawEmoji mirrors the gemoji JSON layout
type rawEmoji struct {
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Aliases     []string `json:"aliases"`
}

type embedded struct{}

var (
	embeddedOnce    sync.Once
	embeddedEntries []domain.Emoji
)

// Embedded returns the compiled-in catalog
func Embedded() Provider {
	return embedded{}
}

func (embedded) Entries() []domain.Emoji {
	embeddedOnce.Do(func() {
		entries, err := decode(emojiJSON)
		if err != nil {
			// The file is compiled in; a decode failure is a build defect
			panic(fmt.Sprintf("catalog: embedded emoji.json: %v", err))
		}
		embeddedEntries = entries
	})
	return embeddedEntries
}

func decode(data []byte) ([]domain.Emoji, error) {
	var raw []rawEmoji
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	entries := make([]domain.Emoji, 0, len(raw))
	for i, r := range raw {
		if r.Emoji == "" {
			return nil, fmt.Errorf("entry %d has no glyph", i)
		}
		entries = append(entries, domain.Emoji{
			Glyph:    r.Emoji,
			Name:     r.Description,
			Aliases:  r.Aliases,
			Category: r.Category,
		})
	}
	return entries, nil
}

type static []domain.Emoji

// Static wraps a fixed list of entries
func Static(entries ...domain.Emoji) Provider {
	return static(entries)
}

func (s static) Entries() []domain.Emoji {
	return s
}

type shortcodes struct {
	base  Provider
	table definition.Emojis
}

// WithShortcodes adds the short names a shortcode table knows for any of an
// entry's aliases. Own aliases keep their order and come first.
func WithShortcodes(base Provider, table definition.Emojis) Provider {
	return &shortcodes{base: base, table: table}
}

// GitHub is the embedded catalog enriched with GitHub's shortcode table
func GitHub() Provider {
	return WithShortcodes(Embedded(), definition.Github())
}

func (s *shortcodes) Entries() []domain.Emoji {
	base := s.base.Entries()
	out := make([]domain.Emoji, len(base))
	for i, e := range base {
		out[i] = s.enrich(e)
	}
	return out
}

func (s *shortcodes) enrich(e domain.Emoji) domain.Emoji {
	seen := make(map[string]bool, len(e.Aliases))
	aliases := make([]string, 0, len(e.Aliases))
	for _, a := range e.Aliases {
		if !seen[a] {
			seen[a] = true
			aliases = append(aliases, a)
		}
	}

	for _, a := range e.Aliases {
		def, ok := s.table.Get(a)
		if !ok {
			continue
		}
		if e.Name == "" {
			e.Name = def.Name
		}
		for _, short := range def.ShortNames {
			if !seen[short] {
				seen[short] = true
				aliases = append(aliases, short)
			}
		}
	}

	e.Aliases = aliases
	return e
}
