package domain

// Emoji is one entry of the emoji catalog
type Emoji struct {
	Glyph    string
	Name     string   // canonical name, e.g. "grinning face"
	Aliases  []string // shortcodes without colons, e.g. "grinning"
	Category string
}

// Descriptor pairs a glyph with its normalized searchable keywords.
// Descriptors are built once at startup and shared read-only.
type Descriptor struct {
	Glyph    string
	Name     string
	Keywords string // lowercased name followed by aliases, space separated
}
