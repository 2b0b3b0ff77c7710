package parser

// AttrKind discriminates the attribute specifier variants
type AttrKind int

const (
	// AttrNamed is a style attribute looked up through the resolver
	AttrNamed AttrKind = iota
	// AttrPositional consumes the next caller argument
	AttrPositional
	// AttrPhrase embeds the tag's own written content, consuming nothing
	AttrPhrase
	// AttrOverride forces argument consumption for an otherwise
	// non-consuming tag
	AttrOverride
)

func (k AttrKind) String() string {
	switch k {
	case AttrNamed:
		return "named"
	case AttrPositional:
		return "positional"
	case AttrPhrase:
		return "phrase"
	case AttrOverride:
		return "override"
	}
	return "unknown"
}

// Attr is one entry of a tag's attribute list. Name is set for named
// attributes only. Order within a tag defines rendering precedence.
type Attr struct {
	Kind AttrKind
	Name string
}

// Node is a tag tree element: either *Text or *Tag.
type Node interface {
	isNode()
}

// Text is an immutable literal run. It inherits the formatting of its
// enclosing tag.
type Text struct {
	Value  string
	Offset int
}

func (*Text) isNode() {}

// Tag is a markup span: an attribute list applied to child content.
// The tree root is an implicit tag with no attributes.
type Tag struct {
	Attrs    []Attr
	Children []Node
	Offset   int
}

func (*Tag) isNode() {}

// Consuming reports whether the tag binds a caller argument
func (t *Tag) Consuming() bool {
	for _, a := range t.Attrs {
		if a.Kind == AttrPositional || a.Kind == AttrOverride {
			return true
		}
	}
	return false
}

// Phrase reports whether the tag carries the phrase marker
func (t *Tag) Phrase() bool {
	for _, a := range t.Attrs {
		if a.Kind == AttrPhrase {
			return true
		}
	}
	return false
}

// Named returns the tag's named attributes in source order
func (t *Tag) Named() []Attr {
	var named []Attr
	for _, a := range t.Attrs {
		if a.Kind == AttrNamed {
			named = append(named, a)
		}
	}
	return named
}
