// Package parser assembles the scanner's token stream into a tag tree.
// The builder keeps an explicit stack of open tags instead of
// recursing, so adversarially deep nesting cannot exhaust the call
// stack and failure offsets fall out of the tokens directly.
package parser

import (
	"strings"

	"github.com/chubbymaggie/ecstasy/pkg/config"
	"github.com/chubbymaggie/ecstasy/pkg/errors"
	"github.com/chubbymaggie/ecstasy/pkg/scanner"
)

// Build consumes tokens and produces the tag tree. The returned root
// is an implicit top-level tag holding the whole document.
func Build(tokens []scanner.Token, opts *config.Options) (*Tag, error) {
	if opts == nil {
		opts = config.Default()
	}

	root := &Tag{}
	stack := []*Tag{root}

	for _, tok := range tokens {
		top := stack[len(stack)-1]
		switch tok.Kind {
		case scanner.Literal, scanner.Escaped:
			top.Children = append(top.Children, &Text{Value: tok.Text, Offset: tok.Offset})

		case scanner.Open:
			attrs, err := parseAttrs(tok.Text, tok.Offset, opts)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Tag{Attrs: attrs, Offset: tok.Offset})

		case scanner.Close:
			if len(stack) == 1 {
				return nil, errors.New(errors.ErrNesting,
					"closing brace with no open tag").WithOffset(tok.Offset)
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, closed)
		}
	}

	if len(stack) > 1 {
		unclosed := stack[len(stack)-1]
		return nil, errors.New(errors.ErrNesting,
			"tag is never closed").WithOffset(unclosed.Offset)
	}
	return root, nil
}

// parseAttrs splits a raw attribute list on the separator, trims each
// entry and classifies it as a marker or a named attribute. Attributes
// are unique as a set; their order is preserved for rendering
// precedence.
func parseAttrs(raw string, offset int, opts *config.Options) ([]Attr, error) {
	parts := strings.Split(raw, string(opts.Separator))

	attrs := make([]Attr, 0, len(parts))
	seenNames := make(map[string]bool)
	seenKinds := make(map[AttrKind]bool)

	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			return nil, errors.New(errors.ErrMalformedTag,
				"empty entry in attribute list").WithOffset(offset)
		}

		var attr Attr
		switch {
		case len([]rune(entry)) == 1 && isMarker([]rune(entry)[0]):
			attr = Attr{Kind: markerKind([]rune(entry)[0])}
			if seenKinds[attr.Kind] {
				return nil, errors.Newf(errors.ErrAttributeConflict,
					"duplicate %s marker", attr.Kind).WithOffset(offset)
			}
			seenKinds[attr.Kind] = true
		case strings.ContainsAny(entry, markerGlyphs):
			return nil, errors.Newf(errors.ErrMalformedTag,
				"marker in %q must stand alone in the attribute list", entry).WithOffset(offset)
		default:
			attr = Attr{Kind: AttrNamed, Name: entry}
			if seenNames[entry] {
				return nil, errors.Newf(errors.ErrAttributeConflict,
					"duplicate attribute %q", entry).WithOffset(offset)
			}
			seenNames[entry] = true
		}
		attrs = append(attrs, attr)
	}

	// A phrase supplies its own content; consuming an argument at the
	// same time is contradictory.
	if seenKinds[AttrPhrase] && (seenKinds[AttrPositional] || seenKinds[AttrOverride]) {
		return nil, errors.New(errors.ErrAttributeConflict,
			"phrase marker cannot be combined with argument consumption").WithOffset(offset)
	}

	return attrs, nil
}

var markerGlyphs = string([]rune{
	config.MarkerPositional, config.MarkerPhrase, config.MarkerOverride,
})

func isMarker(r rune) bool {
	return strings.ContainsRune(markerGlyphs, r)
}

func markerKind(r rune) AttrKind {
	switch r {
	case config.MarkerPositional:
		return AttrPositional
	case config.MarkerPhrase:
		return AttrPhrase
	default:
		return AttrOverride
	}
}
