// Package scanner turns raw markup text into a flat token stream.
// It recognizes tag opens (open delimiter, attribute list, body-open
// brace), body closes, escaped characters and literal runs; every
// token carries the byte offset of its first character so later stages
// can report precise positions.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/chubbymaggie/ecstasy/pkg/config"
	"github.com/chubbymaggie/ecstasy/pkg/errors"
)

// Kind discriminates the token variants
type Kind int

const (
	// Literal is a run of plain text
	Literal Kind = iota
	// Open is a tag open; Text holds the raw attribute list
	Open
	// Close is a body-close delimiter
	Close
	// Escaped is a single character stripped of its syntactic meaning
	Escaped
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Open:
		return "open"
	case Close:
		return "close"
	case Escaped:
		return "escaped"
	}
	return "unknown"
}

// Token is one element of the scanned stream. Tokens are immutable
// once produced.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// Scan converts input into an ordered token sequence. It is a pure
// function of its arguments; a nil opts means config.Default().
//
// A body-open brace that does not terminate an attribute list opens a
// plain brace pair: it and its matching close render verbatim. An
// escaped body-open brace opens a plain pair the same way. Only a
// close brace with nothing open at all is emitted as a Close token,
// which the builder then rejects as unmatched. This keeps escaped-open
// tags fully literal without forcing callers to escape their braces.
func Scan(input string, opts *config.Options) ([]Token, error) {
	if opts == nil {
		opts = config.Default()
	}

	const (
		tagScope = iota
		plainScope
	)
	var scopes []int

	var tokens []Token
	var lit strings.Builder
	litStart := 0

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String(), Offset: litStart})
			lit.Reset()
		}
	}
	write := func(r rune, at int) {
		if lit.Len() == 0 {
			litStart = at
		}
		lit.WriteRune(r)
	}

	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch r {
		case opts.Escape:
			if i+size >= len(input) {
				// Trailing escape escapes nothing
				write(r, i)
				i += size
				continue
			}
			next, nextSize := utf8.DecodeRuneInString(input[i+size:])
			if isMarker(next, opts) {
				flush()
				tokens = append(tokens, Token{Kind: Escaped, Text: string(next), Offset: i})
				// An escaped body-open brace still pairs with a close,
				// same as a bare one
				if next == opts.BodyOpen {
					scopes = append(scopes, plainScope)
				}
				i += size + nextSize
			} else {
				write(r, i)
				i += size
			}

		case opts.OpenDelim:
			flush()
			attrs, end, err := scanAttrList(input, i, size, opts)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: Open, Text: attrs, Offset: i})
			scopes = append(scopes, tagScope)
			i = end

		case opts.BodyOpen:
			// Not part of a tag open, so it starts a plain brace pair
			write(r, i)
			scopes = append(scopes, plainScope)
			i += size

		case opts.BodyClose:
			if len(scopes) > 0 && scopes[len(scopes)-1] == plainScope {
				scopes = scopes[:len(scopes)-1]
				write(r, i)
				i += size
				continue
			}
			if len(scopes) > 0 {
				scopes = scopes[:len(scopes)-1]
			}
			flush()
			tokens = append(tokens, Token{Kind: Close, Offset: i})
			i += size

		default:
			write(r, i)
			i += size
		}
	}
	flush()

	return tokens, nil
}

// scanAttrList reads from the character after the open delimiter at
// start up to the body-open brace, returning the raw attribute list
// and the index just past the brace.
func scanAttrList(input string, start, delimSize int, opts *config.Options) (string, int, error) {
	j := start + delimSize
	for j < len(input) {
		r, size := utf8.DecodeRuneInString(input[j:])
		switch r {
		case opts.BodyOpen:
			attrs := input[start+delimSize : j]
			if strings.TrimSpace(attrs) == "" {
				return "", 0, errors.New(errors.ErrMalformedTag,
					"tag has an empty attribute list").WithOffset(start)
			}
			return attrs, j + size, nil
		case opts.OpenDelim, opts.BodyClose, '\n':
			return "", 0, errors.Newf(errors.ErrMalformedTag,
				"attribute list interrupted by %q", r).WithOffset(j)
		}
		j += size
	}
	return "", 0, errors.New(errors.ErrMalformedTag,
		"tag is never followed by a body").WithOffset(start)
}

func isMarker(r rune, opts *config.Options) bool {
	return r == opts.Escape || r == opts.OpenDelim || r == opts.BodyOpen || r == opts.BodyClose
}
