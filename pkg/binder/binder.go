// Package binder resolves a tag tree against the caller's positional
// arguments, producing a new bound tree and leaving the parse tree
// untouched.
//
// One cursor advances over the argument list for the whole traversal.
// Nesting affects rendering scope only; binding order is strictly the
// left-to-right, depth-first order tags appear in the source text.
package binder

import (
	"strconv"
	"strings"

	"github.com/chubbymaggie/ecstasy/pkg/config"
	"github.com/chubbymaggie/ecstasy/pkg/errors"
	"github.com/chubbymaggie/ecstasy/pkg/parser"
)

// Node is a bound tree element: either *Text or *Span.
type Node interface {
	isNode()
}

// Text is a literal run carried over from the parse tree
type Text struct {
	Value string
}

func (*Text) isNode() {}

// Span is a tag with its argument resolved. Value is set only when
// Bound is true; phrase and named-only tags render their children.
type Span struct {
	Attrs    []parser.Attr
	Value    string
	Bound    bool
	Children []Node
	Offset   int
}

func (*Span) isNode() {}

// Named returns the span's named attributes in source order
func (s *Span) Named() []parser.Attr {
	var named []parser.Attr
	for _, a := range s.Attrs {
		if a.Kind == parser.AttrNamed {
			named = append(named, a)
		}
	}
	return named
}

// Bind walks the tag tree and attaches one argument to every consuming
// tag. Arguments left over when the walk finishes produce an
// UNUSED_ARGUMENT warning, or an error when the options demand strict
// handling.
func Bind(root *parser.Tag, args []string, opts *config.Options) (*Span, []errors.Warning, error) {
	if opts == nil {
		opts = config.Default()
	}

	b := &binding{args: args}
	bound, err := b.bind(root)
	if err != nil {
		return nil, nil, err
	}

	var warnings []errors.Warning
	if leftover := len(args) - b.cursor; leftover > 0 {
		noun := "argument"
		if leftover > 1 {
			noun = "arguments"
		}
		msg := strconv.Itoa(leftover) + " positional " + noun + " supplied but never consumed"
		if opts.StrictUnusedArguments {
			return nil, nil, errors.New(errors.ErrUnusedArgument, msg)
		}
		warnings = append(warnings, errors.Warning{
			Code:    errors.ErrUnusedArgument,
			Message: msg,
			Offset:  errors.NoOffset,
		})
	}

	return bound, warnings, nil
}

type binding struct {
	args   []string
	cursor int
}

func (b *binding) bind(tag *parser.Tag) (*Span, error) {
	span := &Span{Attrs: tag.Attrs, Offset: tag.Offset}

	if tag.Consuming() {
		if b.cursor >= len(b.args) {
			return nil, errors.Newf(errors.ErrMissingArgument,
				"tag requests %s argument but only %d supplied",
				ordinal(b.cursor+1), len(b.args)).WithOffset(tag.Offset)
		}
		span.Value = b.args[b.cursor]
		span.Bound = true
		b.cursor++
	}

	for _, child := range tag.Children {
		switch node := child.(type) {
		case *parser.Text:
			span.Children = append(span.Children, &Text{Value: node.Value})
		case *parser.Tag:
			boundChild, err := b.bind(node)
			if err != nil {
				return nil, err
			}
			span.Children = append(span.Children, boundChild)
		}
	}

	return span, nil
}

// ordinal renders a spoken-word position such as "a 1st" or "an 8th"
func ordinal(n int) string {
	digits := strconv.Itoa(n)

	// "an 8th", "an 11th", "an 11000th"; everything else takes "a"
	article := "a"
	if strings.HasPrefix(digits, "8") || digits == "11" || digits[:len(digits)%3] == "11" {
		article = "an"
	}

	suffix := "th"
	switch {
	case strings.HasSuffix(digits, "1") && !strings.HasSuffix(digits, "11"):
		suffix = "st"
	case strings.HasSuffix(digits, "2") && !strings.HasSuffix(digits, "12"):
		suffix = "nd"
	case strings.HasSuffix(digits, "3") && !strings.HasSuffix(digits, "13"):
		suffix = "rd"
	}

	return article + " " + digits + suffix
}
