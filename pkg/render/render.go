// Package render linearizes a bound tree back into a string, wrapping
// every styled scope in SGR sequences. By the time it runs the tree is
// validated and bound, so rendering cannot fail.
package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/chubbymaggie/ecstasy/pkg/binder"
	"github.com/chubbymaggie/ecstasy/pkg/logging"
	"github.com/chubbymaggie/ecstasy/pkg/palette"
)

// Render walks the bound tree depth-first and accumulates the output
// string. A nil resolver means palette.Default().
func Render(root *binder.Span, resolver palette.Resolver) string {
	if resolver == nil {
		resolver = palette.Default()
	}

	r := &renderer{
		resolver: resolver,
	}
	r.span(root, nil)
	return r.out.String()
}

type renderer struct {
	resolver palette.Resolver
	out      strings.Builder
}

// span emits one scope: the composed opening sequence, the bound value
// and children, then the sequence restoring the parent's state.
func (r *renderer) span(s *binder.Span, parent []palette.Code) {
	state := parent
	styled := false

	for _, attr := range s.Named() {
		code, ok := r.resolver.Resolve(attr.Name)
		if !ok {
			logger := logging.GetLogger("render")
			logger.Debug().
				Str("attribute", attr.Name).
				Msg("attribute name unknown to the resolver, skipping")
			continue
		}
		state = compose(state, code)
		styled = true
	}

	if styled {
		r.emit(state)
	}

	if s.Bound {
		r.out.WriteString(s.Value)
	}
	for _, child := range s.Children {
		switch node := child.(type) {
		case *binder.Text:
			r.out.WriteString(node.Value)
		case *binder.Span:
			r.span(node, state)
		}
	}

	if styled {
		r.reset(parent)
	}
}

// compose returns the state with code applied: a code of a category
// already present displaces it in place, anything else appends.
func compose(state []palette.Code, code palette.Code) []palette.Code {
	next := make([]palette.Code, len(state))
	copy(next, state)
	for i, active := range next {
		if active.Category == code.Category {
			next[i] = code
			return next
		}
	}
	return append(next, code)
}

func (r *renderer) emit(state []palette.Code) {
	params := make([]string, len(state))
	for i, code := range state {
		params[i] = code.Params
	}
	r.out.WriteString(termenv.CSI + strings.Join(params, ";") + "m")
}

// reset clears the scope's formatting and restores the parent state
func (r *renderer) reset(parent []palette.Code) {
	params := []string{termenv.ResetSeq}
	for _, code := range parent {
		params = append(params, code.Params)
	}
	r.out.WriteString(termenv.CSI + strings.Join(params, ";") + "m")
}
