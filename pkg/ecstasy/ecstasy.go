// Package ecstasy renders strings with inline style tags into strings
// carrying ANSI escape sequences.
//
//	out, err := ecstasy.Render("`red{A`blue{B}C}", nil, nil)
//
// runs the whole pipeline: scan the input into tokens, build the tag
// tree, bind positional arguments, render with the default palette.
// Each call is a stateless single-pass transform; concurrent calls
// need no synchronization.
package ecstasy

import (
	"github.com/chubbymaggie/ecstasy/pkg/binder"
	"github.com/chubbymaggie/ecstasy/pkg/config"
	"github.com/chubbymaggie/ecstasy/pkg/errors"
	"github.com/chubbymaggie/ecstasy/pkg/logging"
	"github.com/chubbymaggie/ecstasy/pkg/palette"
	"github.com/chubbymaggie/ecstasy/pkg/parser"
	"github.com/chubbymaggie/ecstasy/pkg/render"
	"github.com/chubbymaggie/ecstasy/pkg/scanner"
)

// Result is a rendered string together with the non-fatal diagnostics
// collected along the way.
type Result struct {
	Output   string
	Warnings []errors.Warning
}

// Beautifier runs the render pipeline with a fixed resolver and
// options. It holds no per-call state, so one Beautifier may serve
// many goroutines.
type Beautifier struct {
	resolver palette.Resolver
	opts     *config.Options
}

// New creates a Beautifier. A nil resolver means palette.Default(), a
// nil opts means config.Default().
func New(resolver palette.Resolver, opts *config.Options) (*Beautifier, error) {
	if resolver == nil {
		resolver = palette.Default()
	}
	if opts == nil {
		opts = config.Default()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Beautifier{resolver: resolver, opts: opts}, nil
}

// RenderDetailed transforms input, binding args to its consuming tags,
// and returns the output along with any warnings. All errors carry the
// byte offset of the offending syntax.
func (b *Beautifier) RenderDetailed(input string, args []string) (*Result, error) {
	tokens, err := scanner.Scan(input, b.opts)
	if err != nil {
		return nil, err
	}
	root, err := parser.Build(tokens, b.opts)
	if err != nil {
		return nil, err
	}
	bound, warnings, err := binder.Bind(root, args, b.opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Output:   render.Render(bound, b.resolver),
		Warnings: warnings,
	}, nil
}

// Render is RenderDetailed with warnings routed to the log
func (b *Beautifier) Render(input string, args []string) (string, error) {
	result, err := b.RenderDetailed(input, args)
	if err != nil {
		return "", err
	}
	logger := logging.GetLogger("ecstasy")
	for _, w := range result.Warnings {
		logger.Warn().Str("code", string(w.Code)).Msg(w.Message)
	}
	return result.Output, nil
}

// Render transforms input in one call with the default palette
func Render(input string, args []string, opts *config.Options) (string, error) {
	b, err := New(nil, opts)
	if err != nil {
		return "", err
	}
	return b.Render(input, args)
}
