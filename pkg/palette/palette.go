// Package palette maps friendly attribute names ("red", "bold",
// "on-blue", "#ff8800") to SGR parameter strings. The renderer treats
// the mapping as an injected read-only collaborator, so callers can
// swap in their own tables.
package palette

import (
	"strings"

	"github.com/muesli/termenv"
)

// Category groups codes that displace each other: a code introduced
// deeper in the tree overrides an ancestor code of the same category
// for its own subtree only.
type Category int

const (
	Foreground Category = iota
	Background
	Weight
	Italic
	Underline
	Blink
	Reverse
	Conceal
	CrossOut
)

func (c Category) String() string {
	switch c {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	case Weight:
		return "weight"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case Reverse:
		return "reverse"
	case Conceal:
		return "conceal"
	case CrossOut:
		return "crossout"
	}
	return "unknown"
}

// Code is one formatting instruction: an SGR parameter string tagged
// with the category it displaces.
type Code struct {
	Category Category
	Params   string
}

// Resolver maps an attribute name to its code. Implementations must be
// safe for concurrent readers; the bundled tables are read-only after
// construction.
type Resolver interface {
	Resolve(name string) (Code, bool)
}

// Table is the bundled Resolver: a plain name→code map with truecolor
// hex passthrough ("#rrggbb" foreground, "on#rrggbb" background).
type Table map[string]Code

// Resolve implements Resolver
func (t Table) Resolve(name string) (Code, bool) {
	if code, ok := t[name]; ok {
		return code, true
	}
	if hex, ok := strings.CutPrefix(name, "on#"); ok {
		return hexCode("#"+hex, Background)
	}
	if strings.HasPrefix(name, "#") {
		return hexCode(name, Foreground)
	}
	return Code{}, false
}

func hexCode(hex string, category Category) (Code, bool) {
	params := termenv.RGBColor(hex).Sequence(category == Background)
	if params == "" {
		return Code{}, false
	}
	return Code{Category: category, Params: params}, true
}

// Default returns the bundled table: the sixteen ANSI colors as
// foreground and "on-" background names, plus the common format
// attributes.
func Default() Table {
	table := Table{
		"bold":      {Weight, termenv.BoldSeq},
		"faint":     {Weight, termenv.FaintSeq},
		"dim":       {Weight, termenv.FaintSeq},
		"italic":    {Italic, termenv.ItalicSeq},
		"underline": {Underline, termenv.UnderlineSeq},
		"blink":     {Blink, termenv.BlinkSeq},
		"reverse":   {Reverse, termenv.ReverseSeq},
		"conceal":   {Conceal, "8"},
		"hidden":    {Conceal, "8"},
		"strike":    {CrossOut, termenv.CrossOutSeq},
	}

	ansi := map[string]termenv.ANSIColor{
		"black":   termenv.ANSIBlack,
		"red":     termenv.ANSIRed,
		"green":   termenv.ANSIGreen,
		"yellow":  termenv.ANSIYellow,
		"blue":    termenv.ANSIBlue,
		"magenta": termenv.ANSIMagenta,
		"cyan":    termenv.ANSICyan,
		"white":   termenv.ANSIWhite,
	}
	bright := map[string]termenv.ANSIColor{
		"black":   termenv.ANSIBrightBlack,
		"red":     termenv.ANSIBrightRed,
		"green":   termenv.ANSIBrightGreen,
		"yellow":  termenv.ANSIBrightYellow,
		"blue":    termenv.ANSIBrightBlue,
		"magenta": termenv.ANSIBrightMagenta,
		"cyan":    termenv.ANSIBrightCyan,
		"white":   termenv.ANSIBrightWhite,
	}

	for name, color := range ansi {
		table[name] = Code{Foreground, color.Sequence(false)}
		table["on-"+name] = Code{Background, color.Sequence(true)}
	}
	for name, color := range bright {
		table["bright-"+name] = Code{Foreground, color.Sequence(false)}
		table["on-bright-"+name] = Code{Background, color.Sequence(true)}
	}

	return table
}

type plain struct{}

func (plain) Resolve(string) (Code, bool) { return Code{}, false }

// Plain returns a resolver that knows no names, so rendered output
// carries no formatting at all. Useful when output is not a terminal.
func Plain() Resolver { return plain{} }
