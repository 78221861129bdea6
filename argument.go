package argparse

import (
	"strings"
	"unicode"
)

// ArgumentKind is the kind of a registered argument.
type ArgumentKind int

const (
	// KindFlag is a boolean-presence argument, invoked as --name or -c.
	KindFlag ArgumentKind = iota + 1
	// KindOption is a named argument that takes exactly one value.
	KindOption
	// KindPositional is an unnamed argument filled from bare tokens in registration order.
	KindPositional
)

func (k ArgumentKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// ArgumentDef describes one registered flag, option or positional argument.
type ArgumentDef struct {
	// Name is unique across all definitions of a [Parser]. Flags and options are invoked as
	// --Name.
	Name string
	Kind ArgumentKind
	// ShortName is an optional single-character alias, invoked as -c. Zero means none.
	ShortName rune
	Help      string
	// Required is only meaningful for options and positionals.
	Required bool
}

// Builder configures the argument returned by [Parser.AddFlag], [Parser.AddOption] or
// [Parser.AddPositional]. Methods may be chained in any order:
//
//	p.AddOption("output").WithShortName('o').WithHelp("output file").Required()
//
// A Builder refers to its definition by index; it never owns it. If the registration that created
// the Builder failed, every method is a no-op and [Builder.Err] reports the failure.
type Builder struct {
	parser *Parser
	index  int
	err    error
}

// WithShortName sets the single-character alias of the argument. It fails with
// ErrDuplicateShortName if another argument already uses c, and with ErrInvalidShortName if c is
// not a printable character, is '-' or the reserved 'h', or the argument is a positional.
func (b *Builder) WithShortName(c rune) *Builder {
	def := b.def()
	if def == nil {
		return b
	}
	switch {
	case def.Kind == KindPositional:
		return b.fail(newError(ErrInvalidShortName, def.Name))
	case !validShortName(c):
		return b.fail(newError(ErrInvalidShortName, string(c)))
	}
	if i, ok := b.parser.byShort[c]; ok && i != b.index {
		return b.fail(newError(ErrDuplicateShortName, string(c)))
	}
	if def.ShortName != 0 {
		delete(b.parser.byShort, def.ShortName)
	}
	def.ShortName = c
	b.parser.byShort[c] = b.index
	return b
}

// WithHelp sets the help text shown by [Parser.GenerateHelp]. Calling it again overwrites the
// previous text.
func (b *Builder) WithHelp(text string) *Builder {
	if def := b.def(); def != nil {
		def.Help = text
	}
	return b
}

// Required marks an option or positional as required. Calling it on a flag is a caller error and
// records ErrRequiredFlag; the flag stays optional.
func (b *Builder) Required() *Builder {
	def := b.def()
	if def == nil {
		return b
	}
	if def.Kind == KindFlag {
		return b.fail(newError(ErrRequiredFlag, def.Name))
	}
	def.Required = true
	return b
}

// Err returns the first error recorded by this Builder, or nil.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) def() *ArgumentDef {
	if b.parser == nil || b.index < 0 {
		return nil
	}
	return &b.parser.defs[b.index]
}

func (b *Builder) fail(err *Error) *Builder {
	if b.err == nil {
		b.err = err
	}
	b.parser.record(err)
	return b
}

func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r == '=' || unicode.IsSpace(r) || !unicode.IsPrint(r)
	})
}

func validShortName(c rune) bool {
	return c != '-' && c != 'h' && c != '=' && unicode.IsPrint(c) && !unicode.IsSpace(c)
}
