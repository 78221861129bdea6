package argparse

import (
	"strings"
	"unicode/utf8"

	"github.com/mfridman/argparse/pkg/suggest"
)

// Parser holds the registered argument definitions and parses argument lists against them. The
// zero value is ready to use.
type Parser struct {
	// Name is the program name shown in the usage line. Help text uses "[PROGRAM]" when empty.
	Name string

	// Usage overrides the generated usage pattern.
	//
	// Example: "convert [flags] <input>"
	Usage string

	// ShortHelp is a brief description of the program, shown at the top of the help text.
	ShortHelp string

	// UsageFunc optionally replaces [DefaultUsage] when generating help text.
	UsageFunc func(*Parser) string

	defs    []ArgumentDef
	byName  map[string]int
	byShort map[rune]int
	err     error
}

// AddFlag registers a boolean-presence argument.
func (p *Parser) AddFlag(name string) *Builder {
	return p.add(name, KindFlag)
}

// AddOption registers an argument that takes one value.
func (p *Parser) AddOption(name string) *Builder {
	return p.add(name, KindOption)
}

// AddPositional registers a positional argument. Positionals are filled from bare tokens in the
// order they are registered.
func (p *Parser) AddPositional(name string) *Builder {
	return p.add(name, KindPositional)
}

func (p *Parser) add(name string, kind ArgumentKind) *Builder {
	if p.byName == nil {
		p.byName = make(map[string]int)
		p.byShort = make(map[rune]int)
	}
	b := &Builder{parser: p, index: -1}
	if !validName(name) || (name == "help" && kind != KindPositional) {
		return b.fail(newError(ErrInvalidName, name))
	}
	if _, ok := p.byName[name]; ok {
		return b.fail(newError(ErrDuplicateName, name))
	}
	p.defs = append(p.defs, ArgumentDef{Name: name, Kind: kind})
	b.index = len(p.defs) - 1
	p.byName[name] = b.index
	return b
}

func (p *Parser) record(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Err returns the first registration error, or nil. [Parser.Parse] returns the same error.
func (p *Parser) Err() error {
	return p.err
}

// Definitions returns a copy of the registered definitions in registration order.
func (p *Parser) Definitions() []ArgumentDef {
	return append([]ArgumentDef(nil), p.defs...)
}

// GenerateHelp renders the help text for the registered arguments. It uses UsageFunc when set and
// [DefaultUsage] otherwise.
func (p *Parser) GenerateHelp() string {
	if p.UsageFunc != nil {
		return p.UsageFunc(p)
	}
	return DefaultUsage(p)
}

// Parse scans args from left to right and assigns every token to a flag, option or positional.
// Callers typically pass os.Args[1:]; the program name is never skipped.
//
// If -h or --help appears before a "--" delimiter, Parse returns an *Error with code
// ErrHelpRequested regardless of any other problem. Every other failure aborts the scan and is
// returned as an *Error; no partial result is returned. A registration error recorded earlier is
// returned before any token is looked at.
func (p *Parser) Parse(args []string) (*ParsedArgs, error) {
	if p.err != nil {
		return nil, p.err
	}
	// First pass: capture help requests before reporting any other error.
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--help" || arg == "-h" {
			return nil, newError(ErrHelpRequested, arg)
		}
	}

	s := &scanner{
		parser: p,
		args:   args,
		result: newParsedArgs(p.positionalNames()),
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	if err := p.checkRequired(s.result); err != nil {
		return nil, err
	}
	return s.result, nil
}

func (p *Parser) positionalNames() []string {
	var names []string
	for _, def := range p.defs {
		if def.Kind == KindPositional {
			names = append(names, def.Name)
		}
	}
	return names
}

func (p *Parser) checkRequired(result *ParsedArgs) error {
	pos := 0
	for _, def := range p.defs {
		switch def.Kind {
		case KindOption:
			if _, ok := result.Options[def.Name]; def.Required && !ok {
				return newError(ErrMissingRequiredArgument, def.Name)
			}
		case KindPositional:
			if def.Required && pos >= len(result.Positionals) {
				return newError(ErrMissingRequiredArgument, def.Name)
			}
			pos++
		}
	}
	return nil
}

// lookupLong returns the flag or option registered under name. Positionals are not addressable by
// name on the command line.
func (p *Parser) lookupLong(name string) (ArgumentDef, bool) {
	i, ok := p.byName[name]
	if !ok || p.defs[i].Kind == KindPositional {
		return ArgumentDef{}, false
	}
	return p.defs[i], true
}

func (p *Parser) lookupShort(c rune) (ArgumentDef, bool) {
	i, ok := p.byShort[c]
	if !ok {
		return ArgumentDef{}, false
	}
	return p.defs[i], true
}

func (p *Parser) unknownArgument(token string) error {
	err := newError(ErrUnknownArgument, token)
	if !strings.HasPrefix(token, "--") {
		return err
	}
	var known []string
	for _, def := range p.defs {
		if def.Kind != KindPositional {
			known = append(known, "--"+def.Name)
		}
	}
	name, _, _ := strings.Cut(token, "=")
	err.Suggestions = suggest.FindSimilar(name, known, 3)
	return err
}

type scanner struct {
	parser *Parser
	args   []string
	pos    int
	result *ParsedArgs
}

func (s *scanner) run() error {
	for s.pos < len(s.args) {
		arg := s.args[s.pos]
		s.pos++
		var err error
		switch {
		case arg == "--":
			for _, rest := range s.args[s.pos:] {
				if err := s.positional(rest); err != nil {
					return err
				}
			}
			return nil
		case strings.HasPrefix(arg, "--"):
			err = s.long(arg)
		case isMarker(arg):
			err = s.short(arg)
		default:
			err = s.positional(arg)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) long(token string) error {
	name, value, hasValue := strings.Cut(token[2:], "=")
	def, ok := s.parser.lookupLong(name)
	if !ok {
		return s.parser.unknownArgument(token)
	}
	if def.Kind == KindFlag {
		if hasValue {
			return newError(ErrFlagValue, def.Name)
		}
		s.result.Flags[def.Name] = struct{}{}
		return nil
	}
	if hasValue {
		s.result.Options[def.Name] = value
		return nil
	}
	return s.optionValue(def)
}

// short handles -c and groups of short flags such as -abc. An option may only close a group.
func (s *scanner) short(token string) error {
	group := token[1:]
	for len(group) > 0 {
		c, size := utf8.DecodeRuneInString(group)
		group = group[size:]
		def, ok := s.parser.lookupShort(c)
		if !ok {
			return s.parser.unknownArgument(token)
		}
		if def.Kind == KindFlag {
			s.result.Flags[def.Name] = struct{}{}
			continue
		}
		if group != "" {
			return newError(ErrOptionInGroup, def.Name)
		}
		return s.optionValue(def)
	}
	return nil
}

func (s *scanner) optionValue(def ArgumentDef) error {
	if s.pos >= len(s.args) || isMarker(s.args[s.pos]) {
		return newError(ErrMissingValue, def.Name)
	}
	s.result.Options[def.Name] = s.args[s.pos]
	s.pos++
	return nil
}

func (s *scanner) positional(token string) error {
	if len(s.result.Positionals) >= len(s.result.positionalNames) {
		return newError(ErrUnexpectedPositional, token)
	}
	s.result.Positionals = append(s.result.Positionals, token)
	return nil
}

// isMarker reports whether token looks like a flag or option. A lone "-" is a bare token.
func isMarker(token string) bool {
	return len(token) > 1 && token[0] == '-'
}
