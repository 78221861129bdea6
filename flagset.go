package argparse

import "flag"

// FromFlagSet returns a Parser with one definition per flag in fset, visited in lexical order.
// Boolean flags become flags and every other flag becomes an option; the flag usage becomes the
// help text. Single-character names are also registered as short names, so -v and --v both work.
// Use it together with [ParsedArgs.Apply] to drive an existing [flag.FlagSet]:
//
//	p := argparse.FromFlagSet(fset)
//	args, err := p.Parse(os.Args[1:])
//	if err != nil {
//	    return err
//	}
//	return args.Apply(fset)
//
// Flags named "help" or "h" are skipped since -h and --help are always handled by the Parser.
func FromFlagSet(fset *flag.FlagSet) *Parser {
	p := &Parser{Name: fset.Name()}
	fset.VisitAll(func(f *flag.Flag) {
		if f.Name == "help" || f.Name == "h" {
			return
		}
		var b *Builder
		if isBoolFlag(f) {
			b = p.AddFlag(f.Name)
		} else {
			b = p.AddOption(f.Name)
		}
		b.WithHelp(f.Usage)
		if r := []rune(f.Name); len(r) == 1 && validShortName(r[0]) {
			b.WithShortName(r[0])
		}
	})
	return p
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
