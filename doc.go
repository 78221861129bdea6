// Package argparse provides a small command-line argument parser. Flags, options and positional
// arguments are registered with a fluent builder, then [Parser.Parse] turns an argument list into
// [ParsedArgs] with typed accessors, and [Parser.GenerateHelp] renders usage text.
//
// The package never prints and never exits. Every failure is returned as an *[Error]; a request
// for help is reported the same way with code [ErrHelpRequested] so the caller can print help and
// exit cleanly:
//
//	p := &argparse.Parser{Name: "convert"}
//	p.AddFlag("verbose").WithShortName('v').WithHelp("enable verbose output")
//	p.AddOption("output").WithShortName('o').WithHelp("output file").Required()
//	p.AddPositional("input").WithHelp("input file")
//
//	args, err := p.Parse(os.Args[1:])
//	if errors.Is(err, flag.ErrHelp) {
//	    fmt.Println(p.GenerateHelp())
//	    return
//	}
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n", err)
//	    os.Exit(1)
//	}
package argparse
