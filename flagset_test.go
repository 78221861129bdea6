package argparse

import (
	"flag"
	"io"
	"testing"

	"github.com/mfridman/xflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type convertFlags struct {
	fset    *flag.FlagSet
	verbose *bool
	output  *string
	level   *int
}

func newConvertFlags() convertFlags {
	fset := flag.NewFlagSet("convert", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return convertFlags{
		fset:    fset,
		verbose: fset.Bool("verbose", false, "enable verbose output"),
		output:  fset.String("output", "", "output file"),
		level:   fset.Int("level", 1, "compression level"),
	}
}

func TestFromFlagSet(t *testing.T) {
	t.Parallel()

	t.Run("definitions", func(t *testing.T) {
		t.Parallel()
		fset := flag.NewFlagSet("convert", flag.ContinueOnError)
		fset.Bool("v", false, "verbose")
		fset.String("output", "", "output file")
		fset.Int("level", 0, "compression level")
		fset.Bool("help", false, "never registered")

		p := FromFlagSet(fset)
		require.NoError(t, p.Err())
		assert.Equal(t, "convert", p.Name)
		assert.Equal(t, []ArgumentDef{
			{Name: "level", Kind: KindOption, Help: "compression level"},
			{Name: "output", Kind: KindOption, Help: "output file"},
			{Name: "v", Kind: KindFlag, ShortName: 'v', Help: "verbose"},
		}, p.Definitions())
	})
	t.Run("single character names work in both forms", func(t *testing.T) {
		t.Parallel()
		fset := flag.NewFlagSet("convert", flag.ContinueOnError)
		fset.Bool("v", false, "verbose")
		p := FromFlagSet(fset)
		for _, arg := range []string{"-v", "--v"} {
			args, err := p.Parse([]string{arg})
			require.NoError(t, err)
			assert.True(t, args.HasFlag("v"))
		}
	})
	t.Run("agrees with xflag", func(t *testing.T) {
		t.Parallel()
		for _, input := range [][]string{
			{"--verbose", "in.txt", "--output", "out.txt", "--level", "3"},
			{"in.txt", "--output=out.txt"},
			{"--level", "9", "in.txt", "--verbose"},
			{},
		} {
			want := newConvertFlags()
			require.NoError(t, xflag.ParseToEnd(want.fset, input))

			got := newConvertFlags()
			p := FromFlagSet(got.fset)
			p.AddPositional("input")
			args, err := p.Parse(input)
			require.NoError(t, err, "args %q", input)
			require.NoError(t, args.Apply(got.fset))

			assert.Equal(t, *want.verbose, *got.verbose, "args %q", input)
			assert.Equal(t, *want.output, *got.output, "args %q", input)
			assert.Equal(t, *want.level, *got.level, "args %q", input)
			if want.fset.NArg() == 0 {
				assert.Empty(t, args.Positionals, "args %q", input)
			} else {
				assert.Equal(t, want.fset.Args(), args.Positionals, "args %q", input)
			}
		}
	})
}
