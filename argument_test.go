package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddFlag("verbose")
		p.AddOption("output")
		p.AddPositional("input")
		require.NoError(t, p.Err())
		assert.Equal(t, []ArgumentDef{
			{Name: "verbose", Kind: KindFlag},
			{Name: "output", Kind: KindOption},
			{Name: "input", Kind: KindPositional},
		}, p.Definitions())
	})
	t.Run("builder methods in any order", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		b := p.AddOption("output").Required().WithHelp("first").WithShortName('o').WithHelp("output file")
		require.NoError(t, b.Err())
		assert.Equal(t, []ArgumentDef{
			{Name: "output", Kind: KindOption, ShortName: 'o', Help: "output file", Required: true},
		}, p.Definitions())
	})
	t.Run("definitions are copies", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddOption("output")
		defs := p.Definitions()
		defs[0].Required = true
		assert.False(t, p.Definitions()[0].Required)
	})
	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddFlag("verbose")
		b := p.AddOption("verbose")
		requireCode(t, b.Err(), ErrDuplicateName, "verbose")
		require.Equal(t, b.Err(), p.Err())
		// The failed registration is not added and its builder is detached.
		b.WithHelp("ignored").WithShortName('x')
		assert.Equal(t, []ArgumentDef{{Name: "verbose", Kind: KindFlag}}, p.Definitions())
	})
	t.Run("duplicate name across kinds", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddPositional("input")
		requireCode(t, p.AddFlag("input").Err(), ErrDuplicateName, "input")
	})
	t.Run("duplicate short name", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddFlag("verbose").WithShortName('v')
		b := p.AddFlag("version").WithShortName('v')
		requireCode(t, b.Err(), ErrDuplicateShortName, "v")
		defs := p.Definitions()
		require.Len(t, defs, 2)
		assert.Equal(t, rune(0), defs[1].ShortName)
	})
	t.Run("same short name twice on one argument", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		b := p.AddFlag("verbose").WithShortName('v').WithShortName('v')
		require.NoError(t, b.Err())
	})
	t.Run("changing short name frees the old one", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddFlag("verbose").WithShortName('x').WithShortName('v')
		require.NoError(t, p.AddFlag("extract").WithShortName('x').Err())
		args, err := p.Parse([]string{"-x", "-v"})
		require.NoError(t, err)
		assert.True(t, args.HasFlag("extract"))
		assert.True(t, args.HasFlag("verbose"))
	})
	t.Run("positional short name", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		b := p.AddPositional("input").WithShortName('i')
		requireCode(t, b.Err(), ErrInvalidShortName, "input")
		assert.Equal(t, rune(0), p.Definitions()[0].ShortName)
	})
	t.Run("invalid short names", func(t *testing.T) {
		t.Parallel()
		for _, c := range []rune{'-', 'h', ' ', '=', '\n'} {
			p := &Parser{}
			b := p.AddFlag("verbose").WithShortName(c)
			requireCode(t, b.Err(), ErrInvalidShortName, string(c))
		}
	})
	t.Run("invalid names", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"", "-v", "--verbose", "dry run", "a=b", "help"} {
			p := &Parser{}
			requireCode(t, p.AddOption(name).Err(), ErrInvalidName, name)
		}
	})
	t.Run("positional named help", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		require.NoError(t, p.AddPositional("help").Err())
	})
	t.Run("required flag is a caller error", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		b := p.AddFlag("verbose").Required()
		requireCode(t, b.Err(), ErrRequiredFlag, "verbose")
		assert.False(t, p.Definitions()[0].Required)
	})
	t.Run("first error is sticky", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddFlag("verbose")
		p.AddFlag("verbose")
		p.AddFlag("quiet").Required()
		requireCode(t, p.Err(), ErrDuplicateName, "verbose")
	})
	t.Run("parse returns registration error", func(t *testing.T) {
		t.Parallel()
		p := &Parser{}
		p.AddFlag("verbose").WithShortName('v')
		p.AddFlag("version").WithShortName('v')
		args, err := p.Parse([]string{"--help"})
		assert.Nil(t, args)
		requireCode(t, err, ErrDuplicateShortName, "v")
	})
}

func TestArgumentKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "flag", KindFlag.String())
	assert.Equal(t, "option", KindOption.String())
	assert.Equal(t, "positional", KindPositional.String())
	assert.Equal(t, "unknown", ArgumentKind(0).String())
}
