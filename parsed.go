package argparse

import (
	"encoding"
	"flag"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ParsedArgs is the result of a successful [Parser.Parse]. It is created fresh for every call and
// owned by the caller.
type ParsedArgs struct {
	// Flags holds the names of the flags present on the command line.
	Flags map[string]struct{}
	// Options maps option names to their raw values.
	Options map[string]string
	// Positionals holds bare tokens in the order they appeared, aligned with the registration
	// order of positional definitions.
	Positionals []string

	positionalNames []string
}

func newParsedArgs(positionalNames []string) *ParsedArgs {
	return &ParsedArgs{
		Flags:           make(map[string]struct{}),
		Options:         make(map[string]string),
		positionalNames: positionalNames,
	}
}

// HasFlag reports whether the flag was present.
func (p *ParsedArgs) HasFlag(name string) bool {
	_, ok := p.Flags[name]
	return ok
}

// Option returns the raw value of an option and whether it was supplied.
func (p *ParsedArgs) Option(name string) (string, bool) {
	v, ok := p.Options[name]
	return v, ok
}

// Positional returns the value filled into the named positional and whether it was supplied.
func (p *ParsedArgs) Positional(name string) (string, bool) {
	for i, n := range p.positionalNames {
		if n != name {
			continue
		}
		if i < len(p.Positionals) {
			return p.Positionals[i], true
		}
		break
	}
	return "", false
}

// GetValueAs converts the raw value of an option with parse. It reports ok=false when the option
// was never supplied, and a *[ValueError] when the value is malformed. Example usage:
//
//	port, ok, err := argparse.GetValueAs(args, "port", func(s string) (uint32, error) {
//	    n, err := strconv.ParseUint(s, 10, 32)
//	    return uint32(n), err
//	})
func GetValueAs[T any](p *ParsedArgs, name string, parse func(string) (T, error)) (T, bool, error) {
	var zero T
	raw, ok := p.Options[name]
	if !ok {
		return zero, false, nil
	}
	v, err := parse(raw)
	if err != nil {
		return zero, true, &ValueError{Name: name, Value: raw, Err: err}
	}
	return v, true, nil
}

// GetValue is like [GetValueAs] but picks the conversion from T. Supported types are string,
// bool, every int and uint width, float32, float64, [time.Duration], and any type whose pointer
// implements [encoding.TextUnmarshaler]. Example usage:
//
//	port, ok, err := argparse.GetValue[uint32](args, "port")
//	timeout, ok, err := argparse.GetValue[time.Duration](args, "timeout")
//
// Asking for an unsupported type returns an error rather than panicking.
func GetValue[T any](p *ParsedArgs, name string) (T, bool, error) {
	return GetValueAs(p, name, convert[T])
}

var durationType = reflect.TypeOf(time.Duration(0))

func convert[T any](s string) (T, error) {
	var v T
	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		err := u.UnmarshalText([]byte(s))
		return v, err
	}
	rv := reflect.ValueOf(&v).Elem()
	if rv.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return v, err
		}
		rv.SetInt(int64(d))
		return v, nil
	}
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 0, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	default:
		return v, fmt.Errorf("unsupported type %T", v)
	}
	return v, nil
}

// Apply copies the parsed flags and options onto fset, so values can be read back through the
// typed [flag.Value] implementations of a standard flag set. Flags are set to "true". Arguments
// that fset does not define are skipped. Example usage:
//
//	fset := flag.NewFlagSet("convert", flag.ContinueOnError)
//	verbose := fset.Bool("verbose", false, "")
//	if err := args.Apply(fset); err != nil {
//	    return err
//	}
func (p *ParsedArgs) Apply(fset *flag.FlagSet) error {
	for name := range p.Flags {
		if fset.Lookup(name) == nil {
			continue
		}
		if err := fset.Set(name, "true"); err != nil {
			return fmt.Errorf("flag %q: %w", name, err)
		}
	}
	for name, value := range p.Options {
		if fset.Lookup(name) == nil {
			continue
		}
		if err := fset.Set(name, value); err != nil {
			return &ValueError{Name: name, Value: value, Err: err}
		}
	}
	return nil
}
