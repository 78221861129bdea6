package argparse

import (
	"fmt"
	"strings"

	"github.com/mfridman/argparse/pkg/textutil"
)

const lineWidth = 80

// DefaultUsage renders the help text of p: the short help, a usage line, then a Flags section
// listing flags and options and an Arguments section listing positionals, each in registration
// order. It has no side effects; callers decide where to print the result.
func DefaultUsage(p *Parser) string {
	if p == nil {
		return ""
	}

	var b strings.Builder

	if p.ShortHelp != "" {
		for _, line := range textutil.Wrap(p.ShortHelp, lineWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n")
	if p.Usage != "" {
		b.WriteString("  " + p.Usage + "\n")
	} else {
		b.WriteString("  " + usageLine(p) + "\n")
	}
	b.WriteRune('\n')

	var flags, positionals []argInfo
	for _, def := range p.defs {
		info := argInfo{name: formatArgName(def), usage: def.Help}
		if def.Required {
			info.usage = strings.TrimSpace(info.usage + " (required)")
		}
		if def.Kind == KindPositional {
			positionals = append(positionals, info)
		} else {
			flags = append(flags, info)
		}
	}
	flags = append(flags, argInfo{name: "-h, --help", usage: "show help"})

	b.WriteString("Flags:\n")
	writeSection(&b, flags)
	b.WriteRune('\n')

	if len(positionals) > 0 {
		b.WriteString("Arguments:\n")
		writeSection(&b, positionals)
		b.WriteRune('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

func usageLine(p *Parser) string {
	name := p.Name
	if name == "" {
		name = "[PROGRAM]"
	}
	parts := []string{name, "[flags]"}
	for _, def := range p.defs {
		if def.Kind != KindPositional {
			continue
		}
		if def.Required {
			parts = append(parts, "<"+def.Name+">")
		} else {
			parts = append(parts, "["+def.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

// formatArgName returns the left column for def, aligning long names whether or not a short name
// is present.
func formatArgName(def ArgumentDef) string {
	switch def.Kind {
	case KindPositional:
		return def.Name
	case KindOption:
		return shortPrefix(def.ShortName) + "--" + def.Name + " <value>"
	default:
		return shortPrefix(def.ShortName) + "--" + def.Name
	}
}

func shortPrefix(c rune) string {
	if c == 0 {
		return "    "
	}
	return "-" + string(c) + ", "
}

// writeSection writes one aligned section of argument descriptions.
func writeSection(b *strings.Builder, args []argInfo) {
	maxLen := 0
	for _, a := range args {
		if len(a.name) > maxLen {
			maxLen = len(a.name)
		}
	}
	nameWidth := maxLen + 4
	// Two columns of indent precede the name.
	wrapWidth := lineWidth - nameWidth - 2

	for _, a := range args {
		lines := textutil.Wrap(a.usage, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", a.name)
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(a.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", a.name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

type argInfo struct {
	name  string
	usage string
}
