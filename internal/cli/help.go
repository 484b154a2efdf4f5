package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000")).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFA500")).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00")).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)
)

// vocalign's command line is a fixed 3-positional-argument surface
// (original, instrumental, output) plus --debug/--version/-h: there is no
// subcommand tree and no variable flag set to reflect over, so the help
// text below is written out directly instead of walked from ctx.Model.
var (
	helpArguments = []struct{ name, help string }{
		{"<original>", "Path to the original mix"},
		{"<instrumental>", "Path to the instrumental mix to align"},
		{"<output>", "Path to write the aligned output WAV"},
	}

	helpFlags = []struct{ flags, help string }{
		{"-h, --help", "Show context-sensitive help."},
		{"-v, --version", "Show version information"},
		{"-d, --debug", "Enable debug logging to vocalign-debug.log"},
	}
)

// StyledHelpPrinter returns a kong.HelpPrinter rendering vocalign's fixed
// argument/flag surface with lipgloss styling in place of kong's default
// plain-text layout.
func StyledHelpPrinter(_ kong.HelpOptions) func(options kong.HelpOptions, ctx *kong.Context) error {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render("vocalign"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render("Time-aligns an instrumental mix onto an original mix for vocal isolation"))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [flags] <original> <instrumental> <output>", ctx.Model.Name))
		sb.WriteString("\n")

		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Arguments:"))
		sb.WriteString("\n")
		for _, arg := range helpArguments {
			sb.WriteString("  ")
			sb.WriteString(helpArgStyle.Render(arg.name))
			sb.WriteString("  ")
			sb.WriteString(arg.help)
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Flags:"))
		sb.WriteString("\n")
		for _, f := range helpFlags {
			sb.WriteString("  ")
			sb.WriteString(helpFlagStyle.Render(f.flags))
			sb.WriteString("  ")
			sb.WriteString(f.help)
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}
