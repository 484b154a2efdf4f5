package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#A40000") // Vocalign red
	accentColor    = lipgloss.Color("#FFA500") // Orange/gold
	successColor   = lipgloss.Color("#00AA00") // Green
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFFF00") // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold red
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner.
func PrintBanner() {
	fmt.Println(TitleStyle.Render("vocalign"))
	fmt.Println(SubtitleStyle.Render("Time-aligns an instrumental mix onto an original mix for vocal isolation"))
	fmt.Println()
}

// PrintVersion prints version information.
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("vocalign"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message to standard output. Every fatal error
// kind in this system's error handling design is a diagnostic-then-exit, not
// a background/foreground stream split, so it goes to stdout rather than
// stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stdout, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational key/value pair.
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header.
func PrintSection(title string) {
	fmt.Println(HeaderStyle.Render(title))
}

// PrintBox prints content in a styled box.
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// PrintResultBox prints the final alignment summary in a box.
func PrintResultBox(outputPath string, lines []string) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Alignment complete"))
	b.WriteString("\n\n")

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(KeyStyle.Render("Output: "))
	b.WriteString(ValueStyle.Render(outputPath))

	PrintBox(b.String())
}
