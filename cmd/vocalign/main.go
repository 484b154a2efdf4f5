package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/linuxmatters/vocalign/internal/align"
	"github.com/linuxmatters/vocalign/internal/cli"
	"github.com/linuxmatters/vocalign/internal/report"
)

// version is set via ldflags at build time.
// Local dev builds: "dev"
// Release builds: git tag (e.g. "0.1.0")
var version = "dev"

// CLI defines the command-line interface: exactly three positional
// arguments, plus --debug and --version.
type CLI struct {
	Version      bool   `short:"v" help:"Show version information"`
	Debug        bool   `short:"d" help:"Enable debug logging to vocalign-debug.log"`
	Original     string `arg:"" name:"original" help:"Path to the original mix" type:"existingfile"`
	Instrumental string `arg:"" name:"instrumental" help:"Path to the instrumental mix to align" type:"existingfile"`
	Output       string `arg:"" name:"output" help:"Path to write the aligned output WAV"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("vocalign"),
		kong.Description("Time-aligns an instrumental mix onto an original mix for vocal isolation"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	var debugLog *os.File
	if cliArgs.Debug {
		var err error
		debugLog, err = os.Create("vocalign-debug.log")
		if err != nil {
			cli.PrintError(fmt.Sprintf("failed to create debug log: %v", err))
			os.Exit(1)
		}
		defer debugLog.Close()
		align.DebugLog = func(format string, args ...interface{}) {
			fmt.Fprintf(debugLog, format+"\n", args...)
		}
	}

	cli.PrintBanner()

	cfg := align.DefaultConfig()
	result, err := align.Run(cliArgs.Original, cliArgs.Instrumental, cliArgs.Output, cfg, report.Console())
	if err != nil {
		cli.PrintError(err.Error())
		switch {
		case errors.Is(err, align.ErrArgument):
			os.Exit(2)
		case errors.Is(err, align.ErrMismatch):
			os.Exit(3)
		case errors.Is(err, align.ErrAlignment):
			os.Exit(4)
		default:
			os.Exit(1)
		}
	}

	summary := report.Summarize(result)
	lines := []string{summary.String()}
	cli.PrintResultBox(cliArgs.Output, lines)
}
