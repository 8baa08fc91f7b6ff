package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Classify ClassifyCmd `cmd:"" help:"Classify a five-card hand"`
	Showdown ShowdownCmd `cmd:"" help:"Classify configured hands and pick the strongest"`
}

// Globals are flags shared by every command
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level (debug, info, warn, error)" placeholder:"LEVEL"`
	JSON     bool             `help:"Write logs as JSON"`
}

// env carries the process streams and global flags into command Run methods
type env struct {
	globals *Globals
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, cliOptions()...)
	err := ctx.Run(&env{globals: &cli.Globals, stdout: os.Stdout, stderr: os.Stderr})
	ctx.FatalIfErrorf(err)
}

func cliOptions() []kong.Option {
	return []kong.Option{
		kong.Name("pokerhands"),
		kong.Description("Classify five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}
}
