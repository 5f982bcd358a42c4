package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/yahtzeebots/cmd/yahtzeebots/shared"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug|info|warn|error)" default:"info" enum:"debug,info,warn,error"`
	LogJSON  bool   `name:"log-json" help:"Write logs as JSON lines"`
	NoColor  bool   `help:"Disable colour in tables"`
}

// Logger builds the logger the flags describe.
func (g *Globals) Logger() (zerolog.Logger, error) {
	return shared.SetupLogger(g.LogLevel, g.LogJSON)
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Simulate   SimulateCmd      `cmd:"" help:"Simulate many games per strategy and compare them"`
	Analyze    AnalyzeCmd       `cmd:"" help:"Re-analyse a saved results file"`
	Play       PlayCmd          `cmd:"" help:"Play one game and show every turn"`
	Strategies StrategiesCmd    `cmd:"" help:"List available strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("yahtzeebots"),
		kong.Description("Yahtzee strategy simulator with statistical comparison"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
