package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gentoomaniac/logging"
	"github.com/rs/zerolog/log"
)

var (
	version = "unset"
	commit  = "unset"
	binName = "backup-verifier"
	builtBy = "manual"
	date    = "unset"
)

var cli struct {
	logging.LoggingConfig

	Verify  Verify  `cmd:"" help:"Compare backup drive listings against the master listing."`
	Convert Convert `cmd:"" help:"Convert a raw directory listing to the normalized CSV format."`
	History History `cmd:"" help:"Show the outcomes of recorded verification runs."`

	Version kong.VersionFlag `help:"Display version."`
}

func main() {
	ctx := kong.Parse(&cli, kong.UsageOnError(), kong.Vars{
		"version": version,
		"commit":  commit,
		"binName": binName,
		"builtBy": builtBy,
		"date":    date,
	})
	logging.Setup(&cli.LoggingConfig)

	var err error
	switch command(ctx) {
	case "verify":
		err = verify(&cli.Verify)
	case "convert":
		err = convert(&cli.Convert)
	case "history":
		err = showHistory(&cli.History)
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

// command reduces kong's command path, e.g. "verify <master>", to its
// leading word.
func command(ctx *kong.Context) string {
	name := ctx.Command()
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}
