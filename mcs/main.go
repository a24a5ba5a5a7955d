package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/montecarlo/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the real environment and flags take precedence.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
