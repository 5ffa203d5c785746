package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&playCmd{}, "")
	subcommands.Register(&boardCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

var errorLabel = color.New(color.FgRed, color.Bold)

// fatal reports err on stderr and returns the failure status.
func fatal(err error) subcommands.ExitStatus {
	errorLabel.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
