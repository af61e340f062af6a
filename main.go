package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"web_controls/presentation/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "web_controls"
	app.Usage = "Drive web pages through typed controls"
	app.Commands = []*cli.Command{
		{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "interactive console over a live browser",
			Action:  clicmds.Console,
			Flags:   clicmds.ConsoleFlags(),
		},
		{
			Name:    "smoke",
			Aliases: []string{"s"},
			Usage:   "exercise every control on the practice page",
			Action:  clicmds.Smoke,
			Flags:   clicmds.SmokeFlags(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
