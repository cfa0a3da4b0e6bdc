package main

import (
	"github.com/urfave/cli/v2"
)

var configCmd = cli.Command{
	Name:  "config",
	Usage: "print or initialize the CLI state",
	Action: func(ctx *cli.Context) error {
		state, err := getState()
		if err != nil {
			return err
		}
		printRespJSON(state)
		return nil
	},
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "set the daemon address the CLI talks to",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "daemon_url",
					Usage: "base URL of the stakedashd HTTP interface",
					Value: "http://localhost:7070",
				},
			},
			Action: func(ctx *cli.Context) error {
				return setState(map[string]string{
					"daemon_url": ctx.String("daemon_url"),
				})
			},
		},
	},
}
