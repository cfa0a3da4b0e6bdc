package main

import (
	"github.com/urfave/cli/v2"
)

var providersCmd = cli.Command{
	Name:  "providers",
	Usage: "list the wallet providers installed in the connected browser",
	Action: func(ctx *cli.Context) error {
		resp, err := httpGet("/v1/providers")
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}

var connectCmd = cli.Command{
	Name:      "connect",
	Usage:     "enable a wallet provider and open a session",
	ArgsUsage: "<provider>",
	Action: func(ctx *cli.Context) error {
		resp, err := httpPost("/v1/session", map[string]string{
			"provider": ctx.Args().First(),
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}

var disconnectCmd = cli.Command{
	Name:  "disconnect",
	Usage: "clear the active wallet session",
	Action: func(ctx *cli.Context) error {
		resp, err := httpDelete("/v1/session")
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}

var balanceCmd = cli.Command{
	Name:  "balance",
	Usage: "show the connected wallet's balance in ADA",
	Action: func(ctx *cli.Context) error {
		resp, err := httpGet("/v1/balance")
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}
