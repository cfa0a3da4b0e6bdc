package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var historyCmd = cli.Command{
	Name:  "history",
	Usage: "show one page of the wallet's transaction history",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "page",
			Usage: "1-indexed page number",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "entries per page",
			Value: 10,
		},
	},
	Action: func(ctx *cli.Context) error {
		resp, err := httpGet(fmt.Sprintf(
			"/v1/history?page=%d&count=%d",
			ctx.Int("page"), ctx.Int("count"),
		))
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}

var delegationsCmd = cli.Command{
	Name:  "delegations",
	Usage: "show the wallet's delegation history",
	Action: func(ctx *cli.Context) error {
		resp, err := httpGet("/v1/delegations")
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}
