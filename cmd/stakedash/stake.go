package main

import (
	"net/url"

	"github.com/urfave/cli/v2"
)

var poolsCmd = cli.Command{
	Name:  "pools",
	Usage: "list stake pools, optionally filtered",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "query",
			Usage: "case-insensitive substring matched against name and ticker",
		},
	},
	Action: func(ctx *cli.Context) error {
		resp, err := httpGet("/v1/pools?q=" + url.QueryEscape(ctx.String("query")))
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}

var stakeCmd = cli.Command{
	Name:  "stake",
	Usage: "submit a stake transaction for the selected pool",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "pool",
			Usage:    "id of the pool, as listed by 'pools'",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "amount in ADA, minimum 5",
			Required: true,
		},
	},
	Action: func(ctx *cli.Context) error {
		resp, err := httpPost("/v1/stake", map[string]string{
			"poolId": ctx.String("pool"),
			"amount": ctx.String("amount"),
		})
		if err != nil {
			return err
		}
		printRespJSON(resp)
		return nil
	},
}
