package main

import (
	"errors"

	crossplane "github.com/dvershinin/crossplane"
	"github.com/urfave/cli/v2"
)

func formatCommand() *cli.Command {
	return &cli.Command{
		Name:  "format",
		Usage: "formats an nginx config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write output to a file instead of stdout",
			},
			&cli.IntFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "number of spaces to indent output",
				Value:   4,
			},
			&cli.BoolFlag{
				Name:    "tabs",
				Aliases: []string{"t"},
				Usage:   "indent with tabs instead of spaces",
			},
		},
		Action: func(ctx *cli.Context) error {
			file := ctx.Args().First()
			if file == "" {
				return errors.New("missing config file")
			}
			opts := crossplane.DefaultParseOptions()
			opts.SingleFile = true
			opts.Comments = true
			opts.CheckCtx = false
			opts.CheckArgs = false
			payload, err := crossplane.Parse(file, opts)
			if err != nil {
				return err
			}
			if len(payload.Errors) > 0 {
				return payload.Errors[0]
			}
			output := crossplane.Build(payload.Config[0].Parsed, &crossplane.BuildOptions{
				Indent: ctx.Int("indent"),
				Tabs:   ctx.Bool("tabs"),
			})
			return writeOutput(ctx.String("out"), output)
		},
	}
}
