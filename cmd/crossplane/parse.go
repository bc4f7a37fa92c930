package main

import (
	"encoding/json"
	"errors"
	"strings"

	crossplane "github.com/dvershinin/crossplane"
	"github.com/urfave/cli/v2"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "parses an nginx config file and dumps the payload as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write output to a file instead of stdout",
			},
			&cli.IntFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "number of spaces to indent the JSON output",
			},
			&cli.StringFlag{
				Name:  "ignore",
				Usage: "comma-separated list of directives to exclude from the payload",
			},
			&cli.BoolFlag{
				Name:  "no-catch",
				Usage: "stop parsing at the first error instead of recording it",
			},
			&cli.BoolFlag{
				Name:  "single-file",
				Usage: "do not follow include directives",
			},
			&cli.BoolFlag{
				Name:  "include-comments",
				Usage: "keep comments in the payload",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "treat unknown directives as errors",
			},
			&cli.BoolFlag{
				Name:  "combine",
				Usage: "inline included files into a single config",
			},
		},
		Action: func(ctx *cli.Context) error {
			file := ctx.Args().First()
			if file == "" {
				return errors.New("missing config file")
			}
			opts := crossplane.DefaultParseOptions()
			opts.CatchErrors = !ctx.Bool("no-catch")
			opts.SingleFile = ctx.Bool("single-file")
			opts.Comments = ctx.Bool("include-comments")
			opts.Strict = ctx.Bool("strict")
			opts.Combine = ctx.Bool("combine")
			if ignore := ctx.String("ignore"); ignore != "" {
				opts.Ignore = strings.Split(ignore, ",")
			}
			payload, err := crossplane.Parse(file, opts)
			if err != nil {
				return err
			}
			out, err := marshalJSON(payload, ctx.Int("indent"))
			if err != nil {
				return err
			}
			return writeOutput(ctx.String("out"), out)
		},
	}
}

func marshalJSON(v interface{}, indent int) (string, error) {
	var b []byte
	var err error
	if indent > 0 {
		b, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
