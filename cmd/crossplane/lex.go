package main

import (
	"errors"
	"os"

	crossplane "github.com/dvershinin/crossplane"
	"github.com/urfave/cli/v2"
)

func lexCommand() *cli.Command {
	return &cli.Command{
		Name:  "lex",
		Usage: "lexes tokens from an nginx config file and dumps them as JSON",
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
			&cli.BoolFlag{
				Name:    "line-numbers",
				Aliases: []string{"n"},
				Usage:   "include line numbers in the output",
			},
		},
		Action: func(ctx *cli.Context) error {
			file := ctx.Args().First()
			if file == "" {
				return errors.New("missing config file")
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			tokens, err := crossplane.Lex(f, file)
			if err != nil {
				return err
			}
			var dump interface{}
			if ctx.Bool("line-numbers") {
				pairs := make([][2]interface{}, len(tokens))
				for i, t := range tokens {
					pairs[i] = [2]interface{}{t.Text, t.Line}
				}
				dump = pairs
			} else {
				texts := make([]string, len(tokens))
				for i, t := range tokens {
					texts[i] = t.Text
				}
				dump = texts
			}
			out, err := marshalJSON(dump, ctx.Int("indent"))
			if err != nil {
				return err
			}
			return writeOutput(ctx.String("out"), out)
		},
	}
}
