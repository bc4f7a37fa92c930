package main

import (
	"errors"
	"strings"

	crossplane "github.com/dvershinin/crossplane"
	"github.com/urfave/cli/v2"
)

func minifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "minify",
		Usage: "removes all whitespace from an nginx config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write output to a file instead of stdout",
			},
		},
		Action: func(ctx *cli.Context) error {
			file := ctx.Args().First()
			if file == "" {
				return errors.New("missing config file")
			}
			opts := crossplane.DefaultParseOptions()
			opts.SingleFile = true
			opts.CheckCtx = false
			opts.CheckArgs = false
			payload, err := crossplane.Parse(file, opts)
			if err != nil {
				return err
			}
			if len(payload.Errors) > 0 {
				return payload.Errors[0]
			}
			var b strings.Builder
			minifyBlock(&b, payload.Config[0].Parsed)
			return writeOutput(ctx.String("out"), b.String())
		},
	}
}

func minifyBlock(b *strings.Builder, block []*crossplane.Stmt) {
	for _, stmt := range block {
		b.WriteString(stmt.Directive)
		args := make([]string, len(stmt.Args))
		for i, a := range stmt.Args {
			args[i] = crossplane.Enquote(a)
		}
		if stmt.Directive == "if" {
			b.WriteString(" (" + strings.Join(args, " ") + ")")
		} else if len(args) > 0 {
			b.WriteString(" " + strings.Join(args, " "))
		}
		if stmt.Blocks != nil {
			b.WriteString("{")
			minifyBlock(b, stmt.Blocks)
			b.WriteString("}")
		} else {
			b.WriteString(";")
		}
	}
}
