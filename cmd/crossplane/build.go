package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	crossplane "github.com/dvershinin/crossplane"
	"github.com/urfave/cli/v2"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "builds an nginx config from a JSON payload",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "directory to build the config files in",
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "overwrite existing files without asking",
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
			&cli.BoolFlag{
				Name:  "no-headers",
				Usage: "do not write generated-file headers",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "write the config to stdout instead of the filesystem",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print the name and size of each file written",
			},
		},
		Action: func(ctx *cli.Context) error {
			file := ctx.Args().First()
			if file == "" {
				return errors.New("missing payload file")
			}
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var payload crossplane.Payload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return err
			}
			opts := &crossplane.BuildOptions{
				Indent: ctx.Int("indent"),
				Tabs:   ctx.Bool("tabs"),
				Header: !ctx.Bool("no-headers"),
			}
			return buildPayload(&payload, ctx.String("dir"), opts,
				ctx.Bool("force"), ctx.Bool("stdout"), ctx.Bool("verbose"))
		},
	}
}

func buildPayload(payload *crossplane.Payload, dir string, opts *crossplane.BuildOptions, force, stdout, verbose bool) error {
	for _, config := range payload.Config {
		path := config.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, filepath.FromSlash(path))
		}
		output := crossplane.Build(config.Parsed, opts)
		if stdout {
			fmt.Printf("# %s\n%s\n", path, output)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if !force {
			if _, err := os.Stat(path); err == nil && !confirmOverwrite(path) {
				continue
			}
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("wrote to %s (%s)\n", path, bytefmt.ByteSize(uint64(len(output))))
		}
	}
	return nil
}

func confirmOverwrite(path string) bool {
	fmt.Printf("overwrite %s? (y/n) ", path)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
