package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "crossplane"
	app.Usage = "Reliable and fast NGINX configuration file parser and builder"
	app.Description = descriptionText
	app.Commands = []*cli.Command{
		parseCommand(),
		buildCommand(),
		lexCommand(),
		minifyCommand(),
		formatCommand(),
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const descriptionText = `
crossplane converts nginx configurations to and from a JSON payload format.
It parses full configuration trees including files pulled in by include
directives, validates directives against the contexts they appear in, and
builds configuration files back from the payload.
`

// writeOutput sends content to the --out file, or stdout when out is empty.
func writeOutput(out, content string) error {
	if out == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	return os.WriteFile(out, []byte(content), 0o644)
}
