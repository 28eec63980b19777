package main

import (
	"os"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt/interactive"
)

func main() {
	prompt := interactive.New(os.Stdin, os.Stdout, os.Stderr)
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, prompt)
	os.Exit(cmd.Execute())
}
