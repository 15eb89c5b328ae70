package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/pathlex/internal/cli"
)

const (
	cmdName = "pathlex"

	shortDesc = "Platform-agnostic path manipulation."
	longDesc  = `pathlex parses paths into typed segments and rewrites them without
touching the filesystem.

Both '/' and '\' are accepted as separators. Results are printed in canonical
form with '/' separators unless --platform is set.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
