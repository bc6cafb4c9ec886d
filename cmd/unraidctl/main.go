// Package main is the entry point for unraidctl.
package main

import "github.com/jamesprial/unraid-api/internal/cli"

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.SetVersion(version, buildTime)
	cli.Execute()
}
