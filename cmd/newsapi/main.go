// ABOUTME: Main entry point for the newsapi command line tool
// ABOUTME: Queries NewsAPI through the cached connector or serves it over HTTP

package main

import (
	"os"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
