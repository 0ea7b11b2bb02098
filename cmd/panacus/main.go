// Command panacus computes pangenome count statistics over GFA1 variation
// graphs: coverage histograms, growth curves, and presence/absence tables
// (spec.md §4, §6). It follows the teacher's graphdb-admin convention of a
// top-level command switch delegating to one flag.FlagSet per subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/dd0wney/panacus-go/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	token := os.Args[1]
	if token == "help" || token == "--help" || token == "-h" {
		printUsage()
		return
	}
	if token == "version" || token == "--version" {
		fmt.Println("panacus-go v0.1.0")
		return
	}

	cmd, ok := config.ResolveSubcommand(token)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", token)
		printUsage()
		os.Exit(1)
	}

	if err := run(cmd, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, fatalStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(usageBanner())
}
