package main

import (
	"fmt"
	"os"
	_ "time/tzdata"
)

const usageText = `notelsm renders note metadata for display.

Usage:
  notelsm <command> [flags]

Commands:
  hash     print the 53-bit key hash of each key
  color    print the display color of each key
  time     format instants relative to now
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Examples:
  notelsm hash work idea
  notelsm color --composite work urgent
  echo '"work" ["work","urgent"]' | notelsm color --json --swatch
  notelsm time --locale en-GB 2024-06-19T10:21:11-04:00[America/New_York]
  notelsm config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdin, os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
