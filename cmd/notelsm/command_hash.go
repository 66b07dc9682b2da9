package main

import (
	"flag"
	"fmt"
	"io"

	"notelsm/internal/keyhash"
	"notelsm/internal/logging"
	"notelsm/internal/types"
)

type HashCommand struct {
	wiring commandWiring
}

func NewHashCommand(wiring commandWiring) *HashCommand {
	return &HashCommand{wiring: wiring}
}

func (c *HashCommand) Run(args []string) error {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	var input keyInput
	input.register(fs)
	logLevel := fs.String("log-level", "", "override the configured log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	logger := newCommandLogger(c.wiring.stderr, cfg, *logLevel, "hash")

	keys, err := input.collect(fs.Args(), c.wiring.stdin)
	if err != nil {
		return err
	}
	logger.Debug("hashing keys", logging.F("count", len(keys)), logging.F("composite", input.composite))
	return writeHashes(c.wiring.stdout, keys)
}

func writeHashes(out io.Writer, keys []types.Key) error {
	for _, key := range keys {
		if _, err := fmt.Fprintln(out, keyhash.Sum(key)); err != nil {
			return err
		}
	}
	return nil
}
