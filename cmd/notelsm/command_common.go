package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"notelsm/internal/config"
	"notelsm/internal/logging"
	"notelsm/internal/types"
)

var errUsage = errors.New("usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	if errors.Is(err, errUsage) || errors.Is(err, types.ErrInvalidInput) {
		os.Exit(2)
	}
	os.Exit(1)
}

func newCommandLogger(stderr io.Writer, cfg config.Config, override, command string) logging.Logger {
	level := cfg.LogLevel()
	if strings.TrimSpace(override) != "" {
		level = override
	}
	return logging.New(stderr, logging.ParseLevel(level)).With(logging.F("cmd", command))
}

// keyInput is the shared key selection of hash and color.
type keyInput struct {
	composite bool
	json      bool
}

func (in *keyInput) register(fs *flag.FlagSet) {
	fs.BoolVar(&in.composite, "composite", false, "treat all arguments as one ordered composite key")
	fs.BoolVar(&in.json, "json", false, "read keys from stdin as JSON strings or string arrays")
}

func (in keyInput) collect(args []string, stdin io.Reader) ([]types.Key, error) {
	if in.json {
		if len(args) > 0 || in.composite {
			return nil, usageErrorf("--json reads keys from stdin and takes no arguments or --composite")
		}
		return decodeKeys(stdin)
	}
	if in.composite {
		return []types.Key{types.CompositeKey(args...)}, nil
	}
	if len(args) == 0 {
		return nil, usageErrorf("at least one key is required")
	}
	keys := make([]types.Key, 0, len(args))
	for _, arg := range args {
		keys = append(keys, types.SingleKey(arg))
	}
	return keys, nil
}

func decodeKeys(r io.Reader) ([]types.Key, error) {
	decoder := json.NewDecoder(r)
	var keys []types.Key
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: key %d: %v", types.ErrInvalidInput, len(keys)+1, err)
		}
		key, err := types.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", len(keys)+1, err)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, usageErrorf("no keys on stdin")
	}
	return keys, nil
}
