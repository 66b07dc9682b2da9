package main

import (
	"io"
	"os"
	"time"

	"notelsm/internal/clipboard"
	"notelsm/internal/config"
)

type commandRunner interface {
	Run(args []string) error
}

type textCopier interface {
	Copy(text string) (clipboard.Method, error)
}

type commandWiring struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
	now        func() time.Time
	newCopier  func(allowOSC52 bool) textCopier
}

func defaultCommandWiring(stdin io.Reader, stdout, stderr io.Writer) commandWiring {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.LoadConfig,
		now:        time.Now,
		newCopier: func(allowOSC52 bool) textCopier {
			return clipboard.NewCopier(allowOSC52)
		},
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"hash":   NewHashCommand(wiring),
		"color":  NewColorCommand(wiring),
		"time":   NewTimeCommand(wiring),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
	}
}
