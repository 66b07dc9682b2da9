package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

type Method uint8

const (
	MethodSystem Method = iota
	MethodOSC52
)

func (m Method) String() string {
	if m == MethodOSC52 {
		return "osc52"
	}
	return "system"
}

// Copier writes text to the system clipboard, falling back to an OSC52
// escape sequence on the controlling terminal.
type Copier struct {
	AllowOSC52 bool

	getenv      func(string) string
	writeSystem func(string) error
	openTTY     func() (io.WriteCloser, error)
}

func NewCopier(allowOSC52 bool) *Copier {
	return &Copier{
		AllowOSC52:  allowOSC52,
		getenv:      os.Getenv,
		writeSystem: sysclip.WriteAll,
		openTTY: func() (io.WriteCloser, error) {
			return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		},
	}
}

func (c *Copier) Copy(text string) (Method, error) {
	systemErr := c.writeSystem(text)
	if systemErr == nil {
		return MethodSystem, nil
	}
	if !c.AllowOSC52 {
		return MethodSystem, fmt.Errorf("system clipboard failed: %s", c.humanize(systemErr))
	}
	oscErr := c.writeOSC52(text)
	if oscErr == nil {
		return MethodOSC52, nil
	}
	return MethodSystem, c.combine(systemErr, oscErr)
}

func (c *Copier) writeOSC52(text string) error {
	if !c.osc52Available() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := c.openTTY()
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return c.writeSequence(tty, text)
}

func (c *Copier) writeSequence(w io.Writer, text string) error {
	termName := strings.ToLower(strings.TrimSpace(c.getenv("TERM")))
	seq := osc52.New(text)
	if c.getenv("TMUX") != "" {
		// Plain and tmux-wrapped, for either tmux clipboard setting.
		if _, err := seq.WriteTo(w); err != nil {
			return err
		}
		_, err := seq.Tmux().WriteTo(w)
		return err
	}
	if strings.HasPrefix(termName, "screen") {
		_, err := seq.Screen().WriteTo(w)
		return err
	}
	_, err := seq.WriteTo(w)
	return err
}

func (c *Copier) osc52Available() bool {
	switch strings.ToLower(strings.TrimSpace(c.getenv("NOTELSM_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(c.getenv("TERM"))
	return termName != "" && !strings.EqualFold(termName, "dumb")
}

func (c *Copier) combine(systemErr, oscErr error) error {
	if c.missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %s", c.humanize(oscErr))
	}
	return fmt.Errorf("system clipboard failed: %s; OSC52 fallback failed: %s", c.humanize(systemErr), c.humanize(oscErr))
}

func (c *Copier) humanize(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" {
		if c.missingDisplay() {
			return "no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset)"
		}
		return "clipboard helper exited with status 1"
	}
	return msg
}

func (c *Copier) missingDisplay() bool {
	return strings.TrimSpace(c.getenv("DISPLAY")) == "" && strings.TrimSpace(c.getenv("WAYLAND_DISPLAY")) == ""
}
