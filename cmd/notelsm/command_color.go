package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"notelsm/internal/keycolor"
	"notelsm/internal/keyhash"
	"notelsm/internal/logging"
	"notelsm/internal/types"
)

const (
	maxKeyColumnWidth = 32
	swatchText        = "    "
	columnGap         = "  "
)

type ColorCommand struct {
	wiring commandWiring
}

func NewColorCommand(wiring commandWiring) *ColorCommand {
	return &ColorCommand{wiring: wiring}
}

func (c *ColorCommand) Run(args []string) error {
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	var input keyInput
	input.register(fs)
	swatch := fs.Bool("swatch", false, "append a colored swatch column")
	copyLast := fs.Bool("copy", false, "copy the last color to the clipboard")
	logLevel := fs.String("log-level", "", "override the configured log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	logger := newCommandLogger(c.wiring.stderr, cfg, *logLevel, "color")

	keys, err := input.collect(fs.Args(), c.wiring.stdin)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(keys)+1)
	header := []string{"KEY", "HASH", "COLOR", "HEX"}
	if *swatch {
		header = append(header, "SWATCH")
	}
	rows = append(rows, header)
	var last keycolor.Color
	for _, key := range keys {
		last = keycolor.For(key)
		row := []string{
			displayKey(key),
			strconv.FormatUint(keyhash.Sum(key), 10),
			last.String(),
			last.Hex(),
		}
		if *swatch {
			row = append(row, renderSwatch(last))
		}
		rows = append(rows, row)
	}
	logger.Debug("derived colors", logging.F("count", len(keys)), logging.F("swatch", *swatch))
	if err := writeTable(c.wiring.stdout, rows); err != nil {
		return err
	}

	if *copyLast {
		method, err := c.wiring.newCopier(cfg.OSC52Enabled()).Copy(last.String())
		if err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		logger.Info("copied color", logging.F("color", last.String()), logging.F("method", method))
	}
	return nil
}

func displayKey(key types.Key) string {
	text := key.String()
	if text == "" {
		text = `""`
	}
	return runewidth.Truncate(text, maxKeyColumnWidth, "…")
}

func renderSwatch(color keycolor.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color.Hex())).Render(swatchText)
}

// writeTable pads columns by display width, so wide runes and styled cells
// stay aligned.
func writeTable(out io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			b.WriteString(strings.Repeat(" ", widths[i]-ansi.StringWidth(cell)))
			b.WriteString(columnGap)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(out, b.String())
	return err
}
