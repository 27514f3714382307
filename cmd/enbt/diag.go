package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// diagWriter prints decoder diagnostics line by line, warnings in
// yellow and errors in red when colored.
type diagWriter struct {
	w       io.Writer
	buf     bytes.Buffer
	warn    *color.Color
	err     *color.Color
	colored bool
	lines   int
}

func newDiagWriter(w io.Writer, colored bool) *diagWriter {
	d := &diagWriter{
		w:       w,
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
		colored: colored,
	}
	if colored {
		d.warn.EnableColor()
		d.err.EnableColor()
	} else {
		d.warn.DisableColor()
		d.err.DisableColor()
	}
	return d
}

func (d *diagWriter) Write(p []byte) (int, error) {
	d.buf.Write(p)
	for {
		i := bytes.IndexByte(d.buf.Bytes(), '\n')
		if i < 0 {
			return len(p), nil
		}
		line := string(d.buf.Next(i + 1))
		if err := d.println(strings.TrimSuffix(line, "\n")); err != nil {
			return len(p), err
		}
	}
}

// Flush prints a trailing partial line, if any.
func (d *diagWriter) Flush() error {
	if d.buf.Len() == 0 {
		return nil
	}
	line := d.buf.String()
	d.buf.Reset()
	return d.println(line)
}

func (d *diagWriter) println(line string) error {
	d.lines++
	c := d.err
	if strings.HasPrefix(line, "warning:") {
		c = d.warn
	}
	_, err := c.Fprintln(d.w, line)
	return err
}
