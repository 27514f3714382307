package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestDiagWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	d := newDiagWriter(&buf, false)
	fmt.Fprint(d, "warning: one\nsecond ")
	fmt.Fprint(d, "part\ntrailing")
	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "warning: one\nsecond part\ntrailing\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if d.lines != 3 {
		t.Errorf("expected 3 lines, got %d", d.lines)
	}
}

func TestDiagWriterColored(t *testing.T) {
	var buf bytes.Buffer
	d := newDiagWriter(&buf, true)
	fmt.Fprintln(d, "warning: skipped")
	fmt.Fprintln(d, "csv file content is empty. no servers.dat created")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "\x1b[33m") {
		t.Errorf("expected yellow warning, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\x1b[31;1m") {
		t.Errorf("expected bold red error, got %q", lines[1])
	}
}
