package input

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/enbt/server"
)

func TestCSVEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "  \r\n\t"} {
		var diag bytes.Buffer
		if got := DecodeCSV([]byte(in), &diag); len(got) != 0 {
			t.Errorf("%q: expected no servers, got %v", in, got)
		}
		if diag.String() != "csv file content is empty. no servers.dat created\n" {
			t.Errorf("%q: unexpected diagnostics %q", in, diag.String())
		}
	}
}

func TestCSVDelimiters(t *testing.T) {
	want := []server.Server{{Name: "Server", Icon: "soidfjsiodf", IP: "1.0.0.1", AcceptTextures: true}}
	for _, d := range []string{",", "|", ";"} {
		var diag bytes.Buffer
		in := strings.Join([]string{"Server", "soidfjsiodf", "1.0.0.1", "1"}, d)
		got := DecodeCSV([]byte(in), &diag)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("delimiter %q (-want +got):\n%s", d, diff)
		}
		if diag.Len() != 0 {
			t.Errorf("delimiter %q: unexpected diagnostics %q", d, diag.String())
		}
	}
}

func TestCSVMixedDelimiters(t *testing.T) {
	got := DecodeCSV([]byte("a|b;c,true"), nil)
	want := []server.Server{{Name: "a", Icon: "b", IP: "c", AcceptTextures: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCSVLoad(t *testing.T) {
	const load = 50000
	var buf bytes.Buffer
	for i := 0; i < load; i++ {
		fmt.Fprintf(&buf, "Server%d,soidfjsiodf,1.0.0.1,1\n", i+1)
	}
	var diag bytes.Buffer
	got := DecodeCSV(buf.Bytes(), &diag)
	if len(got) != load {
		t.Fatalf("expected %d servers, got %d", load, len(got))
	}
	for i, s := range got {
		want := server.Server{Name: fmt.Sprintf("Server%d", i+1), Icon: "soidfjsiodf", IP: "1.0.0.1", AcceptTextures: true}
		if s != want {
			t.Fatalf("server %d: got %+v, want %+v", i, s, want)
		}
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostics %q", diag.String())
	}
}

func TestCSVLines(t *testing.T) {
	in := strings.Join([]string{
		"one, icon1 ,10.0.0.1, 0",
		"",
		"two,,10.0.0.2,true\r",
		"three,icon3,10.0.0.3",
		"four,icon4,10.0.0.4,1,extra",
		"   ",
		"five,icon5,10.0.0.5,no",
		"",
	}, "\n")
	var diag bytes.Buffer
	got := DecodeCSV([]byte(in), &diag)
	want := []server.Server{
		{Name: "one", Icon: "icon1", IP: "10.0.0.1"},
		{Name: "two", Icon: "", IP: "10.0.0.2", AcceptTextures: true},
		{Name: "five", Icon: "icon5", IP: "10.0.0.5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	wantDiag := "warning: line 4 has 3 fields, expected 4. it will not be added to the servers list\n" +
		"warning: line 5 has 5 fields, expected 4. it will not be added to the servers list\n"
	if diff := cmp.Diff(wantDiag, diag.String()); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}
}

func TestSplitFields(t *testing.T) {
	tests := map[string][]string{
		"":        {""},
		"a":       {"a"},
		"a,b":     {"a", "b"},
		",":       {"", ""},
		" a |b; ": {"a", "b", ""},
	}
	for in, want := range tests {
		if diff := cmp.Diff(want, splitFields(in)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", in, diff)
		}
	}
}
