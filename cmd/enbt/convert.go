package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/scott-cotton/cli"
	"github.com/signadot/enbt/input"
	"github.com/signadot/enbt/nbt"
	"github.com/signadot/enbt/server"
)

var ErrNoServers = errors.New("there are no servers in your input file")

// convert reads the server list named by cfg, decodes it and writes the
// servers document. Diagnostics and the summary go to stderr. It returns
// the number of servers written.
func convert(cfg *Config, stdin io.Reader, stderr io.Writer, tty bool) (int, error) {
	if cfg.Input == "" {
		return 0, fmt.Errorf("%w: -i is required", cli.ErrUsage)
	}
	output := cfg.Output
	if output == "" {
		output = defaultOutput
	}
	f, err := cfg.inputFormat()
	if err != nil {
		return 0, err
	}
	content, err := readInput(cfg.Input, stdin)
	if err != nil {
		return 0, err
	}

	diag := newDiagWriter(stderr, tty || cfg.Color)
	servers := input.Decode(f, content, diag)
	if err := diag.Flush(); err != nil {
		return 0, err
	}
	if len(servers) == 0 {
		return 0, ErrNoServers
	}

	log := newLogger(stderr, cfg.Verbose)
	n, err := server.WriteFile(output, servers,
		nbt.WithAutoComplete(!cfg.NoRepair),
		nbt.WithMaxDepth(cfg.MaxDepth),
		nbt.WithLogger(log))
	if err != nil {
		return 0, fmt.Errorf("error writing %s: %w", output, err)
	}
	log.Info(fmt.Sprintf("wrote %d servers (%s) to %s", len(servers), humanize.Bytes(uint64(n)), output))
	return len(servers), nil
}

func (cfg *Config) inputFormat() (input.Format, error) {
	if cfg.Format != nil {
		return *cfg.Format, nil
	}
	if cfg.Input == "-" {
		return 0, fmt.Errorf("%w: -t is required when reading from stdin", cli.ErrUsage)
	}
	f, err := input.FormatFromPath(cfg.Input)
	if err != nil {
		return 0, fmt.Errorf("%w: %w, provide an explicit input type with -t", cli.ErrUsage, err)
	}
	return f, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		d, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can't load %q: file doesn't exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return d, nil
}
