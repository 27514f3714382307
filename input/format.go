package input

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a server list.
type Format int

const (
	CSVFormat Format = iota
	TOMLFormat
	JSONFormat
	YAMLFormat
	MsgPackFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"c":       CSVFormat,
		"csv":     CSVFormat,
		"toml":    TOMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"jsonc":   JSONFormat,
		"y":       YAMLFormat,
		"yml":     YAMLFormat,
		"yaml":    YAMLFormat,
		"mpk":     MsgPackFormat,
		"msgpack": MsgPackFormat,
		"cbor":    CBORFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FormatFromPath returns the format named by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrBadFormat, path)
	}
	return ParseFormat(ext[1:])
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case CSVFormat:
		return []byte("csv"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case MsgPackFormat:
		return []byte("msgpack"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether f is a binary encoding, in which leading
// and trailing whitespace bytes are significant.
func (f Format) IsBinary() bool { return f == MsgPackFormat || f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case CSVFormat:
		return ".csv"
	case TOMLFormat:
		return ".toml"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case MsgPackFormat:
		return ".msgpack"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{CSVFormat, TOMLFormat, JSONFormat, YAMLFormat, MsgPackFormat, CBORFormat}
}
