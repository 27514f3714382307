// Package input decodes server lists from the text and binary formats
// accepted by the enbt command.
//
// Decoders never fail. Problems are reported as single lines on a
// diagnostic writer: a problem with the document as a whole yields one
// line and no servers, a problem with one entry yields one warning line
// and the entry is skipped.
package input

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/enbt/debug"
	"github.com/signadot/enbt/server"
)

// Decode decodes content in format f.
func Decode(f Format, content []byte, diag io.Writer) []server.Server {
	switch f {
	case CSVFormat:
		return DecodeCSV(content, diag)
	case TOMLFormat:
		return DecodeTOML(content, diag)
	case JSONFormat:
		return DecodeJSON(content, diag)
	case YAMLFormat:
		return DecodeYAML(content, diag)
	case MsgPackFormat:
		return DecodeMsgPack(content, diag)
	case CBORFormat:
		return DecodeCBOR(content, diag)
	}
	report(diag, "%v", fmt.Errorf("%w: %d", ErrBadFormat, f))
	return nil
}

const missingFields = "warning: a server entry is missing required fields. it will not be added to the servers list"

func report(diag io.Writer, format string, args ...any) {
	if diag == nil {
		return
	}
	fmt.Fprintf(diag, format+"\n", args...)
}

func isEmpty(f Format, content []byte) bool {
	if f.IsBinary() {
		return len(content) == 0
	}
	return len(bytes.TrimSpace(content)) == 0
}

func reportEmpty(diag io.Writer, f Format) {
	report(diag, "%s file content is empty. no servers.dat created", f)
}

func reportMalformed(diag io.Writer, f Format, err error) {
	if debug.Decode() {
		debug.LogAny(err.Error())
	}
	if f == TOMLFormat {
		report(diag, "%s file is malformed. validate the syntax and try again", f)
		return
	}
	report(diag, "%s is malformed. validate the syntax and try again", f)
}

func reportNoServers(diag io.Writer, f Format) {
	if f == TOMLFormat {
		report(diag, "%s is malformed. requires a '%s' table as an array of tables", f, server.ListName)
		return
	}
	report(diag, "%s is malformed. requires a '%s' array", f, server.ListName)
}

// fromDocument extracts the servers from a generic decoded document,
// as produced by the structured decoders.
func fromDocument(f Format, doc any, diag io.Writer) []server.Server {
	top, ok := asMap(doc)
	if !ok {
		reportNoServers(diag, f)
		return nil
	}
	entries, ok := asSlice(top[server.ListName])
	if !ok {
		reportNoServers(diag, f)
		return nil
	}
	res := make([]server.Server, 0, len(entries))
	for _, e := range entries {
		s, ok := entry(e)
		if !ok {
			report(diag, missingFields)
			continue
		}
		res = append(res, s)
	}
	if debug.Decode() {
		debug.LogAny(res)
	}
	return res
}

// entry converts one decoded entry. icon, ip and name must be non-empty
// strings and accept_textures a boolean.
func entry(v any) (server.Server, bool) {
	m, ok := asMap(v)
	if !ok {
		return server.Server{}, false
	}
	var s server.Server
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"icon", &s.Icon},
		{"ip", &s.IP},
		{"name", &s.Name},
	} {
		str, ok := m[f.key].(string)
		if !ok || str == "" {
			return server.Server{}, false
		}
		*f.dst = str
	}
	b, ok := m["accept_textures"].(bool)
	if !ok {
		return server.Server{}, false
	}
	s.AcceptTextures = b
	return s, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		res := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			res[ks] = v
		}
		return res, true
	}
	return nil, false
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		res := make([]any, len(s))
		for i := range s {
			res[i] = s[i]
		}
		return res, true
	}
	return nil, false
}
