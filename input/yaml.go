package input

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/enbt/server"
)

// DecodeYAML decodes a mapping holding a servers sequence.
func DecodeYAML(content []byte, diag io.Writer) []server.Server {
	if isEmpty(YAMLFormat, content) {
		reportEmpty(diag, YAMLFormat)
		return nil
	}
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		reportMalformed(diag, YAMLFormat, err)
		return nil
	}
	return fromDocument(YAMLFormat, doc, diag)
}
