package input

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/signadot/enbt/server"
)

// DecodeTOML decodes a document holding a servers array of tables:
//
//	[[servers]]
//	name = "home"
//	icon = "..."
//	ip = "127.0.0.1"
//	accept_textures = true
func DecodeTOML(content []byte, diag io.Writer) []server.Server {
	if isEmpty(TOMLFormat, content) {
		reportEmpty(diag, TOMLFormat)
		return nil
	}
	var doc map[string]any
	if err := toml.Unmarshal(content, &doc); err != nil {
		reportMalformed(diag, TOMLFormat, err)
		return nil
	}
	return fromDocument(TOMLFormat, doc, diag)
}
