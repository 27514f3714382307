package input

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/signadot/enbt/server"
	"github.com/tidwall/jsonc"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeJSON decodes an object holding a servers array. Comments and
// trailing commas are allowed.
func DecodeJSON(content []byte, diag io.Writer) []server.Server {
	if isEmpty(JSONFormat, content) {
		reportEmpty(diag, JSONFormat)
		return nil
	}
	var doc any
	if err := json.Unmarshal(jsonc.ToJSON(content), &doc); err != nil {
		reportMalformed(diag, JSONFormat, err)
		return nil
	}
	return fromDocument(JSONFormat, doc, diag)
}
