package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/enbt/debug"
	"github.com/signadot/enbt/server"
)

// csvFields is the number of fields of a csv record: name, icon, ip and
// the accept textures flag, in that order.
const csvFields = 4

// DecodeCSV decodes one server per line. Fields are separated by any of
// ',', '|' or ';' and surrounding whitespace is trimmed. Blank lines are
// ignored; lines with a field count other than 4 are skipped with a
// warning. The flag is true for any value strconv.ParseBool accepts as
// true.
func DecodeCSV(content []byte, diag io.Writer) []server.Server {
	if isEmpty(CSVFormat, content) {
		reportEmpty(diag, CSVFormat)
		return nil
	}
	lines := strings.Split(string(content), "\n")
	res := make([]server.Server, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) != csvFields {
			report(diag, "warning: line %d has %d fields, expected %d. it will not be added to the servers list",
				i+1, len(fields), csvFields)
			continue
		}
		flag, _ := strconv.ParseBool(fields[3])
		res = append(res, server.Server{
			Name:           fields[0],
			Icon:           fields[1],
			IP:             fields[2],
			AcceptTextures: flag,
		})
	}
	if debug.Decode() {
		debug.LogAny(res)
	}
	return res
}

func isDelim(r rune) bool {
	return r == ',' || r == '|' || r == ';'
}

// splitFields splits line at every delimiter. Unlike strings.FieldsFunc
// it keeps empty fields, so positions are preserved.
func splitFields(line string) []string {
	var fields []string
	for {
		i := strings.IndexFunc(line, isDelim)
		if i < 0 {
			return append(fields, strings.TrimSpace(line))
		}
		fields = append(fields, strings.TrimSpace(line[:i]))
		line = line[i+1:]
	}
}
