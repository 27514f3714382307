package debug

import (
	"fmt"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

type debug struct {
	Writer bool
	Decode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Writer = boolEnv("ENBT_DEBUG_WRITER")
	d.Decode = boolEnv("ENBT_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Writer reports whether rejected nbt writes should be traced to stderr.
func Writer() bool {
	return d.Writer
}

// Decode reports whether decoded server entries should be dumped to stderr.
func Decode() bool {
	return d.Decode
}

func LogAny(v any) {
	d, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
