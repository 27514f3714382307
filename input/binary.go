package input

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/signadot/enbt/server"
	"github.com/vmihailenco/msgpack/v5"
)

// DecodeMsgPack decodes a MessagePack map holding a servers array.
func DecodeMsgPack(content []byte, diag io.Writer) []server.Server {
	if isEmpty(MsgPackFormat, content) {
		reportEmpty(diag, MsgPackFormat)
		return nil
	}
	var doc any
	if err := msgpack.Unmarshal(content, &doc); err != nil {
		reportMalformed(diag, MsgPackFormat, err)
		return nil
	}
	return fromDocument(MsgPackFormat, doc, diag)
}

var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// DecodeCBOR decodes a CBOR map holding a servers array.
func DecodeCBOR(content []byte, diag io.Writer) []server.Server {
	if isEmpty(CBORFormat, content) {
		reportEmpty(diag, CBORFormat)
		return nil
	}
	var doc any
	if err := cborDecMode.Unmarshal(content, &doc); err != nil {
		reportMalformed(diag, CBORFormat, err)
		return nil
	}
	return fromDocument(CBORFormat, doc, diag)
}
