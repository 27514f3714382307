package nbt

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"math"
)

// maxStringLen is the longest name or string payload representable by
// the two byte length prefix.
const maxStringLen = math.MaxUint16

var (
	ErrNotOpen       = errors.New("writer is not open")
	ErrTooLong       = errors.New("name or string longer than 65535 bytes")
	ErrTypeMismatch  = errors.New("tag type does not match list element type")
	ErrNotInCompound = errors.New("no open compound to end")
	ErrStackFull     = errors.New("context stack is full")
	ErrBadLength     = errors.New("invalid list or array length")
	ErrBadElemType   = errors.New("invalid list element type")
)

// Writer streams an NBT document to a sink.
//
// The document's root is an anonymous compound whose header is written
// by Open and whose terminator is written by Close. Between the two,
// each call emits one tag or one container boundary. Containers that
// are open are tracked on a bounded stack: inside a compound (or at
// the top level) values are written as full named tags, inside a list
// or array only the payload of values of the declared element type is
// accepted.
//
// Operations never fail loudly. A call that is not valid in the current
// context writes nothing and returns 0; see Dropped. Errors from the
// underlying sink are sticky and reported by Err and Close.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	sink    *bufio.Writer
	release func(ok bool) error
	stack   *stack
	opts    *writerOpts
	log     *slog.Logger
	scratch [8]byte

	count   int64
	dropped int
	err     error

	opened bool // Open has been called
	open   bool // Open has been called and Close has not
}

// New returns a writer that has not been opened. Call Open to attach a
// sink and write the document header.
func New(opts ...Option) *Writer {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	return &Writer{
		stack: newStack(o.maxDepth),
		opts:  o,
		log:   o.logger(),
	}
}

// NewWriter returns a writer that is already open on w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	nw := New(opts...)
	nw.Open(w)
	return nw
}

// Open attaches w as the sink and writes the root compound header. A
// writer can be opened once; later calls do nothing and return 0.
//
// The writer flushes w on Close but does not close it.
func (w *Writer) Open(sink io.Writer) int {
	if w.opened {
		return 0
	}
	w.opened = true
	w.open = true
	w.sink = bufio.NewWriter(sink)
	n := w.writeByte(byte(Compound))
	n += w.putUint16(0)
	return n
}

// Queryable state

// Count returns the number of bytes emitted so far.
func (w *Writer) Count() int64 {
	return w.count
}

// Depth returns the number of open containers below the root.
func (w *Writer) Depth() int {
	return w.stack.Depth()
}

// Current returns the innermost open container, if any.
func (w *Writer) Current() (Context, bool) {
	return w.stack.top()
}

// IsOpen reports whether the writer accepts writes.
func (w *Writer) IsOpen() bool {
	return w.open
}

// Dropped returns the number of operations rejected so far.
func (w *Writer) Dropped() int {
	return w.dropped
}

// Err returns the first error reported by the sink.
func (w *Writer) Err() error {
	return w.err
}

// Scalar values

func (w *Writer) WriteInt8(name string, v int8) int {
	return w.value(Byte, name, func() int { return w.writeByte(byte(v)) })
}

// WriteBool writes v as a byte tag holding 1 or 0.
func (w *Writer) WriteBool(name string, v bool) int {
	var b int8
	if v {
		b = 1
	}
	return w.WriteInt8(name, b)
}

func (w *Writer) WriteInt16(name string, v int16) int {
	return w.value(Short, name, func() int { return w.putUint16(uint16(v)) })
}

func (w *Writer) WriteInt32(name string, v int32) int {
	return w.value(Int, name, func() int { return w.putUint32(uint32(v)) })
}

func (w *Writer) WriteInt64(name string, v int64) int {
	return w.value(Long, name, func() int { return w.putUint64(uint64(v)) })
}

func (w *Writer) WriteFloat32(name string, v float32) int {
	return w.value(Float, name, func() int { return w.putUint32(math.Float32bits(v)) })
}

func (w *Writer) WriteFloat64(name string, v float64) int {
	return w.value(Double, name, func() int { return w.putUint64(math.Float64bits(v)) })
}

// WriteString writes a string tag. The value is written as is, with a
// two byte length prefix.
func (w *Writer) WriteString(name, v string) int {
	if len(v) > maxStringLen {
		return w.reject("string", String, name, ErrTooLong)
	}
	return w.value(String, name, func() int { return w.putString(v) })
}

// Containers

// BeginCompound opens a compound. Inside a compound it writes the tag
// header; as an element of a list of compounds nothing is written, the
// list header already carries the type.
func (w *Writer) BeginCompound(name string) int {
	inList, ok := w.admit("compound", Compound, name)
	if !ok {
		return 0
	}
	if w.stack.Full() {
		return w.reject("compound", Compound, name, ErrStackFull)
	}
	n := 0
	if !inList {
		n = w.putHead(Compound, name)
	}
	w.stack.push(compoundContext())
	return n
}

// EndCompound closes the innermost container if it is a compound. The
// root compound is only closed by Close.
func (w *Writer) EndCompound() int {
	if !w.open {
		return w.reject("end", End, "", ErrNotOpen)
	}
	if c, ok := w.stack.top(); !ok || c.Kind != CompoundContext {
		return w.reject("end", End, "", ErrNotInCompound)
	}
	n := w.writeByte(byte(End))
	w.stack.pop()
	w.stack.elementWritten()
	return n
}

// BeginList opens a list of n elements of type elem. The list closes
// by itself once n elements have been written; a list of 0 elements is
// closed immediately.
func (w *Writer) BeginList(name string, elem TagType, n int) int {
	if !elem.Valid() || (elem == End && n != 0) {
		return w.reject("list", List, name, ErrBadElemType)
	}
	return w.beginSequence("list", List, name, elem, n)
}

func (w *Writer) BeginByteArray(name string, n int) int {
	return w.beginSequence("byte array", ByteArray, name, Byte, n)
}

func (w *Writer) BeginIntArray(name string, n int) int {
	return w.beginSequence("int array", IntArray, name, Int, n)
}

func (w *Writer) BeginLongArray(name string, n int) int {
	return w.beginSequence("long array", LongArray, name, Long, n)
}

// WriteByteArray writes a complete byte array. An accepted array head
// always writes its length, so a zero count means it was rejected.
func (w *Writer) WriteByteArray(name string, vs []byte) int {
	n := w.BeginByteArray(name, len(vs))
	if n == 0 {
		return 0
	}
	for _, v := range vs {
		n += w.WriteInt8("", int8(v))
	}
	return n
}

// WriteIntArray writes a complete int array.
func (w *Writer) WriteIntArray(name string, vs []int32) int {
	n := w.BeginIntArray(name, len(vs))
	if n == 0 {
		return 0
	}
	for _, v := range vs {
		n += w.WriteInt32("", v)
	}
	return n
}

// WriteLongArray writes a complete long array.
func (w *Writer) WriteLongArray(name string, vs []int64) int {
	n := w.BeginLongArray(name, len(vs))
	if n == 0 {
		return 0
	}
	for _, v := range vs {
		n += w.WriteInt64("", v)
	}
	return n
}

// Close completes the document and releases the sink. Open containers
// are completed with placeholder values unless auto-completion is
// disabled. Close returns the total byte count and the first sink
// error; calling it again returns the same values and writes nothing.
func (w *Writer) Close() (int64, error) {
	if !w.open {
		return w.count, w.err
	}
	if !w.stack.Empty() {
		if w.opts.autoComplete {
			w.autoComplete()
		} else {
			w.log.Debug("nbt: abandoning open containers", "depth", w.stack.Depth())
		}
	}
	w.writeByte(byte(End))
	w.open = false
	if err := w.sink.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	if w.release != nil {
		if err := w.release(w.err == nil); err != nil && w.err == nil {
			w.err = err
		}
		w.release = nil
	}
	w.log.Debug("nbt: closed", "bytes", w.count, "dropped", w.dropped, "err", w.err)
	return w.count, w.err
}

// admit applies the dispatch rule for a value or container of type t.
// It reports whether the current context is a list, and whether the
// operation may proceed.
func (w *Writer) admit(op string, t TagType, name string) (inList, ok bool) {
	if !w.open {
		w.reject(op, t, name, ErrNotOpen)
		return false, false
	}
	if w.stack.inCompound() {
		if len(name) > maxStringLen {
			w.reject(op, t, name, ErrTooLong)
			return false, false
		}
		return false, true
	}
	if c, _ := w.stack.top(); c.Elem != t {
		w.reject(op, t, name, ErrTypeMismatch)
		return true, false
	}
	return true, true
}

// value writes a non-container tag whose payload is produced by payload.
func (w *Writer) value(t TagType, name string, payload func() int) int {
	inList, ok := w.admit(t.String(), t, name)
	if !ok {
		return 0
	}
	n := 0
	if !inList {
		n = w.putHead(t, name)
	}
	n += payload()
	w.stack.elementWritten()
	return n
}

func (w *Writer) beginSequence(op string, t TagType, name string, elem TagType, size int) int {
	if size < 0 || size > math.MaxInt32 {
		return w.reject(op, t, name, ErrBadLength)
	}
	inList, ok := w.admit(op, t, name)
	if !ok {
		return 0
	}
	if size > 0 && w.stack.Full() {
		return w.reject(op, t, name, ErrStackFull)
	}
	n := 0
	if !inList {
		n = w.putHead(t, name)
	}
	if t == List {
		n += w.writeByte(byte(elem))
	}
	n += w.putUint32(uint32(size))
	if size == 0 {
		w.stack.elementWritten()
		return n
	}
	w.stack.push(listContext(elem, size))
	return n
}

func (w *Writer) reject(op string, t TagType, name string, err error) int {
	w.dropped++
	w.log.Debug("nbt: dropped write", "op", op, "type", t, "name", name, "depth", w.stack.Depth(), "err", err)
	return 0
}

// Wire encoding

func (w *Writer) putHead(t TagType, name string) int {
	n := w.writeByte(byte(t))
	return n + w.putString(name)
}

func (w *Writer) putString(s string) int {
	n := w.putUint16(uint16(len(s)))
	k, err := w.sink.WriteString(s)
	w.account(k, err)
	return n + k
}

func (w *Writer) putUint16(v uint16) int {
	binary.NativeEndian.PutUint16(w.scratch[:2], be16(v))
	return w.writeBytes(w.scratch[:2])
}

func (w *Writer) putUint32(v uint32) int {
	binary.NativeEndian.PutUint32(w.scratch[:4], be32(v))
	return w.writeBytes(w.scratch[:4])
}

func (w *Writer) putUint64(v uint64) int {
	binary.NativeEndian.PutUint64(w.scratch[:8], be64(v))
	return w.writeBytes(w.scratch[:8])
}

func (w *Writer) writeByte(b byte) int {
	if err := w.sink.WriteByte(b); err != nil {
		w.account(0, err)
		return 0
	}
	w.account(1, nil)
	return 1
}

func (w *Writer) writeBytes(p []byte) int {
	n, err := w.sink.Write(p)
	w.account(n, err)
	return n
}

func (w *Writer) account(n int, err error) {
	w.count += int64(n)
	if err != nil && w.err == nil {
		w.err = err
	}
}
