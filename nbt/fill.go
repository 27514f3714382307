package nbt

// Fill holds the placeholder values written by auto-completion, one per
// element type, and the string tag appended to flag a repaired document.
type Fill struct {
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	WarningName string
	WarningText string
}

// DefaultFill is the placeholder table used unless WithFill is given.
var DefaultFill = Fill{
	Byte:   114,
	Short:  514,
	Int:    114514,
	Long:   1919810,
	Float:  114.514,
	Double: 1919810.114514,
	String: "autoString",

	WarningName: "enbtWarning",
	WarningText: "this document had unclosed containers and was completed automatically",
}

// autoComplete closes every open container, writing one placeholder
// element at a time into unfinished lists, then appends the warning tag
// at the top level.
func (w *Writer) autoComplete() int {
	w.log.Debug("nbt: completing open containers", "depth", w.stack.Depth())
	n := 0
	for {
		c, ok := w.stack.top()
		if !ok {
			break
		}
		if c.Kind == CompoundContext {
			n += w.EndCompound()
			continue
		}
		depth := w.stack.Depth()
		n += w.fillElement(c.Elem)
		if after, _ := w.stack.top(); w.stack.Depth() == depth && after == c {
			// no placeholder could be written; give up on this list
			w.log.Debug("nbt: abandoning list", "elem", c.Elem, "remaining", c.Remaining)
			w.stack.pop()
			w.stack.elementWritten()
		}
	}
	f := &w.opts.fill
	return n + w.WriteString(f.WarningName, f.WarningText)
}

// fillElement writes a single placeholder element of type t into the
// innermost list. Nested containers hold one element each, or none when
// the stack has no room left for them.
func (w *Writer) fillElement(t TagType) int {
	f := &w.opts.fill
	size := 1
	if w.stack.Full() {
		size = 0
	}
	switch t {
	case Byte:
		return w.WriteInt8("", f.Byte)
	case Short:
		return w.WriteInt16("", f.Short)
	case Int:
		return w.WriteInt32("", f.Int)
	case Long:
		return w.WriteInt64("", f.Long)
	case Float:
		return w.WriteFloat32("", f.Float)
	case Double:
		return w.WriteFloat64("", f.Double)
	case String:
		return w.WriteString("", f.String)
	case ByteArray:
		return w.BeginByteArray("", size)
	case IntArray:
		return w.BeginIntArray("", size)
	case LongArray:
		return w.BeginLongArray("", size)
	case List:
		if size == 0 {
			return w.BeginList("", End, 0)
		}
		return w.BeginList("", Int, 1)
	case Compound:
		// an empty compound is just its terminator
		n := w.writeByte(byte(End))
		w.stack.elementWritten()
		return n
	}
	return 0
}
