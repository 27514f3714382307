package nbt

// ContextKind distinguishes the two kinds of open container.
type ContextKind uint8

const (
	// CompoundContext is an open compound; it is closed explicitly
	// by EndCompound.
	CompoundContext ContextKind = iota + 1
	// ListContext is an open list or array awaiting Remaining more
	// elements of type Elem; it closes itself when Remaining reaches 0.
	ListContext
)

func (k ContextKind) String() string {
	switch k {
	case CompoundContext:
		return "compound"
	case ListContext:
		return "list"
	default:
		return "unknown"
	}
}

// Context is one frame of the writer's container stack.
type Context struct {
	Kind      ContextKind
	Elem      TagType
	Remaining int
}

func compoundContext() Context {
	return Context{Kind: CompoundContext, Elem: Compound}
}

func listContext(elem TagType, n int) Context {
	return Context{Kind: ListContext, Elem: elem, Remaining: n}
}

// DefaultMaxDepth is the default capacity of the context stack.
const DefaultMaxDepth = 64

// stack is a fixed capacity stack of open containers, innermost last.
// An empty stack means the writer is directly inside the root compound.
type stack struct {
	frames []Context
}

func newStack(capacity int) *stack {
	if capacity <= 0 {
		capacity = DefaultMaxDepth
	}
	return &stack{frames: make([]Context, 0, capacity)}
}

func (s *stack) Depth() int  { return len(s.frames) }
func (s *stack) Empty() bool { return len(s.frames) == 0 }
func (s *stack) Full() bool  { return len(s.frames) == cap(s.frames) }

// push adds c on top; it returns false and leaves the stack unchanged
// when the stack is at capacity.
func (s *stack) push(c Context) bool {
	if s.Full() {
		return false
	}
	s.frames = append(s.frames, c)
	return true
}

func (s *stack) pop() {
	if s.Empty() {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *stack) top() (Context, bool) {
	if s.Empty() {
		return Context{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// inCompound reports whether a write goes out as a full named tag: at
// the top level or directly inside a compound.
func (s *stack) inCompound() bool {
	c, ok := s.top()
	return !ok || c.Kind == CompoundContext
}

// elementWritten records that one element of the innermost list was
// completed. Lists whose countdown reaches zero are popped, and the
// completion propagates to the enclosing container.
func (s *stack) elementWritten() {
	for !s.Empty() {
		c := &s.frames[len(s.frames)-1]
		if c.Kind != ListContext {
			return
		}
		c.Remaining--
		if c.Remaining > 0 {
			return
		}
		s.pop()
	}
}
