package nbt

import "fmt"

// TagType is the one-byte type code that identifies a tag on the wire.
type TagType uint8

const (
	End TagType = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	ByteArray
	String
	List
	Compound
	IntArray
	LongArray
)

var tagNames = [...]string{
	End:       "End",
	Byte:      "Byte",
	Short:     "Short",
	Int:       "Int",
	Long:      "Long",
	Float:     "Float",
	Double:    "Double",
	ByteArray: "ByteArray",
	String:    "String",
	List:      "List",
	Compound:  "Compound",
	IntArray:  "IntArray",
	LongArray: "LongArray",
}

// Valid reports whether t is a known tag type.
func (t TagType) Valid() bool {
	return int(t) < len(tagNames)
}

// IsContainer reports whether tags of type t hold other values
// (lists, compounds and the three array kinds).
func (t TagType) IsContainer() bool {
	switch t {
	case ByteArray, List, Compound, IntArray, LongArray:
		return true
	default:
		return false
	}
}

func (t TagType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TagType(%d)", uint8(t))
	}
	return tagNames[t]
}

// ParseTagType parses a tag type name as produced by String.
func ParseTagType(v string) (TagType, error) {
	for i, n := range tagNames {
		if n == v {
			return TagType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tag type %q", v)
}

func (t TagType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("<err: %d is not a tag type>", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TagType) UnmarshalText(d []byte) error {
	pt, err := ParseTagType(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}
