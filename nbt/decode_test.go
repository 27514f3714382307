package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// node is a decoded named tag, used by tests to check the structure of
// written documents.
type node struct {
	Type  TagType
	Name  string
	Value any
}

// list is the decoded value of a list tag.
type list struct {
	Elem  TagType
	Items []any
}

type decoder struct {
	b   []byte
	off int
}

// decodeDocument decodes a complete document: the root compound header,
// its children, the root terminator and nothing after it.
func decodeDocument(b []byte) ([]node, error) {
	d := &decoder{b: b}
	t, err := d.u8()
	if err != nil {
		return nil, err
	}
	if TagType(t) != Compound {
		return nil, fmt.Errorf("root tag is %v, not Compound", TagType(t))
	}
	name, err := d.str()
	if err != nil {
		return nil, err
	}
	if name != "" {
		return nil, fmt.Errorf("root name is %q", name)
	}
	children, err := d.compound()
	if err != nil {
		return nil, err
	}
	if d.off != len(d.b) {
		return nil, fmt.Errorf("%d trailing bytes", len(d.b)-d.off)
	}
	return children, nil
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || d.off+n > len(d.b) {
		return nil, fmt.Errorf("unexpected end of document at offset %d", d.off)
	}
	p := d.b[d.off : d.off+n]
	d.off += n
	return p, nil
}

func (d *decoder) u8() (uint8, error) {
	p, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (d *decoder) u16() (uint16, error) {
	p, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (d *decoder) u32() (uint32, error) {
	p, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

func (d *decoder) u64() (uint64, error) {
	p, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

func (d *decoder) length() (int, error) {
	n, err := d.u32()
	if err != nil {
		return 0, err
	}
	if int32(n) < 0 {
		return 0, fmt.Errorf("negative length at offset %d", d.off-4)
	}
	return int(n), nil
}

func (d *decoder) str() (string, error) {
	n, err := d.u16()
	if err != nil {
		return "", err
	}
	p, err := d.take(int(n))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func (d *decoder) compound() ([]node, error) {
	out := []node{}
	for {
		t, err := d.u8()
		if err != nil {
			return nil, err
		}
		if TagType(t) == End {
			return out, nil
		}
		name, err := d.str()
		if err != nil {
			return nil, err
		}
		v, err := d.payload(TagType(t))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		out = append(out, node{Type: TagType(t), Name: name, Value: v})
	}
}

func (d *decoder) payload(t TagType) (any, error) {
	switch t {
	case Byte:
		v, err := d.u8()
		return int8(v), err
	case Short:
		v, err := d.u16()
		return int16(v), err
	case Int:
		v, err := d.u32()
		return int32(v), err
	case Long:
		v, err := d.u64()
		return int64(v), err
	case Float:
		v, err := d.u32()
		return math.Float32frombits(v), err
	case Double:
		v, err := d.u64()
		return math.Float64frombits(v), err
	case String:
		return d.str()
	case ByteArray:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		p, err := d.take(n)
		if err != nil {
			return nil, err
		}
		return append([]byte{}, p...), nil
	case IntArray:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		vs := make([]int32, n)
		for i := range vs {
			v, err := d.u32()
			if err != nil {
				return nil, err
			}
			vs[i] = int32(v)
		}
		return vs, nil
	case LongArray:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		vs := make([]int64, n)
		for i := range vs {
			v, err := d.u64()
			if err != nil {
				return nil, err
			}
			vs[i] = int64(v)
		}
		return vs, nil
	case List:
		elem, err := d.u8()
		if err != nil {
			return nil, err
		}
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		l := list{Elem: TagType(elem), Items: make([]any, 0, n)}
		for i := 0; i < n; i++ {
			v, err := d.payload(l.Elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			l.Items = append(l.Items, v)
		}
		return l, nil
	case Compound:
		return d.compound()
	}
	return nil, fmt.Errorf("bad tag type %d at offset %d", t, d.off)
}
