// Package nbt writes NBT (Named Binary Tag) documents as a stream.
//
// A document is an anonymous root compound holding named tags. Tags are
// either scalars (byte, short, int, long, float, double, string) or
// containers: compounds of named tags closed by an end marker, lists of
// unnamed elements of a single declared type, and byte, int and long
// arrays. All multi-byte values are big-endian on the wire.
//
// The Writer never builds the tree in memory. It keeps a bounded stack
// of open containers and uses the innermost one to decide how each call
// is encoded: inside a compound a call writes a full named tag, inside a
// list it writes only the element payload.
//
// # Example
//
//	w, err := nbt.Create("servers.dat")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	w.BeginList("servers", nbt.Compound, 1)
//	w.BeginCompound("")
//	w.WriteString("name", "home")
//	w.WriteString("ip", "127.0.0.1")
//	w.EndCompound() // also completes the one element list
//	if _, err := w.Close(); err != nil {
//	    return err
//	}
//
// # Repair
//
// Lists close themselves once their declared number of elements has
// been written; compounds must be ended explicitly. When Close finds
// containers still open it completes them with placeholder values (see
// Fill) and appends a warning string tag, so the output is always a
// well formed document. WithAutoComplete(false) turns this off.
package nbt
