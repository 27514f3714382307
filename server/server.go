// Package server maps multiplayer server records onto the servers.dat
// NBT layout read by the game client.
package server

import (
	"io"

	"github.com/signadot/enbt/nbt"
)

// ListName is the name of the top level list holding the records.
const ListName = "servers"

// Server is one entry of the multiplayer server list. Icon holds the
// base64 encoded PNG shown next to the entry.
type Server struct {
	Name           string `json:"name" toml:"name" yaml:"name" msgpack:"name" cbor:"name"`
	Icon           string `json:"icon" toml:"icon" yaml:"icon" msgpack:"icon" cbor:"icon"`
	IP             string `json:"ip" toml:"ip" yaml:"ip" msgpack:"ip" cbor:"ip"`
	AcceptTextures bool   `json:"accept_textures" toml:"accept_textures" yaml:"accept_textures" msgpack:"accept_textures" cbor:"accept_textures"`
}

// writeTo writes s as an anonymous compound, which must be an element of
// a list of compounds.
func (s *Server) writeTo(w *nbt.Writer) int {
	n := w.BeginCompound("")
	n += w.WriteString("name", s.Name)
	n += w.WriteString("icon", s.Icon)
	n += w.WriteString("ip", s.IP)
	n += w.WriteBool("acceptTextures", s.AcceptTextures)
	n += w.EndCompound()
	return n
}

// WriteServers writes the servers list to w, one compound per record in
// order, and returns the number of bytes written.
func WriteServers(w *nbt.Writer, servers []Server) int {
	n := w.BeginList(ListName, nbt.Compound, len(servers))
	for i := range servers {
		n += servers[i].writeTo(w)
	}
	return n
}

// Encode writes a complete servers document to w.
func Encode(w io.Writer, servers []Server, opts ...nbt.Option) (int64, error) {
	nw := nbt.NewWriter(w, opts...)
	WriteServers(nw, servers)
	return nw.Close()
}

// WriteFile writes a complete servers document to path, replacing any
// existing file once the document is complete. A path of "-" writes to
// standard output.
func WriteFile(path string, servers []Server, opts ...nbt.Option) (int64, error) {
	nw, err := nbt.Create(path, opts...)
	if err != nil {
		return 0, err
	}
	WriteServers(nw, servers)
	return nw.Close()
}
