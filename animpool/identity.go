package animpool

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a track. It is derived from animation content and a caller
// tag so immediate-mode callers never hold a handle.
type ID uint64

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// Identify hashes content seeded with a hash of tag. The same content under
// different tags yields independent tracks. Collisions are not detected.
func Identify(content []byte, tag string) ID {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], xxhash.Sum64String(tag))

	d := xxhash.New()
	_, _ = d.Write(seed[:])
	_, _ = d.Write(content)
	return ID(d.Sum64())
}
