package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
	"github.com/oklog/ulid/v2"
)

// NewID generates a new application-assigned identifier. ULIDs are
// lexicographically sortable by creation time, which keeps identifiers
// stable and ordered across the pipeline.
func NewID() string {
	return ulid.Make().String()
}

// IDFromContent generates a deterministic ID from text content using
// BLAKE2b hashing. Identical content always produces the same ID, which
// makes content-derived records (such as seeded prompt configurations)
// idempotent to re-create.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
