package badger

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Key prefixes for different data types
const (
	emailRecordPrefix     = "emlrec"
	emailRecordDatePrefix = "emlrecd"
	promptRecordPrefix    = "prmrec"
	draftRecordPrefix     = "drfrec"
	vectorRecordPrefix    = "vecrec"
)

// makeEmailKey generates a key for an email record by ID.
func makeEmailKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", emailRecordPrefix, id))
}

// makeEmailDateKey generates a composite key for the email date index.
// Format: prefix:timestamp:id. The timestamp is written in BigEndian
// order so lexicographic key order matches chronological order.
func makeEmailDateKey(timestamp time.Time, id string) []byte {
	prefix := emailRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	totalSize := len(prefixBytes) + 8 + len(id)
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	copy(buf[offset:], []byte(id))
	return buf
}

// makePartialEmailDateKey generates a partial key for seeking within the
// date index.
func makePartialEmailDateKey(timestamp time.Time) []byte {
	prefix := emailRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makePromptKey generates a key for a prompt config by ID.
func makePromptKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", promptRecordPrefix, id))
}

// makeDraftKey generates a key for a draft by ID.
func makeDraftKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", draftRecordPrefix, id))
}

// makeVectorKey generates a key for a vector entry by ID.
func makeVectorKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", vectorRecordPrefix, id))
}
