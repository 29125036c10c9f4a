package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// HashObject computes the SHA-1 of the envelope "type len\0content".
func HashObject(objType ObjectType, data []byte) ID {
	h := sha1.New()
	h.Write(header(objType, len(data)))
	h.Write(data)
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// hashEnvelope hashes an already-encoded envelope.
func hashEnvelope(raw []byte) ID {
	sum := sha1.Sum(raw)
	return ID(hex.EncodeToString(sum[:]))
}

// HashOf returns the ID obj would be stored under.
func HashOf(obj Object) ID {
	return hashEnvelope(Encode(obj))
}

// ParseID validates s as a full lowercase hex object ID.
func ParseID(s string) (ID, error) {
	if len(s) != IDHexLen {
		return "", fmt.Errorf("%w: %q: want %d hex characters, got %d", ErrInvalidID, s, IDHexLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("%w: %q: non-hex character at offset %d", ErrInvalidID, s, i)
		}
	}
	return ID(s), nil
}
