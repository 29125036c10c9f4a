package object

import "fmt"

// ID is a 40-character lowercase hex-encoded SHA-1 digest of an object's
// encoded envelope.
type ID string

// IDHexLen is the length of an ID in hex characters.
const IDHexLen = 40

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeCommit ObjectType = "commit"
	TypeTree   ObjectType = "tree"
	TypeTag    ObjectType = "tag"
)

// Object is a stored, immutable, type-tagged record. The set of
// implementations is closed: only types registered in this package can be
// decoded.
type Object interface {
	// Type returns the envelope tag.
	Type() ObjectType
	// Serialize returns the payload bytes.
	Serialize() []byte

	isObject()
}

// Blob holds raw file data.
type Blob struct {
	data []byte
}

// NewBlob returns a Blob owning a private copy of data.
func NewBlob(data []byte) *Blob {
	out := make([]byte, len(data))
	copy(out, data)
	return &Blob{data: out}
}

func (b *Blob) Type() ObjectType { return TypeBlob }

// Serialize returns a copy of the blob payload.
func (b *Blob) Serialize() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b *Blob) isObject() {}

// Size is the payload length in bytes.
func (b *Blob) Size() int { return len(b.data) }

// deserializer builds an Object from its payload.
type deserializer func(payload []byte) (Object, error)

// registry maps every known tag to its constructor. A nil constructor marks
// a tag that is reserved but not decodable yet.
var registry = map[ObjectType]deserializer{
	TypeBlob: func(payload []byte) (Object, error) {
		return NewBlob(payload), nil
	},
	TypeCommit: nil,
	TypeTree:   nil,
	TypeTag:    nil,
}

// Known reports whether t is a recognised tag, implemented or not.
func Known(t ObjectType) bool {
	_, ok := registry[t]
	return ok
}

// ParseType converts a tag string to an ObjectType, rejecting tags outside
// the registry.
func ParseType(s string) (ObjectType, error) {
	t := ObjectType(s)
	if !Known(t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownObjectType, s)
	}
	return t, nil
}

// New constructs the Object variant for t from payload. Reserved variants
// fail with ErrObjectTypeNotImplemented.
func New(t ObjectType, payload []byte) (Object, error) {
	ctor, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, t)
	}
	if ctor == nil {
		return nil, fmt.Errorf("%w: %q", ErrObjectTypeNotImplemented, t)
	}
	return ctor(payload)
}
