package object

import (
	"bytes"
	"fmt"
	"strconv"
)

// header returns the envelope prefix "type len\0".
func header(objType ObjectType, n int) []byte {
	b := make([]byte, 0, len(objType)+24)
	b = append(b, string(objType)...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, 0)
}

// Encode wraps obj in its canonical envelope:
//
//	<type> SP <decimal payload length> NUL <payload>
func Encode(obj Object) []byte {
	payload := obj.Serialize()
	raw := header(obj.Type(), len(payload))
	return append(raw, payload...)
}

// Decode parses an envelope and constructs the matching Object variant.
// Structural problems fail with ErrCorruptObject; an unregistered tag fails
// with ErrUnknownObjectType.
func Decode(raw []byte) (Object, error) {
	objType, payload, err := splitEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return New(objType, payload)
}

// splitEnvelope parses "type len\0content" and checks the declared length.
func splitEnvelope(raw []byte) (ObjectType, []byte, error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return "", nil, fmt.Errorf("%w: missing NUL after length", ErrCorruptObject)
	}
	objType, length, err := parseHeader(raw[:nul])
	if err != nil {
		return "", nil, err
	}
	payload := raw[nul+1:]
	if len(payload) != length {
		return "", nil, fmt.Errorf("%w: length mismatch (header=%d, actual=%d)", ErrCorruptObject, length, len(payload))
	}
	if !Known(objType) {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, objType)
	}
	return objType, payload, nil
}

// parseHeader splits "type len" (without the NUL) into its fields.
func parseHeader(hdr []byte) (ObjectType, int, error) {
	sp := bytes.IndexByte(hdr, ' ')
	if sp < 0 {
		return "", 0, fmt.Errorf("%w: missing type separator", ErrCorruptObject)
	}
	length, err := parseLength(string(hdr[sp+1:]))
	if err != nil {
		return "", 0, err
	}
	return ObjectType(hdr[:sp]), length, nil
}

// parseLength accepts canonical ASCII decimal only: no sign, no leading
// zeros except "0" itself.
func parseLength(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty length", ErrCorruptObject)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("%w: non-canonical length %q", ErrCorruptObject, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: invalid length %q", ErrCorruptObject, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid length %q: %w", ErrCorruptObject, s, err)
	}
	return n, nil
}
