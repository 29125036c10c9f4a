package object

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zlib"
)

// Store is a content-addressed loose object store with a 2-character
// fan-out directory layout: objects/ab/cdef0123...
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given metadata directory. Fan-out
// subdirectories of objects/ are created lazily on first write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// maxHeaderLen bounds the "type len\0" prefix read before the payload.
const maxHeaderLen = 64

// objectPath returns the filesystem path for a given ID. id must be well
// formed (see ParseID).
func (s *Store) objectPath(id ID) string {
	return filepath.Join(s.root, "objects", string(id[:2]), string(id[2:]))
}

// Has reports whether the store contains an object with the given ID.
func (s *Store) Has(id ID) bool {
	if _, err := ParseID(string(id)); err != nil {
		return false
	}
	info, err := os.Stat(s.objectPath(id))
	return err == nil && info.Mode().IsRegular()
}

// Write stores obj and returns its ID. Writing content that is already
// present is a no-op. The zlib-compressed envelope is written to a temp
// file in the fan-out directory and renamed into place, so readers never
// see a partial object.
func (s *Store) Write(obj Object) (ID, error) {
	raw := Encode(obj)
	id := hashEnvelope(raw)

	// Fast path: already exists.
	if s.Has(id) {
		return id, nil
	}

	dir := filepath.Dir(s.objectPath(id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("object write tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if err := compress(tmp, raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("object write %s: %w", id, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("object write sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write close: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write chmod: %w", err)
	}

	// A concurrent writer may have placed the same bytes already; renaming
	// over it is harmless.
	if err := os.Rename(tmpName, s.objectPath(id)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write rename: %w", err)
	}

	return id, nil
}

// ReadRaw retrieves an object by ID and returns its decompressed envelope
// split into type and payload.
func (s *Store) ReadRaw(id ID) (ObjectType, []byte, error) {
	if _, err := ParseID(string(id)); err != nil {
		return "", nil, fmt.Errorf("object read: %w", err)
	}
	compressed, err := os.ReadFile(s.objectPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("object read %s: %w", id, ErrObjectNotFound)
		}
		return "", nil, fmt.Errorf("object read %s: %w", id, err)
	}

	objType, payload, err := readEnvelope(compressed)
	if err != nil {
		return "", nil, fmt.Errorf("object read %s: %w", id, err)
	}
	return objType, payload, nil
}

// Read retrieves an object by ID and decodes it into its variant.
func (s *Store) Read(id ID) (Object, error) {
	objType, payload, err := s.ReadRaw(id)
	if err != nil {
		return nil, err
	}
	obj, err := New(objType, payload)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", id, err)
	}
	return obj, nil
}

// WriteBlob stores data as a Blob.
func (s *Store) WriteBlob(data []byte) (ID, error) {
	return s.Write(NewBlob(data))
}

// ReadBlob reads a Blob, failing if the stored object has another type.
func (s *Store) ReadBlob(id ID) (*Blob, error) {
	obj, err := s.Read(id)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*Blob)
	if !ok {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", id, obj.Type(), TypeBlob)
	}
	return b, nil
}

func compress(w io.Writer, raw []byte) error {
	zw := zlib.NewWriter(w)
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// readEnvelope inflates a stored object. It reads the header, then at most
// the declared payload length plus one byte, so a bogus stream cannot make
// it buffer more than the header promises. The zlib stream must end exactly
// after the payload and nothing may follow it.
func readEnvelope(compressed []byte) (ObjectType, []byte, error) {
	src := bytes.NewReader(compressed)
	zr, err := zlib.NewReader(src)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrCorruptObject, err)
	}
	defer zr.Close()

	br := bufio.NewReaderSize(zr, maxHeaderLen)
	hdr, err := br.ReadSlice(0)
	if err != nil {
		return "", nil, fmt.Errorf("%w: read header: %w", ErrCorruptObject, err)
	}
	objType, length, err := parseHeader(hdr[:len(hdr)-1])
	if err != nil {
		return "", nil, err
	}

	payload, err := io.ReadAll(io.LimitReader(br, int64(length)+1))
	if err != nil {
		return "", nil, fmt.Errorf("%w: inflate: %w", ErrCorruptObject, err)
	}
	if len(payload) != length {
		return "", nil, fmt.Errorf("%w: length mismatch (header=%d, actual>=%d)", ErrCorruptObject, length, len(payload))
	}
	// The limit was not reached, so the inflater hit EOF and verified its
	// checksum. Anything left in src trails the zlib stream.
	if src.Len() != 0 {
		return "", nil, fmt.Errorf("%w: %d trailing bytes after zlib stream", ErrCorruptObject, src.Len())
	}
	if !Known(objType) {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, objType)
	}
	return objType, payload, nil
}
