package object

import "errors"

var (
	// ErrUnknownObjectType is returned when an envelope carries a tag that
	// is not in the registry.
	ErrUnknownObjectType = errors.New("unknown object type")

	// ErrObjectTypeNotImplemented is returned for reserved tags (commit,
	// tree, tag) whose payload format is not defined yet.
	ErrObjectTypeNotImplemented = errors.New("object type not implemented")

	ErrCorruptObject  = errors.New("corrupt object")
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidID      = errors.New("invalid object id")
)
