package types

import "errors"

// Registry errors.
var (
	ErrDuplicateType         = errors.New("type already defined")
	ErrUnsupportedCapability = errors.New("capability not supported")
	ErrTypeNotFound          = errors.New("type not found")
	ErrInvalidName           = errors.New("invalid type name")
	ErrInvalidTrait          = errors.New("invalid type trait")
)

// Manifest errors.
var (
	ErrManifestInvalid = errors.New("invalid type manifest")
)
