package core

import "errors"

var (
	// Repository errors
	ErrNotARepository = errors.New("not an ostree repository")

	// Ref errors
	ErrRefNotFound      = errors.New("ref not found")
	ErrMalformedRefLine = errors.New("malformed ref listing line")

	// Remote errors
	ErrRemoteNotFound = errors.New("remote not found")

	// Object errors
	ErrObjectNotFound  = errors.New("commit object not found")
	ErrInvalidChecksum = errors.New("invalid commit checksum")
)
