package userstore

import "errors"

var (
	ErrMissingPath    = errors.New("userstore: store path is required")
	ErrStoreNotFound  = errors.New("userstore: store file not found")
	ErrMalformedStore = errors.New("userstore: malformed store file")
)
