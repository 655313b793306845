package loader

import "errors"

// Sentinel errors for asset fetching.
var (
	ErrNotFound      = errors.New("loader: asset not found")
	ErrFetchFailed   = errors.New("loader: fetch failed")
	ErrInvalidAsset  = errors.New("loader: invalid asset")
	ErrInvalidConfig = errors.New("loader: invalid configuration")
)
