package localekit

import "errors"

// Sentinel errors for locale resolution and asset loading.
var (
	ErrInvalidConfig   = errors.New("localekit: invalid configuration")
	ErrUnknownLanguage = errors.New("localekit: unknown language")
	ErrAssetLoad       = errors.New("localekit: asset load failed")
	ErrNotLoaded       = errors.New("localekit: no locale loaded")
)
