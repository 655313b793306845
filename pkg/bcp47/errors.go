package bcp47

import "errors"

var (
	ErrMalformedTag = errors.New("bcp47: malformed language tag")
	ErrEmptyTag     = errors.New("bcp47: empty language tag")
)
