package domain

import "errors"

var (
	// ErrNotFound means no source could supply the article content; the caller
	// should refresh headlines and retry.
	ErrNotFound = errors.New("article content not found")
	// ErrUpstream wraps synthesis, upload and store-write failures.
	ErrUpstream = errors.New("upstream service failed")
	// ErrUnauthorized is returned when no caller identity is present.
	ErrUnauthorized = errors.New("caller identity required")
	// ErrMalformedResponse marks upstream output that could not be decoded.
	ErrMalformedResponse = errors.New("malformed language model response")
)
