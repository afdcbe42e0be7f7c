// Package api implements a small client for the public PokeAPI.
//
// The api package provides:
// - Typed projections of the pokemon, item, move and ability resources
// - Search term normalization into PokeAPI slugs
// - Error codes for missing resources and unexpected responses
package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ErrNotFound represents a resource that PokeAPI does not know
	ErrNotFound ErrorCode = "NotFound"
	// ErrUnexpectedStatus represents a non-success response other than 404
	ErrUnexpectedStatus ErrorCode = "UnexpectedStatus"
	// ErrDecode represents a response body that is not the expected JSON
	ErrDecode ErrorCode = "DecodeError"
	// ErrRequest represents a request that could not be sent or completed
	ErrRequest ErrorCode = "RequestError"
	// ErrInvalidTerm represents a search term that cannot be looked up
	ErrInvalidTerm ErrorCode = "InvalidTerm"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
