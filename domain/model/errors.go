package model

import "errors"

// Error taxonomy for the OAuth callbacks and content fetches. Handlers map
// these to plain-text 400 responses; fetch errors never leave the usecase.
var (
	ErrMissingParameter   = errors.New("missing required parameter")
	ErrAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrAuthExchangeFailed = errors.New("authorization code exchange failed")
	ErrFetchFailed        = errors.New("content fetch failed")
)
