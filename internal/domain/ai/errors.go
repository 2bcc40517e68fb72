package ai

import "errors"

// ErrRateLimited indicates the provider returned HTTP 429. The transport
// retries these with exponential backoff before surfacing the error.
var ErrRateLimited = errors.New("ai provider rate limited")
