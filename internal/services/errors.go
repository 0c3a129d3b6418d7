package services

import "errors"

// ErrValidation marks a request that fails input validation. Handlers
// map it to a 400-class response. Not-found and already-processed
// conditions come from the repository package.
var ErrValidation = errors.New("validation failed")
