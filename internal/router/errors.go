package router

import "errors"

// ErrUnsupportedRequest is returned for request types the skill does not serve.
var ErrUnsupportedRequest = errors.New("unsupported request type")
