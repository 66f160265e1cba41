package http

import "errors"

var errMissingRequestType = errors.New("request.type is required")
