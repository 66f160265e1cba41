package config

import "errors"

// ErrInvalidConfig wraps every validation failure of Load.
var ErrInvalidConfig = errors.New("invalid configuration")
