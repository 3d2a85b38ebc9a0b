package config

import "errors"

var (
	ErrFileAccess    = errors.New("file access error")
	ErrBadArgument   = errors.New("bad argument")
	ErrUnknownFormat = errors.New("unknown config format")
)
