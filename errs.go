package sequence

import (
	"errors"

	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
)

var (
	ErrFileAccess    = config.ErrFileAccess
	ErrBadArgument   = config.ErrBadArgument
	ErrUnknownFormat = config.ErrUnknownFormat

	ErrConfigNotFound    = errors.New("config not found")
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrAmbiguousMode     = errors.New("ambiguous camera mode")
	ErrConfigOrderSet    = errors.New("config order already set")
	ErrExhaustedNames    = errors.New("exhausted output names")
)
