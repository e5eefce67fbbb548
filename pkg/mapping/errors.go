package mapping

import "errors"

var (
	ErrNoMapping = errors.New("no mapping found for type")
	ErrNoTypes   = errors.New("mapping file declares no types")
)
