package fvtt

import "errors"

var ErrUnknownFlavor = errors.New("unrecognized pack format: expected a LevelDB directory or NeDB .db files")
