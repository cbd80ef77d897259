package engine

import "errors"

// ErrNilState is returned when an engine is handed a nil game state
var ErrNilState = errors.New("game state cannot be nil")
