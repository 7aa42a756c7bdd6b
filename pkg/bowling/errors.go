package bowling

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps one of them,
// so callers can test with errors.Is(err, ErrInvalidArgument).
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

var (
	ErrNoPlayers       = fmt.Errorf("%w: at least one player is required", ErrInvalidArgument)
	ErrDuplicatePlayer = fmt.Errorf("%w: duplicate player name", ErrInvalidArgument)
	ErrUnknownPlayer   = fmt.Errorf("%w: unknown player", ErrInvalidArgument)
	ErrInvalidPinCount = fmt.Errorf("%w: pin count must be between 0 and %d", ErrInvalidArgument, NumPins)
	ErrTooManyPins     = fmt.Errorf("%w: more pins than are standing", ErrInvalidArgument)

	ErrGameFinished  = fmt.Errorf("%w: game finished", ErrInvalidState)
	ErrFrameComplete = fmt.Errorf("%w: frame already complete", ErrInvalidState)
)
