package progress

import "errors"

var (
	// ErrNoUser is returned by mutations when no learner record exists.
	ErrNoUser = errors.New("no user")

	ErrEmptyName        = errors.New("name is empty")
	ErrNameTooLong      = errors.New("name is too long")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrNegativeStars    = errors.New("stars must not be negative")
	ErrInvalidScore     = errors.New("invalid quiz score")
)
