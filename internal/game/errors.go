package game

import "errors"

// Game errors
var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrGameOver         = errors.New("game is over")
	ErrNoSuchLetter     = errors.New("letter is not in hand")
	ErrInvalidSquare    = errors.New("square cannot be played")
	ErrUnreachable      = errors.New("square does not neighbour your tiles or artifact")
	ErrSameSquare       = errors.New("cannot swap a square with itself")
	ErrDisconnectsGroup = errors.New("swap squares belong to disconnected groups")
	ErrSwapOnCooldown   = errors.New("swap is on cooldown")
	ErrMalformedBoard   = errors.New("malformed board")
	ErrMalformedMove    = errors.New("malformed move")
)
