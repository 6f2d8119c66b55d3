package game

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Rules contains the configurable game parameters. All fields are part
// of the replayable game definition: two games with the same seed,
// board, and rules produce identical event logs.
type Rules struct {
	// HandSize is the number of tiles each player holds.
	HandSize int `json:"handSize" validate:"gte=0"`

	// AttackLengthAdvantage is how many letters longer than the
	// weakest relevant defender the strongest attacker must be.
	// Pre-2023 games used 2.
	AttackLengthAdvantage int `json:"attackLengthAdvantage" validate:"gte=0"`

	// SwapCooldown is how many of a player's own turns must pass after
	// a swap before they may swap again. 0 disables the restriction;
	// the default 1 forbids back-to-back swaps.
	SwapCooldown int `json:"swapCooldown" validate:"gte=0"`

	// ArtifactTouchWins treats a valid word touching an opponent
	// artifact as a town capture.
	ArtifactTouchWins bool `json:"artifactTouchWins"`

	// AllowInvalidSecondaryAttackers requires only the strongest
	// attacker word to be valid. Pre-2023 games required every
	// attacker word to be valid.
	AllowInvalidSecondaryAttackers bool `json:"allowInvalidSecondaryAttackers"`

	// AllowObjectionable counts objectionable dictionary entries as
	// valid words.
	AllowObjectionable bool `json:"allowObjectionable"`

	// BattleDelayMS is cosmetic pacing for clients; the rules ignore it.
	BattleDelayMS int `json:"battleDelayMs" validate:"gte=0"`

	// TurnTimeMS is each player's cumulative time budget in
	// milliseconds. 0 disables the clock.
	TurnTimeMS int64 `json:"turnTimeMs" validate:"gte=0"`
}

// DefaultRules returns the current ruleset.
func DefaultRules() Rules {
	return Rules{
		HandSize:                       7,
		AttackLengthAdvantage:          1,
		SwapCooldown:                   1,
		AllowInvalidSecondaryAttackers: true,
	}
}

// LegacyRules returns the pre-2023 ruleset, kept so old games can be
// replayed faithfully.
func LegacyRules() Rules {
	r := DefaultRules()
	r.AttackLengthAdvantage = 2
	r.AllowInvalidSecondaryAttackers = false
	return r
}

// Validate checks the rules for structural sanity.
func (r Rules) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}
