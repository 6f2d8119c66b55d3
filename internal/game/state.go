// Package game contains the core rules engine for Truncate.
// It is a pure, deterministic state machine: the same seed, board,
// rules, and move sequence always produce the same event log, on every
// platform. The package does no I/O and holds no global state; the
// judge, the tile seed, and the time source are injected.
package game

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode"

	"github.com/google/uuid"
)

// GameState is the authoritative state of one game. It is not safe for
// concurrent mutation; callers serialize moves. All mutation happens
// through Apply, Resign, and CheckTime.
type GameState struct {
	ID      string     `json:"id"`
	Rules   Rules      `json:"rules"`
	Board   *Board     `json:"board"`
	Players [2]*Player `json:"players"`
	Bag     *Bag       `json:"-"`
	Judge   *Judge     `json:"-"`
	Clock   *Clock     `json:"clock"`

	Turn       PlayerID  `json:"turn"`
	TurnNumber int       `json:"turnNumber"`
	Events     []Event   `json:"events"`
	Winner     *PlayerID `json:"winner,omitempty"`
}

// NewGame creates a game on the given board. The seed drives the tile
// bag; now is the injected millisecond time source (nil is accepted
// for untimed games). Both players draw a full hand immediately,
// player 0 first.
func NewGame(seed uint64, board *Board, rules Rules, judge *Judge, now func() int64) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if judge == nil {
		return nil, fmt.Errorf("%w: judge is required", ErrMalformedBoard)
	}
	for _, p := range []PlayerID{0, 1} {
		if len(board.ArtifactsOf(p)) == 0 {
			return nil, fmt.Errorf("%w: player %d has no artifact", ErrMalformedBoard, p)
		}
	}
	if now == nil {
		now = func() int64 { return 0 }
	}

	g := &GameState{
		ID:    uuid.NewString(),
		Rules: rules,
		Board: board,
		Bag:   NewBag(seed),
		Judge: judge,
		Clock: newClock(rules, now),
	}
	for _, p := range []PlayerID{0, 1} {
		player := NewPlayer(p)
		for i := 0; i < rules.HandSize; i++ {
			player.Hand = append(player.Hand, g.Bag.Draw())
		}
		g.Players[p] = player
	}
	return g, nil
}

// CurrentPlayer returns the player whose turn it is.
func (g *GameState) CurrentPlayer() *Player {
	return g.Players[g.Turn]
}

// IsGameOver reports whether a winner has been decided.
func (g *GameState) IsGameOver() bool {
	return g.Winner != nil
}

// Apply validates and applies a move. On error the state is left
// byte-identical; on success the move's event is appended to the log
// and returned. Only Place and Swap moves are accepted.
func (g *GameState) Apply(m Move) (*Event, error) {
	if g.Winner != nil {
		return nil, ErrGameOver
	}

	switch m.Kind {
	case MovePlace:
		return g.applyPlace(m)
	case MoveSwap:
		return g.applySwap(m)
	default:
		return nil, fmt.Errorf("%w: %s is not a playable move", ErrMalformedMove, m.Kind)
	}
}

func (g *GameState) applyPlace(m Move) (*Event, error) {
	// Validate fully before touching anything: atomicity on error.
	if m.Player != g.Turn {
		return nil, ErrNotYourTurn
	}
	player := g.Players[m.Player]
	letter := unicode.ToUpper(m.Letter)
	handIndex := player.Hand.IndexOf(letter)
	if handIndex < 0 {
		return nil, ErrNoSuchLetter
	}
	if g.Board.At(m.At).Kind != SquareLand {
		return nil, ErrInvalidSquare
	}
	supported := false
	for _, n := range g.Board.Neighbors4(m.At) {
		sq := g.Board.At(n)
		if sq.OccupiedBy(m.Player) || (sq.Kind == SquareArtifact && sq.Owner == m.Player) {
			supported = true
			break
		}
	}
	if !supported {
		return nil, ErrUnreachable
	}

	ev := Event{
		TurnNumber:   g.TurnNumber,
		Player:       m.Player,
		Move:         Move{Kind: MovePlace, Player: m.Player, At: m.At, Letter: letter},
		PlacedLetter: letter,
	}

	g.Board.Set(m.At, Tile(m.Player, letter))

	if report := g.resolveBattle(m.Player, m.At); report != nil {
		for _, c := range report.Doomed {
			if g.Board.At(c).Kind == SquareOccupied {
				g.Board.Set(c, Land())
			}
		}
		ev.Battles = append(ev.Battles, *report)
	}

	ev.Truncations = g.truncate()

	g.checkWin(m.Player, m.At, &ev)

	// Refill the vacated hand slot; the rest of the hand never shifts.
	drawn := g.Bag.Draw()
	player.Hand[handIndex] = drawn
	ev.DrawnLetter = drawn

	return g.finishTurn(player, ev), nil
}

func (g *GameState) applySwap(m Move) (*Event, error) {
	if m.Player != g.Turn {
		return nil, ErrNotYourTurn
	}
	player := g.Players[m.Player]
	if player.swapOnCooldown(g.Rules.SwapCooldown) {
		return nil, ErrSwapOnCooldown
	}
	for _, c := range []Coordinate{m.A, m.B} {
		if !g.Board.At(c).OccupiedBy(m.Player) {
			return nil, ErrInvalidSquare
		}
	}
	if m.A == m.B {
		return nil, ErrSameSquare
	}
	// Both tiles must sit in the same connected group; swapping across
	// disjoint groups is how a group would come apart.
	if !g.Board.connectedGroup(m.A)[m.B] {
		return nil, ErrDisconnectsGroup
	}

	ev := Event{
		TurnNumber: g.TurnNumber,
		Player:     m.Player,
		Move:       Move{Kind: MoveSwap, Player: m.Player, A: m.A, B: m.B},
	}

	a, b := g.Board.At(m.A), g.Board.At(m.B)
	g.Board.Set(m.A, Tile(m.Player, b.Letter))
	g.Board.Set(m.B, Tile(m.Player, a.Letter))
	player.lastSwapTurn = player.turnsTaken + 1

	return g.finishTurn(player, ev), nil
}

// checkWin decides whether the placement won the game: a valid word
// through the placed square touching an opponent town (or artifact,
// when the rules say artifacts fall like towns). The touched town is
// marked defeated.
func (g *GameState) checkWin(player PlayerID, at Coordinate, ev *Event) {
	if !g.Board.At(at).OccupiedBy(player) {
		// The placed tile died in its own battle.
		return
	}
	opponent := player.Opponent()
	won := false
	for _, w := range g.Board.WordsAt(at) {
		if !wordCountsAsValid(g.Judge.Lookup(g.Board.wordText(w)), g.Rules) {
			continue
		}
		for _, c := range w.Coords {
			for _, n := range g.Board.Neighbors4(c) {
				sq := g.Board.At(n)
				switch {
				case sq.Kind == SquareTown && sq.Owner == opponent && !sq.Defeated:
					sq.Defeated = true
					g.Board.Set(n, sq)
					won = true
				case g.Rules.ArtifactTouchWins && sq.Kind == SquareArtifact && sq.Owner == opponent:
					won = true
				}
			}
		}
	}
	if won {
		winner := player
		g.Winner = &winner
		ev.Winner = &winner
	}
}

// finishTurn runs the shared tail of the pipeline: turn bookkeeping,
// the clock charge, the event append, and loss-by-blocking or
// loss-by-time checks.
func (g *GameState) finishTurn(player *Player, ev Event) *Event {
	g.TurnNumber++
	player.turnsTaken++
	expired := g.Clock.chargeMover(player.ID)
	g.Turn = player.ID.Opponent()

	// A player with no remaining placement square has lost.
	if g.Winner == nil && len(g.Board.PlayablePositions(g.Turn)) == 0 {
		winner := player.ID
		g.Winner = &winner
		ev.Winner = &winner
	}

	g.Events = append(g.Events, ev)

	if expired && g.Winner == nil {
		g.expire(player.ID)
	}

	out := ev
	return &out
}

// Resign concedes the game for the given player.
func (g *GameState) Resign(player PlayerID) (*Event, error) {
	if g.Winner != nil {
		return nil, ErrGameOver
	}
	g.Players[player].Resigned = true
	winner := player.Opponent()
	g.Winner = &winner
	ev := Event{
		TurnNumber: g.TurnNumber,
		Player:     player,
		Move:       Move{Kind: MoveResign, Player: player},
		Winner:     &winner,
	}
	g.Events = append(g.Events, ev)
	out := ev
	return &out, nil
}

// CheckTime adjudicates time loss for the player on the clock without
// requiring a move; callers use it when a player goes absent. It
// returns the synthetic event when the game ends, nil otherwise.
func (g *GameState) CheckTime() *Event {
	if g.Winner != nil || !g.Clock.wouldExpire(g.Turn) {
		return nil
	}
	g.Clock.chargeMover(g.Turn)
	return g.expire(g.Turn)
}

// expire ends the game against the player whose budget ran out.
func (g *GameState) expire(loser PlayerID) *Event {
	winner := loser.Opponent()
	g.Winner = &winner
	ev := Event{
		TurnNumber: g.TurnNumber,
		Player:     loser,
		Move:       Move{Kind: MoveTimeExpired, Player: loser},
		Winner:     &winner,
	}
	g.Events = append(g.Events, ev)
	out := ev
	return &out
}

// Fingerprint returns a stable hash of the externally visible state.
// Two states with equal fingerprints hold the same board, hands,
// clocks, and turn bookkeeping; the atomicity guarantee is tested
// against it.
func (g *GameState) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "board:%s\n", g.Board.String())
	for _, p := range g.Players {
		fmt.Fprintf(h, "player:%d hand:%s swaps:%d turns:%d resigned:%t\n",
			p.ID, p.Hand, p.lastSwapTurn, p.turnsTaken, p.Resigned)
	}
	fmt.Fprintf(h, "turn:%d number:%d drawn:%d events:%d\n",
		g.Turn, g.TurnNumber, g.Bag.Drawn(), len(g.Events))
	fmt.Fprintf(h, "clock:%d,%d\n", g.Clock.BudgetMS[0], g.Clock.BudgetMS[1])
	if g.Winner != nil {
		fmt.Fprintf(h, "winner:%d\n", *g.Winner)
	}
	return hex.EncodeToString(h.Sum(nil))
}
