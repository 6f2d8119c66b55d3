package game

import (
	"errors"
	"reflect"
	"testing"
)

func corridorBoard(t *testing.T) *Board {
	t.Helper()
	return buildBoard(t,
		"__ |0 __ __ __",
		"__ __ __ __ __",
		"__ __ __ __ __",
		"__ __ __ |1 __",
	)
}

func TestNewGame_DealsHandsFromBag(t *testing.T) {
	rules := DefaultRules()
	g, err := NewGame(99, corridorBoard(t), rules, NewJudgeFromWords(nil), nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// Player 0 draws the first hand, player 1 the next.
	reference := NewBag(99)
	for _, p := range []PlayerID{0, 1} {
		if len(g.Players[p].Hand) != rules.HandSize {
			t.Fatalf("player %d hand size = %d", p, len(g.Players[p].Hand))
		}
		for i, letter := range g.Players[p].Hand {
			if want := reference.Draw(); letter != want {
				t.Errorf("player %d hand[%d] = %c, want %c", p, i, letter, want)
			}
		}
	}
}

func TestNewGame_RequiresArtifacts(t *testing.T) {
	board := buildBoard(t,
		"|0 __ __",
	)
	_, err := NewGame(1, board, DefaultRules(), NewJudgeFromWords(nil), nil)
	if !errors.Is(err, ErrMalformedBoard) {
		t.Errorf("NewGame without player 1 artifact: %v, want ErrMalformedBoard", err)
	}
}

func TestNewGame_RejectsInvalidRules(t *testing.T) {
	rules := DefaultRules()
	rules.HandSize = -1
	if _, err := NewGame(1, corridorBoard(t), rules, NewJudgeFromWords(nil), nil); err == nil {
		t.Error("NewGame accepted a negative hand size")
	}
}

func TestPlaceAndDraw_Determinism(t *testing.T) {
	run := func() *GameState {
		g, err := NewGame(7, corridorBoard(t), DefaultRules(), NewJudgeFromWords(nil), nil)
		if err != nil {
			t.Fatalf("NewGame: %v", err)
		}
		script := []Coordinate{
			{X: 1, Y: 1}, // player 0, beside the artifact
			{X: 3, Y: 2}, // player 1
			{X: 1, Y: 2}, // player 0
			{X: 4, Y: 3}, // player 1
		}
		for _, at := range script {
			letter := g.CurrentPlayer().Hand[0]
			mustApply(t, g, Place(g.Turn, at, letter))
		}
		return g
	}

	a, b := run(), run()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("same seed and script produced different states")
	}
	if len(a.Events) != 4 {
		t.Fatalf("event log length = %d, want 4", len(a.Events))
	}
	for i := range a.Events {
		if a.Events[i].DrawnLetter != b.Events[i].DrawnLetter {
			t.Errorf("event %d drew %c vs %c", i, a.Events[i].DrawnLetter, b.Events[i].DrawnLetter)
		}
	}
}

func TestPlace_RefillsVacatedSlot(t *testing.T) {
	g := newTestGame(t, corridorBoard(t), DefaultRules())
	g.Players[0].Hand = Hand("ABCDEFG")

	// The two hands consumed 14 draws; the next draw fills the slot.
	want := g.Bag.Peek(1)[0]
	ev := mustApply(t, g, Place(0, Coordinate{X: 1, Y: 1}, 'C'))

	hand := g.Players[0].Hand
	if len(hand) != 7 {
		t.Fatalf("hand size = %d after place", len(hand))
	}
	if hand[2] != want {
		t.Errorf("vacated slot holds %c, want drawn %c", hand[2], want)
	}
	if ev.DrawnLetter != want {
		t.Errorf("event drawn letter = %c, want %c", ev.DrawnLetter, want)
	}
	if got := hand.String()[:2]; got != "AB" {
		t.Errorf("hand prefix shifted: %q", got)
	}
	if got := hand.String()[3:]; got != "DEFG" {
		t.Errorf("hand suffix shifted: %q", got)
	}
}

func TestPlace_LowercaseLetterAccepted(t *testing.T) {
	g := newTestGame(t, corridorBoard(t), DefaultRules())
	mustApply(t, g, Place(0, Coordinate{X: 1, Y: 1}, 'a'))
	if sq := g.Board.At(Coordinate{X: 1, Y: 1}); sq.Letter != 'A' {
		t.Errorf("placed letter = %c, want folded A", sq.Letter)
	}
}

func TestApply_ValidationErrorsLeaveStateUntouched(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"~~ |0 __ __ __",
		"A0 B0 __ __ __",
		"__ __ __ X0 __",
		"__ __ __ __ |1",
	), DefaultRules())
	before := g.Fingerprint()

	cases := []struct {
		name string
		move Move
		want error
	}{
		{"opponent moving", Place(1, Coordinate{X: 2, Y: 1}, 'A'), ErrNotYourTurn},
		{"letter not held", Place(0, Coordinate{X: 2, Y: 1}, 'Z'), ErrNoSuchLetter},
		{"water square", Place(0, Coordinate{X: 0, Y: 0}, 'A'), ErrInvalidSquare},
		{"occupied square", Place(0, Coordinate{X: 1, Y: 1}, 'A'), ErrInvalidSquare},
		{"off the board", Place(0, Coordinate{X: 9, Y: 9}, 'A'), ErrInvalidSquare},
		{"unsupported square", Place(0, Coordinate{X: 4, Y: 3}, 'A'), ErrUnreachable},
		{"swap with land", Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 2, Y: 2}), ErrInvalidSquare},
		{"swap same square", Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 0, Y: 1}), ErrSameSquare},
		{"swap across groups", Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 3, Y: 2}), ErrDisconnectsGroup},
		{"synthetic resign move", Move{Kind: MoveResign, Player: 0}, ErrMalformedMove},
		{"synthetic time move", Move{Kind: MoveTimeExpired, Player: 0}, ErrMalformedMove},
	}
	for _, tc := range cases {
		_, err := g.Apply(tc.move)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
		if g.Fingerprint() != before {
			t.Fatalf("%s: rejected move mutated the state", tc.name)
		}
		if len(g.Events) != 0 {
			t.Fatalf("%s: rejected move appended an event", tc.name)
		}
	}
}

func TestSwap_ExchangesLettersWithoutDrawing(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __",
		"A0 B0 __ |1",
	), DefaultRules())
	drawnBefore := g.Bag.Drawn()

	ev := mustApply(t, g, Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 1}))
	if g.Board.At(Coordinate{X: 0, Y: 1}).Letter != 'B' ||
		g.Board.At(Coordinate{X: 1, Y: 1}).Letter != 'A' {
		t.Error("letters not exchanged")
	}
	if g.Bag.Drawn() != drawnBefore {
		t.Error("swap drew from the bag")
	}
	if len(ev.Battles) != 0 || len(ev.Truncations) != 0 {
		t.Error("swap produced battles or truncations")
	}
	if g.Turn != 1 {
		t.Errorf("turn = %d after swap, want 1", g.Turn)
	}
}

func TestSwap_Cooldown(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __ __",
		"A0 B0 __ __ |1",
	), DefaultRules())

	mustApply(t, g, Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 1}))
	mustApply(t, g, Place(1, Coordinate{X: 3, Y: 1}, g.Players[1].Hand[0]))

	// Back-to-back swaps are forbidden with the default cooldown of 1.
	_, err := g.Apply(Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 1}))
	if !errors.Is(err, ErrSwapOnCooldown) {
		t.Fatalf("second consecutive swap: %v, want ErrSwapOnCooldown", err)
	}

	mustApply(t, g, Place(0, Coordinate{X: 1, Y: 0}, g.Players[0].Hand[0]))
	mustApply(t, g, Place(1, Coordinate{X: 4, Y: 0}, g.Players[1].Hand[0]))

	// One intervening turn of their own clears the cooldown.
	if _, err := g.Apply(Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 1})); err != nil {
		t.Fatalf("swap after an intervening turn: %v", err)
	}
}

func TestSwap_DisabledCooldownAllowsConsecutiveSwaps(t *testing.T) {
	rules := DefaultRules()
	rules.SwapCooldown = 0
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __ __",
		"A0 B0 __ __ |1",
	), rules)

	mustApply(t, g, Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 1}))
	mustApply(t, g, Place(1, Coordinate{X: 3, Y: 1}, g.Players[1].Hand[0]))
	if _, err := g.Apply(Swap(0, Coordinate{X: 0, Y: 1}, Coordinate{X: 1, Y: 1})); err != nil {
		t.Fatalf("swap with cooldown disabled: %v", err)
	}
}

func TestWin_TownCapture(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __",
		"C0 __ __ __",
		"A0 __ __ __",
		"__ #1 __ |1",
	), DefaultRules(), "CAT")
	g.Players[0].Hand = Hand("TBCDEFG")

	ev := mustApply(t, g, Place(0, Coordinate{X: 0, Y: 3}, 'T'))
	if ev.Winner == nil || *ev.Winner != 0 {
		t.Fatalf("event winner = %v, want player 0", ev.Winner)
	}
	if g.Winner == nil || *g.Winner != 0 {
		t.Fatalf("game winner = %v, want player 0", g.Winner)
	}
	town := g.Board.At(Coordinate{X: 1, Y: 3})
	if !town.Defeated {
		t.Error("captured town not marked defeated")
	}
	if _, err := g.Apply(Place(1, Coordinate{X: 2, Y: 3}, 'A')); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after game over: %v, want ErrGameOver", err)
	}
}

func TestWin_InvalidWordDoesNotCapture(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __",
		"C0 __ __ __",
		"A0 __ __ __",
		"__ #1 __ |1",
	), DefaultRules()) // empty wordlist, CAT is invalid
	g.Players[0].Hand = Hand("TBCDEFG")

	mustApply(t, g, Place(0, Coordinate{X: 0, Y: 3}, 'T'))
	if g.Winner != nil {
		t.Error("invalid word captured a town")
	}
}

func TestWin_ArtifactTouch(t *testing.T) {
	rules := DefaultRules()
	rules.ArtifactTouchWins = true
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __",
		"C0 __ __ __",
		"A0 __ __ __",
		"__ |1 __ __",
	), rules, "CAT")
	g.Players[0].Hand = Hand("TBCDEFG")

	ev := mustApply(t, g, Place(0, Coordinate{X: 0, Y: 3}, 'T'))
	if ev.Winner == nil || *ev.Winner != 0 {
		t.Fatalf("event winner = %v, want player 0", ev.Winner)
	}
}

func TestWin_ArtifactTouchDisabledByDefault(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"|0 __ __ __",
		"C0 __ __ __",
		"A0 __ __ __",
		"__ |1 __ __",
	), DefaultRules(), "CAT")
	g.Players[0].Hand = Hand("TBCDEFG")

	mustApply(t, g, Place(0, Coordinate{X: 0, Y: 3}, 'T'))
	if g.Winner != nil {
		t.Error("artifact touch won without the rule enabled")
	}
}

func TestWin_BlockedOpponentLoses(t *testing.T) {
	g := newTestGame(t, buildBoard(t,
		"|0 __ |1",
	), DefaultRules())

	// Filling the only land square leaves player 1 with no move.
	ev := mustApply(t, g, Place(0, Coordinate{X: 1, Y: 0}, 'A'))
	if ev.Winner == nil || *ev.Winner != 0 {
		t.Fatalf("event winner = %v, want player 0", ev.Winner)
	}
	if g.Winner == nil || *g.Winner != 0 {
		t.Fatalf("game winner = %v, want player 0", g.Winner)
	}
}

func TestResign(t *testing.T) {
	g := newTestGame(t, corridorBoard(t), DefaultRules())
	ev, err := g.Resign(0)
	if err != nil {
		t.Fatalf("Resign: %v", err)
	}
	if ev.Move.Kind != MoveResign {
		t.Errorf("event move kind = %s", ev.Move.Kind)
	}
	if g.Winner == nil || *g.Winner != 1 {
		t.Fatalf("winner = %v, want player 1", g.Winner)
	}
	if !g.Players[0].Resigned {
		t.Error("resigned flag not set")
	}
	if _, err := g.Resign(1); !errors.Is(err, ErrGameOver) {
		t.Errorf("resign after game over: %v, want ErrGameOver", err)
	}
}

func TestEventLog_AppendOnly(t *testing.T) {
	g := newTestGame(t, corridorBoard(t), DefaultRules())

	script := []Coordinate{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 1, Y: 2}}
	var snapshots []Event
	for _, at := range script {
		mustApply(t, g, Place(g.Turn, at, g.CurrentPlayer().Hand[0]))
		snapshots = append(snapshots, g.Events[len(g.Events)-1])
	}
	if len(g.Events) != len(script) {
		t.Fatalf("event log length = %d, want %d", len(g.Events), len(script))
	}
	for i, snap := range snapshots {
		if !reflect.DeepEqual(g.Events[i].Move, snap.Move) ||
			g.Events[i].DrawnLetter != snap.DrawnLetter {
			t.Errorf("event %d changed after later moves", i)
		}
	}
}

func TestTurnNumber_AdvancesPerMove(t *testing.T) {
	g := newTestGame(t, corridorBoard(t), DefaultRules())
	mustApply(t, g, Place(0, Coordinate{X: 1, Y: 1}, g.Players[0].Hand[0]))
	mustApply(t, g, Place(1, Coordinate{X: 3, Y: 2}, g.Players[1].Hand[0]))
	if g.TurnNumber != 2 {
		t.Errorf("turn number = %d, want 2", g.TurnNumber)
	}
	if g.Turn != 0 {
		t.Errorf("turn = %d, want 0", g.Turn)
	}
	if g.Events[0].TurnNumber != 0 || g.Events[1].TurnNumber != 1 {
		t.Errorf("event turn numbers = %d, %d", g.Events[0].TurnNumber, g.Events[1].TurnNumber)
	}
}
