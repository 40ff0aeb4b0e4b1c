package bots

import (
	"testing"

	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

func leadState(turn int) engine.GameState {
	state := engine.NewGame(engine.DefaultPreset(), 1)
	state.Round.Phase = engine.PhaseAwaitingPlay
	state.Round.Leader = 0
	state.Round.Turn = turn
	return state
}

func TestOmniscientLeadsFromRiskiestSuit(t *testing.T) {
	state := leadState(3)
	state.Players[0].Hand = []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.Rank8},
		{Suit: engine.SuitClubs, Rank: engine.Rank10},
		{Suit: engine.SuitSpades, Rank: engine.RankQ},
	}
	// Two clubs out there beat our 10C; only one spade beats our QS.
	state.Players[1].Hand = []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.RankA},
		{Suit: engine.SuitSpades, Rank: engine.RankK},
	}
	state.Players[2].Hand = []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.RankK},
		{Suit: engine.SuitSpades, Rank: engine.Rank7},
	}
	state.Players[3].Hand = []engine.Card{
		{Suit: engine.SuitDiamonds, Rank: engine.RankA},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(state, 0)
	if card != (engine.Card{Suit: engine.SuitClubs, Rank: engine.Rank8}) {
		t.Fatalf("expected lowest club 8C, got %v", card)
	}
}

func TestOmniscientLeadsLowestHeartWhenForced(t *testing.T) {
	state := leadState(3)
	state.Players[0].Hand = []engine.Card{
		{Suit: engine.SuitHearts, Rank: engine.RankK},
		{Suit: engine.SuitHearts, Rank: engine.Rank9},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(state, 0)
	if card != (engine.Card{Suit: engine.SuitHearts, Rank: engine.Rank9}) {
		t.Fatalf("expected lowest heart 9H, got %v", card)
	}
}

func followState(trick []engine.Card, hand []engine.Card) engine.GameState {
	state := engine.NewGame(engine.DefaultPreset(), 1)
	state.Round.Phase = engine.PhaseAwaitingPlay
	state.Round.Leader = 0
	state.Round.Turn = 3
	state.Round.TrickCards = trick
	state.Round.TrickOrder = []int{0, 1, 2, 3}
	state.Players[len(trick)].Hand = hand
	return state
}

func TestOmniscientLastSeatDucksCostlyTrick(t *testing.T) {
	trick := []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.RankQ},
		{Suit: engine.SuitHearts, Rank: engine.Rank7},
		{Suit: engine.SuitClubs, Rank: engine.Rank9},
	}
	hand := []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.Rank7},
		{Suit: engine.SuitClubs, Rank: engine.RankJ},
		{Suit: engine.SuitClubs, Rank: engine.RankA},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(followState(trick, hand), 3)
	// JC is the highest club that still loses to the queen.
	if card != (engine.Card{Suit: engine.SuitClubs, Rank: engine.RankJ}) {
		t.Fatalf("expected JC, got %v", card)
	}
}

func TestOmniscientLastSeatForcedWinTakesCheapest(t *testing.T) {
	trick := []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.Rank9},
		{Suit: engine.SuitHearts, Rank: engine.Rank7},
		{Suit: engine.SuitClubs, Rank: engine.Rank8},
	}
	hand := []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.RankA},
		{Suit: engine.SuitClubs, Rank: engine.Rank10},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(followState(trick, hand), 3)
	if card != (engine.Card{Suit: engine.SuitClubs, Rank: engine.Rank10}) {
		t.Fatalf("expected cheapest winner 10C, got %v", card)
	}
}

func TestOmniscientLastSeatVoidDumpsHighestHeart(t *testing.T) {
	trick := []engine.Card{
		{Suit: engine.SuitClubs, Rank: engine.RankQ},
		{Suit: engine.SuitHearts, Rank: engine.Rank7},
		{Suit: engine.SuitClubs, Rank: engine.Rank9},
	}
	hand := []engine.Card{
		{Suit: engine.SuitHearts, Rank: engine.Rank8},
		{Suit: engine.SuitHearts, Rank: engine.RankK},
		{Suit: engine.SuitSpades, Rank: engine.RankA},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(followState(trick, hand), 3)
	if card != (engine.Card{Suit: engine.SuitHearts, Rank: engine.RankK}) {
		t.Fatalf("expected KH dump, got %v", card)
	}
}

func TestOmniscientLastSeatClaimsFreeTrick(t *testing.T) {
	trick := []engine.Card{
		{Suit: engine.SuitSpades, Rank: engine.Rank7},
		{Suit: engine.SuitSpades, Rank: engine.Rank9},
		{Suit: engine.SuitSpades, Rank: engine.Rank8},
	}
	hand := []engine.Card{
		{Suit: engine.SuitSpades, Rank: engine.Rank10},
		{Suit: engine.SuitSpades, Rank: engine.RankA},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(followState(trick, hand), 3)
	if card != (engine.Card{Suit: engine.SuitSpades, Rank: engine.Rank10}) {
		t.Fatalf("expected cheapest winner 10S, got %v", card)
	}
}

func TestOmniscientMidTrickCannotWinPlaysLowest(t *testing.T) {
	trick := []engine.Card{{Suit: engine.SuitSpades, Rank: engine.RankA}}
	hand := []engine.Card{
		{Suit: engine.SuitSpades, Rank: engine.RankQ},
		{Suit: engine.SuitSpades, Rank: engine.Rank8},
	}

	bot := NewOmniscient()
	card := bot.ChooseCard(followState(trick, hand), 1)
	if card != (engine.Card{Suit: engine.SuitSpades, Rank: engine.Rank8}) {
		t.Fatalf("expected 8S, got %v", card)
	}
}

func TestOmniscientMidTrickAvoidsWinningOverHearts(t *testing.T) {
	trick := []engine.Card{
		{Suit: engine.SuitSpades, Rank: engine.RankQ},
		{Suit: engine.SuitHearts, Rank: engine.RankQ},
	}
	hand := []engine.Card{
		{Suit: engine.SuitSpades, Rank: engine.Rank8},
		{Suit: engine.SuitSpades, Rank: engine.RankA},
	}

	// A heart already sits in the trick, so taking it cheaply is off the
	// table; the fallback is the lowest legal card.
	bot := NewOmniscient()
	card := bot.ChooseCard(followState(trick, hand), 2)
	if card != (engine.Card{Suit: engine.SuitSpades, Rank: engine.Rank8}) {
		t.Fatalf("expected 8S, got %v", card)
	}
}

func TestBestCardForMatchesOmniscient(t *testing.T) {
	state := engine.NewGame(engine.DefaultPreset(), 11)
	if err := engine.DealRound(&state); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	seat, _ := engine.CurrentPlayer(state)

	hint, ok := BestCardFor(state, seat)
	if !ok {
		t.Fatalf("expected a hint for the acting seat")
	}
	bot := NewOmniscient()
	if want := bot.ChooseCard(state, seat); hint != want {
		t.Fatalf("hint %v, omniscient would play %v", hint, want)
	}
	if !contains(engine.LegalPlays(state, seat), hint) {
		t.Fatalf("hint %v is not legal", hint)
	}
}

func TestBestCardForDoesNotMutate(t *testing.T) {
	state := engine.NewGame(engine.DefaultPreset(), 11)
	if err := engine.DealRound(&state); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	seat, _ := engine.CurrentPlayer(state)
	before := len(state.Players[seat].Hand)

	if _, ok := BestCardFor(state, seat); !ok {
		t.Fatalf("expected a hint")
	}
	if len(state.Players[seat].Hand) != before {
		t.Fatalf("hint query mutated the hand")
	}
	if len(state.Round.TrickCards) != 0 {
		t.Fatalf("hint query mutated the trick")
	}
}

func TestBestCardForOutOfTurnSeat(t *testing.T) {
	state := engine.NewGame(engine.DefaultPreset(), 11)
	if err := engine.DealRound(&state); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	seat, _ := engine.CurrentPlayer(state)
	other := (seat + 1) % state.Rules.Players

	if _, ok := BestCardFor(state, other); ok {
		t.Fatalf("expected no hint for a seat that is not acting")
	}
}
