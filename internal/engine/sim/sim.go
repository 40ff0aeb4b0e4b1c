package sim

import (
	"fmt"

	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

type PlayRecord struct {
	Step int
	Turn int
	Seat int
	Card engine.Card
}

// RunSelfPlay drives one full game with a simple deterministic policy and
// checks structural invariants after every card: 32 cards conserved across
// piles, hands and trick; a non-empty legal set for every non-empty hand;
// exactly 10 trick points distributed per completed round. Reseeds each
// round from the base seed so failures replay.
func RunSelfPlay(seed int64, maxSteps int) error {
	rules := engine.DefaultPreset()
	state := engine.NewGame(rules, seed)

	records := []PlayRecord{}
	round := 0
	for step := 0; step < maxSteps; step++ {
		switch state.Round.Phase {
		case engine.PhaseGameOver:
			if _, ok := engine.Winner(state); !ok {
				return failure(seed, step, state, records, "game over without winner")
			}
			return nil
		case engine.PhaseDealing:
			state.Seed = seed + int64(round)
			round++
			if err := engine.DealRound(&state); err != nil {
				return failure(seed, step, state, records, fmt.Sprintf("deal error: %v", err))
			}
			if err := checkInvariants(state); err != nil {
				return failure(seed, step, state, records, err.Error())
			}
		case engine.PhaseAwaitingPlay:
			seat, ok := engine.CurrentPlayer(state)
			if !ok {
				return failure(seed, step, state, records, "no current player")
			}
			legal := engine.LegalPlays(state, seat)
			if len(legal) == 0 {
				return failure(seed, step, state, records, "no legal cards for non-empty hand")
			}
			card := lowestLegal(legal)
			turn := state.Round.Turn
			if err := engine.PlayCard(&state, seat, card); err != nil {
				return failure(seed, step, state, records, fmt.Sprintf("play error: %v", err))
			}
			records = append(records, PlayRecord{Step: step, Turn: turn, Seat: seat, Card: card})
			if err := checkInvariants(state); err != nil {
				return failure(seed, step, state, records, err.Error())
			}
			if state.Round.Phase != engine.PhaseAwaitingPlay {
				if err := checkRoundScores(state); err != nil {
					return failure(seed, step, state, records, err.Error())
				}
			}
		}
	}
	return failure(seed, maxSteps, state, records, "game did not finish")
}

func lowestLegal(legal []engine.Card) engine.Card {
	best := legal[0]
	for _, c := range legal[1:] {
		if c.PointValue()*10+c.Strength() < best.PointValue()*10+best.Strength() {
			best = c
		}
	}
	return best
}

func checkInvariants(state engine.GameState) error {
	total, dup := countCards(state)
	if total != engine.DeckSize {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if len(state.Round.TrickCards) > state.Rules.Players {
		return fmt.Errorf("invalid trick size: %d", len(state.Round.TrickCards))
	}
	for _, p := range state.Players {
		if len(p.Hand) > state.Rules.CardsPerPlayer {
			return fmt.Errorf("hand size too large: %d", len(p.Hand))
		}
		if p.RoundScore < 0 {
			return fmt.Errorf("negative round score: %d", p.RoundScore)
		}
	}
	return nil
}

// checkRoundScores runs right after a round closes: all hearts must have
// been taken by someone, and every card must be back in the discard pile.
func checkRoundScores(state engine.GameState) error {
	sum := 0
	for _, p := range state.Players {
		sum += p.RoundScore
	}
	if sum != state.Rules.RoundPoints() {
		return fmt.Errorf("round points sum %d, want %d", sum, state.Rules.RoundPoints())
	}
	if len(state.Deck.DiscardPile) != engine.DeckSize {
		return fmt.Errorf("discard pile holds %d cards after round", len(state.Deck.DiscardPile))
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, p := range state.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	for _, c := range state.Round.TrickCards {
		add(c)
	}
	for _, c := range state.Deck.DrawPile {
		add(c)
	}
	for _, c := range state.Deck.DiscardPile {
		add(c)
	}
	return total, dup
}

func failure(seed int64, step int, state engine.GameState, records []PlayRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[s%d t%d seat%d] %v\n", r.Step, r.Turn, r.Seat, r.Card)
	}
	return fmt.Errorf("seed=%d step=%d phase=%v reason=%s\nlast plays:\n%s",
		seed, step, state.Round.Phase, reason, log)
}
