package bots

import (
	"math/rand"

	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

// Bot picks one card out of the legal set for the acting seat. ChooseCard
// must return an element of engine.LegalPlays for that seat and never
// mutates state. FullInformation reports whether the policy reads other
// players' hidden hands, so the orchestrator knows which policies are fair
// to seat against humans.
type Bot interface {
	ChooseCard(state engine.GameState, player int) engine.Card
	FullInformation() bool
}

// RandomBot plays uniformly at random among the legal cards.
type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseCard(state engine.GameState, player int) engine.Card {
	legal := engine.LegalPlays(state, player)
	return legal[b.RNG.Intn(len(legal))]
}

func (b *RandomBot) FullInformation() bool { return false }

// HeartAverseBot dodges hearts: it plays a random non-heart when it can,
// and the cheapest legal card when it cannot.
type HeartAverseBot struct {
	RNG *rand.Rand
}

func NewHeartAverse(seed int64) *HeartAverseBot {
	return &HeartAverseBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *HeartAverseBot) ChooseCard(state engine.GameState, player int) engine.Card {
	return heartAverseChoice(b.RNG, engine.LegalPlays(state, player))
}

func (b *HeartAverseBot) FullInformation() bool { return false }

// CautiousBot currently shares HeartAverseBot's heuristic. It stays a
// separate type so the third difficulty slot can grow its own strategy
// without touching the seat wiring.
type CautiousBot struct {
	RNG *rand.Rand
}

func NewCautious(seed int64) *CautiousBot {
	return &CautiousBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *CautiousBot) ChooseCard(state engine.GameState, player int) engine.Card {
	return heartAverseChoice(b.RNG, engine.LegalPlays(state, player))
}

func (b *CautiousBot) FullInformation() bool { return false }

func heartAverseChoice(rng *rand.Rand, legal []engine.Card) engine.Card {
	nonHearts := make([]engine.Card, 0, len(legal))
	for _, c := range legal {
		if c.Suit != engine.SuitHearts {
			nonHearts = append(nonHearts, c)
		}
	}
	if len(nonHearts) > 0 {
		return nonHearts[rng.Intn(len(nonHearts))]
	}
	// Forced to bleed points: give up as little as possible. First
	// occurrence in hand order wins ties.
	best := legal[0]
	for _, c := range legal[1:] {
		if c.PointValue() < best.PointValue() {
			best = c
		}
	}
	return best
}
