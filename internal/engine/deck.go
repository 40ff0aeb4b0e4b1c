package engine

import "math/rand"

// DeckSize is the full pack: ranks Seven through Ace in four suits.
const DeckSize = 32

// Deck is a draw pile plus a discard pile. Cards leave through Draw, come
// back through Discard, and the discard pile is shuffled back in when the
// draw pile runs dry. The random source is injected so deals replay
// deterministically from a seed.
type Deck struct {
	DrawPile    []Card
	DiscardPile []Card
	rng         *rand.Rand
}

func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	suits := []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}
	for _, s := range suits {
		for rank := Rank7; rank <= RankA; rank++ {
			deck = append(deck, Card{Suit: s, Rank: rank})
		}
	}
	return deck
}

func Shuffle(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func NewDeck(rng *rand.Rand) Deck {
	return Deck{
		DrawPile: Shuffle(BuildDeck(), rng),
		rng:      rng,
	}
}

// Draw removes and returns the front card of the draw pile. An empty draw
// pile is refilled by shuffling in the discard pile first; only when both
// piles are empty does Draw fail, which means the card-conservation
// invariant is broken and the round cannot continue.
func (d *Deck) Draw() (Card, error) {
	if len(d.DrawPile) == 0 && len(d.DiscardPile) > 0 {
		d.DrawPile = Shuffle(d.DiscardPile, d.rng)
		d.DiscardPile = nil
	}
	if len(d.DrawPile) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.DrawPile[0]
	d.DrawPile = d.DrawPile[1:]
	return card, nil
}

// Discard moves a card onto the discard pile. Discarding a card that is
// already there is a no-op.
func (d *Deck) Discard(card Card) {
	for _, c := range d.DiscardPile {
		if c == card {
			return
		}
	}
	d.DiscardPile = append(d.DiscardPile, card)
}
