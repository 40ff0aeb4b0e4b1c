package bots

import "github.com/VrachoxReact/crvena-hanicar/internal/engine"

// OmniscientBot reads every hand at the table. It backs the hardest seat
// and the human hint feature; FullInformation returning true is the
// contract that lets the orchestrator keep it away from fair matchups.
type OmniscientBot struct{}

func NewOmniscient() *OmniscientBot {
	return &OmniscientBot{}
}

func (b *OmniscientBot) FullInformation() bool { return true }

func (b *OmniscientBot) ChooseCard(state engine.GameState, player int) engine.Card {
	legal := engine.LegalPlays(state, player)
	if len(state.Round.TrickCards) == 0 {
		return bestLead(state, player, legal)
	}
	return bestFollow(state, player, legal)
}

// BestCardFor is the read-only hint query: the card the omniscient policy
// would play for seat, with ok=false when the seat is not due to act or has
// no cards. It never mutates state.
func BestCardFor(state engine.GameState, seat int) (engine.Card, bool) {
	legal := engine.LegalPlays(state, seat)
	if len(legal) == 0 {
		return engine.Card{}, false
	}
	bot := OmniscientBot{}
	return bot.ChooseCard(state, seat), true
}

// bestLead sheds from the suit the rest of the table dominates hardest:
// for each non-heart suit in the legal set, count the cards in other hands
// that beat our best of that suit, then lead the lowest card of the suit
// with the most such threats. An all-hearts legal set leads the cheapest
// heart.
func bestLead(state engine.GameState, player int, legal []engine.Card) engine.Card {
	var riskiest *engine.Suit
	bestRisk := -1
	for _, suit := range []engine.Suit{engine.SuitHearts, engine.SuitDiamonds, engine.SuitClubs, engine.SuitSpades} {
		if suit == engine.SuitHearts || !hasSuit(legal, suit) {
			continue
		}
		risk := suitRisk(state, player, suit)
		if risk > bestRisk {
			bestRisk = risk
			s := suit
			riskiest = &s
		}
	}
	if riskiest == nil {
		return lowestStrength(legal)
	}
	return lowestStrength(ofSuit(legal, *riskiest))
}

// suitRisk counts cards of suit in the other players' hands that are
// stronger than this player's strongest card of suit.
func suitRisk(state engine.GameState, player int, suit engine.Suit) int {
	own := ofSuit(state.Players[player].Hand, suit)
	if len(own) == 0 {
		return 0
	}
	highest := highestStrength(own)
	risk := 0
	for i, p := range state.Players {
		if i == player {
			continue
		}
		for _, c := range p.Hand {
			if c.Suit == suit && c.Strength() > highest.Strength() {
				risk++
			}
		}
	}
	return risk
}

func bestFollow(state engine.GameState, player int, legal []engine.Card) engine.Card {
	trick := state.Round.TrickCards
	lead := trick[0].Suit
	isLast := len(trick) == state.Rules.Players-1
	pointsInTrick := engine.TrickPoints(trick)

	winning := trick[0]
	for _, c := range trick[1:] {
		if c.Suit == lead && c.Strength() > winning.Strength() {
			winning = c
		}
	}

	sameSuit := ofSuit(legal, lead)
	beating := make([]engine.Card, 0, len(sameSuit))
	for _, c := range sameSuit {
		if c.Strength() > winning.Strength() {
			beating = append(beating, c)
		}
	}

	if isLast && pointsInTrick > 0 {
		// Closing a costly trick: duck it if at all possible.
		if len(sameSuit) > 0 {
			if len(beating) < len(sameSuit) {
				// Burn the highest card that still loses.
				return highestStrength(diff(sameSuit, beating))
			}
			// Forced to take it; take it as cheaply as we can.
			return lowestStrength(beating)
		}
		// Void in the lead suit: dump the worst heart, else the
		// biggest card we own.
		if hearts := ofSuit(legal, engine.SuitHearts); len(hearts) > 0 {
			return highestStrength(hearts)
		}
		return highestStrength(legal)
	}

	if isLast && pointsInTrick == 0 && len(beating) > 0 {
		// Free trick, claim it cheaply.
		return lowestStrength(beating)
	}

	if len(sameSuit) > 0 && len(beating) == 0 {
		return lowestStrength(sameSuit)
	}
	if len(beating) > 0 && !hasSuit(trick, engine.SuitHearts) {
		return lowestStrength(beating)
	}
	return lowestStrength(legal)
}

func ofSuit(cards []engine.Card, suit engine.Suit) []engine.Card {
	out := []engine.Card{}
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func hasSuit(cards []engine.Card, suit engine.Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func diff(cards, exclude []engine.Card) []engine.Card {
	out := []engine.Card{}
	for _, c := range cards {
		skip := false
		for _, e := range exclude {
			if c == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}

func lowestStrength(cards []engine.Card) engine.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Strength() < best.Strength() {
			best = c
		}
	}
	return best
}

func highestStrength(cards []engine.Card) engine.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Strength() > best.Strength() {
			best = c
		}
	}
	return best
}
