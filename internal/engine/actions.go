package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrIllegalMove means the submitted card is not in the legal set for
	// the acting seat. State is unchanged; the caller may resubmit.
	ErrIllegalMove = errors.New("illegal move")
	// ErrOutOfTurn means a move arrived for a seat that is not expected to
	// act. State is unchanged.
	ErrOutOfTurn = errors.New("action out of turn")
	// ErrDeckExhausted means both piles ran dry during a draw. That breaks
	// the card-conservation invariant and aborts the round.
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrGameOver means no further play is accepted until Restart.
	ErrGameOver = errors.New("game is over")
)

// CurrentPlayer returns the seat expected to act, if any.
func CurrentPlayer(g GameState) (int, bool) {
	if g.Round.Phase != PhaseAwaitingPlay {
		return -1, false
	}
	if len(g.Round.TrickOrder) == 0 {
		return g.Round.Leader, true
	}
	if len(g.Round.TrickCards) >= len(g.Round.TrickOrder) {
		return -1, false
	}
	return g.Round.TrickOrder[len(g.Round.TrickCards)], true
}

// DealRound rebuilds and shuffles the deck from the game seed, clears round
// scores, and deals CardsPerPlayer cards round-robin starting left of the
// dealer, who also leads the first trick.
func DealRound(g *GameState) error {
	if g.Round.Phase != PhaseDealing {
		return fmt.Errorf("%w: deal requested mid-round", ErrOutOfTurn)
	}

	rng := rand.New(rand.NewSource(g.Seed))
	g.Deck = NewDeck(rng)

	for i := range g.Players {
		g.Players[i].Hand = nil
		g.Players[i].RoundScore = 0
	}

	players := g.Rules.Players
	first := (g.Round.Dealer + 1) % players
	for i := 0; i < g.Rules.CardsPerPlayer; i++ {
		for p := 0; p < players; p++ {
			seat := (first + p) % players
			card, err := g.Deck.Draw()
			if err != nil {
				return fmt.Errorf("dealing to seat %d: %w", seat, err)
			}
			g.Players[seat].Hand = append(g.Players[seat].Hand, card)
		}
	}

	g.Round.Leader = first
	g.Round.Turn = 0
	g.Round.TrickCards = nil
	g.Round.TrickOrder = nil
	g.Round.Phase = PhaseAwaitingPlay
	return nil
}

// LegalPlays returns the legal cards for player, or nil when it is not that
// player's turn. An empty hand yields an empty set, not an error.
func LegalPlays(g GameState, player int) []Card {
	expected, ok := CurrentPlayer(g)
	if !ok || player != expected {
		return nil
	}
	return g.Rules.LegalCards(g.Players[player].Hand, g.Round.TrickCards, g.Round.Turn)
}

// PlayCard validates and applies one card from the acting seat. When the
// trick fills it is resolved in place: the winner collects the points,
// the cards go to the discard pile, and either the winner leads the next
// trick or the round is scored.
func PlayCard(g *GameState, player int, card Card) error {
	switch g.Round.Phase {
	case PhaseGameOver:
		return ErrGameOver
	case PhaseAwaitingPlay:
	default:
		return fmt.Errorf("%w: no play expected while dealing", ErrOutOfTurn)
	}

	order := g.Round.TrickOrder
	if len(order) == 0 {
		order = buildTrickOrder(g.Round.Leader, g.Rules.Players)
	}
	expected := order[len(g.Round.TrickCards)]
	if player != expected {
		return fmt.Errorf("%w: seat %d played, seat %d expected", ErrOutOfTurn, player, expected)
	}

	legal := g.Rules.LegalCards(g.Players[player].Hand, g.Round.TrickCards, g.Round.Turn)
	if !containsCard(legal, card) {
		return fmt.Errorf("%w: seat %d cannot play %s", ErrIllegalMove, player, card)
	}
	if !removeCard(&g.Players[player].Hand, card) {
		return fmt.Errorf("%w: seat %d does not hold %s", ErrIllegalMove, player, card)
	}

	g.Round.TrickOrder = order
	g.Round.TrickCards = append(g.Round.TrickCards, card)
	if len(g.Round.TrickCards) < g.Rules.Players {
		return nil
	}

	offset, points := ResolveTrick(g.Round.TrickCards)
	winner := g.Round.TrickOrder[offset]
	g.Players[winner].RoundScore += points
	for _, c := range g.Round.TrickCards {
		g.Deck.Discard(c)
	}
	g.Round.Turn++
	g.Round.TrickCards = nil
	g.Round.TrickOrder = nil

	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			g.Round.Leader = winner
			return nil
		}
	}
	scoreRound(g)
	return nil
}

// Restart zeroes every score and streak and re-enters dealing. The only way
// out of PhaseGameOver.
func Restart(g *GameState) {
	for i := range g.Players {
		g.Players[i].Hand = nil
		g.Players[i].RoundScore = 0
		g.Players[i].TotalScore = 0
		g.Players[i].ZeroStreak = 0
	}
	g.Round = RoundState{
		Phase:  PhaseDealing,
		Dealer: g.Round.Dealer,
	}
}

// Winner is the seat with the lowest total score, valid once the game is
// over. Lower is better throughout.
func Winner(g GameState) (int, bool) {
	if g.Round.Phase != PhaseGameOver {
		return -1, false
	}
	best := 0
	for i := 1; i < len(g.Players); i++ {
		if g.Players[i].TotalScore < g.Players[best].TotalScore {
			best = i
		}
	}
	return best, true
}

// scoreRound folds round scores into totals. A zero round extends the
// player's streak instead of scoring; the third consecutive zero pays out a
// one-time deduction and restarts the streak. Game end is only checked
// here, at the round boundary.
func scoreRound(g *GameState) {
	for i := range g.Players {
		p := &g.Players[i]
		if p.RoundScore == 0 {
			p.ZeroStreak++
			if p.ZeroStreak == g.Rules.ZeroStreakLength {
				p.TotalScore -= g.Rules.ZeroStreakPenalty
				p.ZeroStreak = 0
			}
			continue
		}
		p.ZeroStreak = 0
		p.TotalScore += p.RoundScore
	}

	for _, p := range g.Players {
		if p.TotalScore >= g.Rules.EndScore {
			g.Round.Phase = PhaseGameOver
			return
		}
	}

	// The round's worst performer deals next. Ties keep the earliest seat.
	next := 0
	for i := 1; i < len(g.Players); i++ {
		if g.Players[i].RoundScore > g.Players[next].RoundScore {
			next = i
		}
	}
	g.Round.Dealer = next
	g.ResetRound()
}

func buildTrickOrder(leader, players int) []int {
	order := make([]int, 0, players)
	for i := 0; i < players; i++ {
		order = append(order, (leader+i)%players)
	}
	return order
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}
