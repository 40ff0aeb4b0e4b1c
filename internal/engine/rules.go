package engine

// LegalCards returns the subset of hand that may be played given the trick
// so far and the number of completed tricks this round. Rules, in order:
//
//  1. During the first EarlyRedTricks tricks red cards are stripped from
//     the candidates, leading or following alike. If that would leave
//     nothing, the whole hand stays legal: an all-red hand must still
//     have a move.
//  2. If the trick has a lead suit and the candidates contain it, only
//     lead-suit cards are legal.
//  3. Leading, or void in the lead suit: every candidate is legal.
//
// The result preserves hand order and is empty only for an empty hand.
func (r Rules) LegalCards(hand []Card, trick []Card, turn int) []Card {
	if len(hand) == 0 {
		return nil
	}

	candidates := hand
	if turn < r.EarlyRedTricks {
		nonRed := make([]Card, 0, len(hand))
		for _, c := range hand {
			if !c.IsRed() {
				nonRed = append(nonRed, c)
			}
		}
		if len(nonRed) > 0 {
			candidates = nonRed
		}
	}

	if len(trick) > 0 {
		lead := trick[0].Suit
		if hasSuit(candidates, lead) {
			return filterBySuit(candidates, lead)
		}
	}

	out := make([]Card, len(candidates))
	copy(out, candidates)
	return out
}

// ResolveTrick returns the offset within the trick of the winning card and
// the point total of the trick. Only cards of the lead suit can win; an
// off-suit card never takes the trick no matter its rank.
func ResolveTrick(trick []Card) (winnerOffset, points int) {
	lead := trick[0].Suit
	winnerOffset = 0
	for i := 1; i < len(trick); i++ {
		if trick[i].Suit != lead {
			continue
		}
		if trick[i].Strength() > trick[winnerOffset].Strength() {
			winnerOffset = i
		}
	}
	return winnerOffset, TrickPoints(trick)
}

func TrickPoints(trick []Card) int {
	points := 0
	for _, c := range trick {
		points += c.PointValue()
	}
	return points
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func filterBySuit(cards []Card, suit Suit) []Card {
	out := []Card{}
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}
