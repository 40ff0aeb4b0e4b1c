package server

import "github.com/VrachoxReact/crvena-hanicar/internal/engine"

type Event struct {
	Type string       `json:"type"`
	Data EventPayload `json:"data"`
}

type EventPayload struct {
	Seat        int        `json:"seat"`
	Card        *CardDTO   `json:"card,omitempty"`
	Trick       []CardDTO  `json:"trick,omitempty"`
	TrickPoints int        `json:"trickPoints"`
	WinnerSeat  int        `json:"winnerSeat"`
	Standings   []Standing `json:"standings,omitempty"`
}

type Standing struct {
	Seat       int `json:"seat"`
	RoundScore int `json:"roundScore"`
	TotalScore int `json:"totalScore"`
}

// buildEvents diffs the state around one play into presentation facts:
// the card itself, a trick resolution when the play closed a trick, and
// round/game boundaries when it closed the round.
func buildEvents(prev engine.GameState, next engine.GameState, seat int, card engine.Card) []Event {
	dto := cardToDTO(card)
	events := []Event{{Type: "card_played", Data: EventPayload{Seat: seat, Card: &dto}}}

	trickClosed := len(prev.Round.TrickCards) == prev.Rules.Players-1 && len(next.Round.TrickCards) == 0
	if !trickClosed {
		return events
	}

	trick := append(append([]engine.Card(nil), prev.Round.TrickCards...), card)
	order := prev.Round.TrickOrder
	if len(order) == 0 {
		order = trickOrderFrom(prev.Round.Leader, prev.Rules.Players)
	}
	offset, points := engine.ResolveTrick(trick)
	winner := order[offset]
	events = append(events, Event{Type: "trick_resolved", Data: EventPayload{
		WinnerSeat:  winner,
		TrickPoints: points,
		Trick:       cardsToDTO(trick),
	}})

	switch next.Round.Phase {
	case engine.PhaseAwaitingPlay:
		events = append(events, Event{Type: "trick_started", Data: EventPayload{Seat: next.Round.Leader}})
	case engine.PhaseDealing:
		events = append(events, Event{Type: "round_ended", Data: EventPayload{Standings: standings(next)}})
	case engine.PhaseGameOver:
		events = append(events, Event{Type: "round_ended", Data: EventPayload{Standings: standings(next)}})
		if w, ok := engine.Winner(next); ok {
			events = append(events, Event{Type: "game_over", Data: EventPayload{
				WinnerSeat: w,
				Standings:  standings(next),
			}})
		}
	}
	return events
}

func dealEvents(g engine.GameState) []Event {
	return []Event{{Type: "trick_started", Data: EventPayload{Seat: g.Round.Leader}}}
}

func standings(g engine.GameState) []Standing {
	out := make([]Standing, 0, len(g.Players))
	for i, p := range g.Players {
		out = append(out, Standing{Seat: i, RoundScore: p.RoundScore, TotalScore: p.TotalScore})
	}
	return out
}

func trickOrderFrom(leader, players int) []int {
	order := make([]int, 0, players)
	for i := 0; i < players; i++ {
		order = append(order, (leader+i)%players)
	}
	return order
}
