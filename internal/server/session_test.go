package server

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/VrachoxReact/crvena-hanicar/internal/bots"
	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

func playTrick(t *testing.T, g *engine.GameState) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < g.Rules.Players; i++ {
		seat, ok := engine.CurrentPlayer(*g)
		if !ok {
			t.Fatalf("no current player")
		}
		legal := engine.LegalPlays(*g, seat)
		if len(legal) == 0 {
			t.Fatalf("no legal cards for seat %d", seat)
		}
		prev := *g
		card := legal[0]
		if err := engine.PlayCard(g, seat, card); err != nil {
			t.Fatalf("seat %d: %v", seat, err)
		}
		events = buildEvents(prev, *g, seat, card)
	}
	return events
}

func TestBuildEventsOnTrickResolution(t *testing.T) {
	g := engine.NewGame(engine.DefaultPreset(), 3)
	if err := engine.DealRound(&g); err != nil {
		t.Fatalf("deal failed: %v", err)
	}

	events := playTrick(t, &g)

	if events[0].Type != "card_played" {
		t.Fatalf("expected card_played first, got %s", events[0].Type)
	}
	var resolved *Event
	for i := range events {
		if events[i].Type == "trick_resolved" {
			resolved = &events[i]
		}
	}
	if resolved == nil {
		t.Fatalf("expected trick_resolved after fourth card, got %v", events)
	}
	if len(resolved.Data.Trick) != g.Rules.Players {
		t.Fatalf("resolved trick has %d cards", len(resolved.Data.Trick))
	}
	if resolved.Data.WinnerSeat != g.Round.Leader {
		t.Fatalf("winner %d should lead next trick, leader is %d",
			resolved.Data.WinnerSeat, g.Round.Leader)
	}
}

func TestBuildEventsOnRoundEnd(t *testing.T) {
	g := engine.NewGame(engine.DefaultPreset(), 3)
	if err := engine.DealRound(&g); err != nil {
		t.Fatalf("deal failed: %v", err)
	}

	var events []Event
	for g.Round.Phase == engine.PhaseAwaitingPlay {
		events = playTrick(t, &g)
	}

	found := false
	for _, e := range events {
		if e.Type == "round_ended" {
			found = true
			if len(e.Data.Standings) != g.Rules.Players {
				t.Fatalf("standings cover %d seats", len(e.Data.Standings))
			}
		}
	}
	if !found {
		t.Fatalf("expected round_ended on final trick, got %v", events)
	}
}

func TestEventPayloadKeepsZeroSeats(t *testing.T) {
	dto := cardToDTO(engine.Card{Suit: engine.SuitHearts, Rank: engine.Rank7})
	cases := []struct {
		event Event
		keys  []string
	}{
		{Event{Type: "card_played", Data: EventPayload{Seat: HumanSeat, Card: &dto}},
			[]string{`"seat":0`}},
		{Event{Type: "trick_resolved", Data: EventPayload{WinnerSeat: HumanSeat, TrickPoints: 0}},
			[]string{`"winnerSeat":0`, `"trickPoints":0`}},
	}
	for _, tc := range cases {
		raw, err := json.Marshal(tc.event)
		if err != nil {
			t.Fatalf("%s: %v", tc.event.Type, err)
		}
		for _, key := range tc.keys {
			if !strings.Contains(string(raw), key) {
				t.Fatalf("%s dropped %s from wire: %s", tc.event.Type, key, raw)
			}
		}
	}
}

func TestViewHidesOtherHands(t *testing.T) {
	g := engine.NewGame(engine.DefaultPreset(), 3)
	if err := engine.DealRound(&g); err != nil {
		t.Fatalf("deal failed: %v", err)
	}

	view := BuildGameView(g, HumanSeat)
	for i, p := range view.Players {
		if i == HumanSeat {
			if len(p.Hand) != g.Rules.CardsPerPlayer {
				t.Fatalf("viewer hand hidden: %d cards", len(p.Hand))
			}
			continue
		}
		if len(p.Hand) != 0 {
			t.Fatalf("seat %d hand leaked to viewer", i)
		}
		if p.HandCount != g.Rules.CardsPerPlayer {
			t.Fatalf("seat %d hand count %d", i, p.HandCount)
		}
	}
}

func TestViewLegalCardsOnlyForActingViewer(t *testing.T) {
	g := engine.NewGame(engine.DefaultPreset(), 3)
	if err := engine.DealRound(&g); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	seat, _ := engine.CurrentPlayer(g)

	acting := BuildGameView(g, seat)
	if len(acting.LegalCards) == 0 {
		t.Fatalf("acting viewer should see legal cards")
	}
	waiting := BuildGameView(g, (seat+1)%g.Rules.Players)
	if len(waiting.LegalCards) != 0 {
		t.Fatalf("waiting viewer should see no legal cards")
	}
}

func TestCardDTORoundTrip(t *testing.T) {
	for _, c := range engine.BuildDeck() {
		back, err := cardToDTO(c).ToEngine()
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		if back != c {
			t.Fatalf("round trip %v -> %v", c, back)
		}
	}
}

func TestHintMatchesOmniscientChoice(t *testing.T) {
	g := engine.NewGame(engine.DefaultPreset(), 3)
	g.Round.Dealer = g.Rules.Players - 1 // human leads the first trick
	if err := engine.DealRound(&g); err != nil {
		t.Fatalf("deal failed: %v", err)
	}

	hint, ok := bots.BestCardFor(g, HumanSeat)
	if !ok {
		t.Fatalf("expected hint for acting human seat")
	}
	legal := engine.LegalPlays(g, HumanSeat)
	found := false
	for _, c := range legal {
		if c == hint {
			found = true
		}
	}
	if !found {
		t.Fatalf("hint %v not in legal set %v", hint, legal)
	}
}
