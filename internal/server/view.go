package server

import "github.com/VrachoxReact/crvena-hanicar/internal/engine"

type PlayerView struct {
	ID         int       `json:"id"`
	Hand       []CardDTO `json:"hand,omitempty"`
	HandCount  int       `json:"handCount"`
	RoundScore int       `json:"roundScore"`
	TotalScore int       `json:"totalScore"`
	ZeroStreak int       `json:"zeroStreak"`
}

type RoundView struct {
	Phase       string    `json:"phase"`
	Dealer      int       `json:"dealer"`
	Leader      int       `json:"leader"`
	Turn        int       `json:"turn"`
	TrickCards  []CardDTO `json:"trickCards"`
	TrickOrder  []int     `json:"trickOrder"`
	CurrentSeat int       `json:"currentSeat"`
}

type RulesView struct {
	Players        int `json:"players"`
	CardsPerPlayer int `json:"cardsPerPlayer"`
	EndScore       int `json:"endScore"`
	EarlyRedTricks int `json:"earlyRedTricks"`
}

type GameView struct {
	Players    []PlayerView `json:"players"`
	Round      RoundView    `json:"round"`
	Rules      RulesView    `json:"rules"`
	LegalCards []CardDTO    `json:"legalCards"`
	Winner     *int         `json:"winner,omitempty"`
}

// BuildGameView sanitizes state for one seat: only the viewer's own hand is
// revealed, everyone else shows a card count.
func BuildGameView(g engine.GameState, viewer int) *GameView {
	players := make([]PlayerView, 0, len(g.Players))
	for i, p := range g.Players {
		view := PlayerView{
			ID:         p.ID,
			HandCount:  len(p.Hand),
			RoundScore: p.RoundScore,
			TotalScore: p.TotalScore,
			ZeroStreak: p.ZeroStreak,
		}
		if i == viewer {
			view.Hand = cardsToDTO(p.Hand)
		}
		players = append(players, view)
	}

	currentSeat := -1
	if seat, ok := engine.CurrentPlayer(g); ok {
		currentSeat = seat
	}

	var winner *int
	if seat, ok := engine.Winner(g); ok {
		winner = &seat
	}

	return &GameView{
		Players: players,
		Round: RoundView{
			Phase:       phaseToString(g.Round.Phase),
			Dealer:      g.Round.Dealer,
			Leader:      g.Round.Leader,
			Turn:        g.Round.Turn,
			TrickCards:  cardsToDTO(g.Round.TrickCards),
			TrickOrder:  g.Round.TrickOrder,
			CurrentSeat: currentSeat,
		},
		Rules: RulesView{
			Players:        g.Rules.Players,
			CardsPerPlayer: g.Rules.CardsPerPlayer,
			EndScore:       g.Rules.EndScore,
			EarlyRedTricks: g.Rules.EarlyRedTricks,
		},
		LegalCards: cardsToDTO(engine.LegalPlays(g, viewer)),
		Winner:     winner,
	}
}
