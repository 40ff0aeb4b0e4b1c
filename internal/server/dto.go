package server

import (
	"errors"

	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func (c CardDTO) ToEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := parseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Rank: r}, nil
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func cardsToDTO(cards []engine.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToDTO(c))
	}
	return out
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "H":
		return engine.SuitHearts, nil
	case "D":
		return engine.SuitDiamonds, nil
	case "C":
		return engine.SuitClubs, nil
	case "S":
		return engine.SuitSpades, nil
	default:
		return engine.SuitHearts, errors.New("invalid suit")
	}
}

func parseRank(r string) (engine.Rank, error) {
	switch r {
	case "7":
		return engine.Rank7, nil
	case "8":
		return engine.Rank8, nil
	case "9":
		return engine.Rank9, nil
	case "10":
		return engine.Rank10, nil
	case "J":
		return engine.RankJ, nil
	case "Q":
		return engine.RankQ, nil
	case "K":
		return engine.RankK, nil
	case "A":
		return engine.RankA, nil
	default:
		return engine.Rank7, errors.New("invalid rank")
	}
}

func phaseToString(p engine.Phase) string {
	switch p {
	case engine.PhaseDealing:
		return "Dealing"
	case engine.PhaseAwaitingPlay:
		return "AwaitingPlay"
	case engine.PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
