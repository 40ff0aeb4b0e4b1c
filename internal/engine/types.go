package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

const (
	Rank7 Rank = iota
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case Rank10:
		return "10"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

func (c Card) IsRed() bool {
	return c.Suit == SuitHearts || c.Suit == SuitDiamonds
}

// PointValue is the cost of taking this card in a trick: every heart is
// worth 1, the ace of hearts 3, everything else 0.
func (c Card) PointValue() int {
	if c.Suit != SuitHearts {
		return 0
	}
	if c.Rank == RankA {
		return 3
	}
	return 1
}

// Strength orders cards within a suit, Rank7 lowest through RankA highest.
// Cards of different suits are never compared by strength.
func (c Card) Strength() int {
	return int(c.Rank)
}

type Phase int

// Round scoring happens atomically when the last trick resolves, so the
// machine rests in one of three phases between calls.
const (
	PhaseDealing Phase = iota
	PhaseAwaitingPlay
	PhaseGameOver
)

type Rules struct {
	Players           int
	CardsPerPlayer    int
	EndScore          int
	EarlyRedTricks    int
	ZeroStreakLength  int
	ZeroStreakPenalty int
}

func DefaultPreset() Rules {
	return Rules{
		Players:           4,
		CardsPerPlayer:    8,
		EndScore:          51,
		EarlyRedTricks:    2,
		ZeroStreakLength:  3,
		ZeroStreakPenalty: 3,
	}
}

// RoundPoints is the number of trick points a complete round always
// distributes: seven plain hearts plus the triple-value ace.
func (r Rules) RoundPoints() int {
	return 10
}

type PlayerState struct {
	ID         int
	Hand       []Card
	RoundScore int
	TotalScore int
	ZeroStreak int
}

type RoundState struct {
	Phase      Phase
	Dealer     int
	Leader     int
	Turn       int
	TrickCards []Card
	TrickOrder []int
}

type GameState struct {
	Rules   Rules
	Seed    int64
	Deck    Deck
	Round   RoundState
	Players []PlayerState
}

func NewGame(r Rules, seed int64) GameState {
	players := make([]PlayerState, r.Players)
	for i := 0; i < r.Players; i++ {
		players[i] = PlayerState{ID: i}
	}

	return GameState{
		Rules: r,
		Seed:  seed,
		Round: RoundState{
			Phase:  PhaseDealing,
			Dealer: 0,
		},
		Players: players,
	}
}

// ResetRound rolls state back to a fresh deal. Round scores survive until
// the next deal so the presentation layer can still show the last round.
func (g *GameState) ResetRound() {
	g.Round = RoundState{
		Phase:  PhaseDealing,
		Dealer: g.Round.Dealer,
	}
	for i := range g.Players {
		g.Players[i].Hand = nil
	}
}
