package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/VrachoxReact/crvena-hanicar/internal/bots"
	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

var seatNames = [4]string{"You", "West", "North", "East"}

func main() {
	seed := time.Now().UnixNano()
	if len(os.Args) > 1 {
		if v, err := strconv.ParseInt(os.Args[1], 10, 64); err == nil {
			seed = v
		}
	}

	state := engine.NewGame(engine.DefaultPreset(), seed)
	players := map[int]bots.Bot{
		1: bots.NewRandom(seed + 1),
		2: bots.NewCautious(seed + 2),
		3: bots.NewOmniscient(),
	}

	reader := bufio.NewReader(os.Stdin)
	round := 0
	for {
		switch state.Round.Phase {
		case engine.PhaseDealing:
			state.Seed = seed + int64(round)
			round++
			if err := engine.DealRound(&state); err != nil {
				pterm.Error.Printfln("deal failed: %v", err)
				return
			}
			pterm.DefaultSection.Printfln("Round %d — %s deals", round, seatNames[state.Round.Dealer])
			printScores(state)
		case engine.PhaseGameOver:
			winner, _ := engine.Winner(state)
			pterm.DefaultSection.Println("Game over")
			printScores(state)
			pterm.Success.Printfln("%s wins with the lowest score!", seatNames[winner])
			return
		case engine.PhaseAwaitingPlay:
			seat, _ := engine.CurrentPlayer(state)
			if bot, ok := players[seat]; ok {
				playAndReport(&state, seat, bot.ChooseCard(state, seat))
				continue
			}
			playAndReport(&state, seat, promptHuman(reader, state))
		}
	}
}

// playAndReport applies one card and prints the trick outcome when the
// card closed it.
func playAndReport(state *engine.GameState, seat int, card engine.Card) {
	closing := len(state.Round.TrickCards) == state.Rules.Players-1
	trick := append(append([]engine.Card(nil), state.Round.TrickCards...), card)
	order := state.Round.TrickOrder

	if err := engine.PlayCard(state, seat, card); err != nil {
		pterm.Error.Printfln("%s: %v", seatNames[seat], err)
		return
	}
	fmt.Printf("%s plays %s\n", seatNames[seat], renderCard(card))

	if closing {
		offset, points := engine.ResolveTrick(trick)
		winner := order[offset]
		if points > 0 {
			pterm.Warning.Printfln("%s takes the trick (+%d)", seatNames[winner], points)
		} else {
			fmt.Printf("%s takes the trick\n", seatNames[winner])
		}
		fmt.Println()
	}
}

func promptHuman(reader *bufio.Reader, state engine.GameState) engine.Card {
	legal := engine.LegalPlays(state, 0)
	for {
		if len(state.Round.TrickCards) > 0 {
			fmt.Printf("On the table: %s\n", renderCards(state.Round.TrickCards))
		}
		fmt.Printf("Your hand:    %s\n", renderCards(state.Players[0].Hand))
		fmt.Printf("Playable:     %s\n", renderIndexed(legal))
		fmt.Print("Your move (index, h = hint, q = quit): ")

		input, err := reader.ReadString('\n')
		if err != nil {
			os.Exit(0)
		}
		input = strings.TrimSpace(input)
		switch input {
		case "q":
			os.Exit(0)
		case "h":
			if hint, ok := bots.BestCardFor(state, 0); ok {
				pterm.Info.Printfln("Suggested: %s", renderCard(hint))
			}
			continue
		}
		idx, err := strconv.Atoi(input)
		if err != nil || idx < 0 || idx >= len(legal) {
			pterm.Warning.Printfln("pick 0-%d, h for a hint, q to quit", len(legal)-1)
			continue
		}
		return legal[idx]
	}
}

func printScores(state engine.GameState) {
	for i, p := range state.Players {
		fmt.Printf("  %-5s total %3d  last round %2d\n", seatNames[i], p.TotalScore, p.RoundScore)
	}
	fmt.Println()
}

func renderCard(c engine.Card) string {
	var glyph string
	switch c.Suit {
	case engine.SuitHearts:
		glyph = "♥"
	case engine.SuitDiamonds:
		glyph = "♦"
	case engine.SuitClubs:
		glyph = "♣"
	case engine.SuitSpades:
		glyph = "♠"
	}
	text := c.Rank.String() + glyph
	if c.IsRed() {
		return pterm.LightRed(text)
	}
	return pterm.LightWhite(text)
}

func renderCards(cards []engine.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, renderCard(c))
	}
	return strings.Join(parts, " ")
}

func renderIndexed(cards []engine.Card) string {
	parts := make([]string, 0, len(cards))
	for i, c := range cards {
		parts = append(parts, fmt.Sprintf("[%d]%s", i, renderCard(c)))
	}
	return strings.Join(parts, " ")
}
