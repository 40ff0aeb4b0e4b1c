package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/VrachoxReact/crvena-hanicar/internal/bots"
	"github.com/VrachoxReact/crvena-hanicar/internal/engine"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HumanSeat is the fixed seat the connected client plays. Seat identity
// carries no rule meaning; it only routes input.
const HumanSeat = 0

// Session owns the game state exclusively: every mutation goes through the
// engine transitions under the session mutex, and bots act only from here.
type Session struct {
	mu         sync.Mutex
	id         string
	state      engine.GameState
	started    bool
	baseSeed   int64
	rounds     int
	actionIds  map[string]bool
	conn       *websocket.Conn
	botPlayers map[int]bots.Bot
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:         uuid.NewString(),
			actionIds:  map[string]bool{},
			botPlayers: map[int]bots.Bot{},
		}
	})
	return sessionInst
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type     string   `json:"type"`
	ActionId string   `json:"actionId,omitempty"`
	Card     *CardDTO `json:"card,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	Id     string     `json:"id,omitempty"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Hint   *CardDTO   `json:"hint,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_game":
		s.startGame()
	case "play_card":
		s.applyCard(msg.ActionId, msg.Card)
	case "request_hint":
		s.sendHint()
	case "restart":
		s.restart()
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseSeed = time.Now().UnixNano()
	s.rounds = 0
	s.state = engine.NewGame(engine.DefaultPreset(), s.baseSeed)
	s.started = true
	s.actionIds = map[string]bool{}
	s.botPlayers = map[int]bots.Bot{
		1: bots.NewRandom(s.baseSeed + 1),
		2: bots.NewCautious(s.baseSeed + 2),
		3: bots.NewOmniscient(),
	}
	events := s.ensureDealLocked()
	s.sendStateLocked(events)
	s.botAutoPlayLocked()
}

func (s *Session) restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "game not started")
		return
	}
	engine.Restart(&s.state)
	s.actionIds = map[string]bool{}
	events := s.ensureDealLocked()
	s.sendStateLocked(events)
	s.botAutoPlayLocked()
}

func (s *Session) applyCard(actionId string, dto *CardDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}

	if dto == nil {
		s.sendError("bad_action", "card required")
		return
	}
	card, err := dto.ToEngine()
	if err != nil {
		s.sendError("bad_action", err.Error())
		return
	}
	// The client may only move its own seat; bot turns are never open to
	// outside input.
	if seat, ok := engine.CurrentPlayer(s.state); !ok || seat != HumanSeat {
		s.sendError("out_of_turn", "not your turn")
		return
	}
	prev := s.state
	if err := engine.PlayCard(&s.state, HumanSeat, card); err != nil {
		s.sendError("apply_failed", err.Error())
		return
	}
	s.actionIds[actionId] = true
	events := buildEvents(prev, s.state, HumanSeat, card)
	events = append(events, s.ensureDealLocked()...)
	s.sendStateLocked(events)
	s.botAutoPlayLocked()
}

func (s *Session) sendHint() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "game not started")
		return
	}
	card, ok := bots.BestCardFor(s.state, HumanSeat)
	if !ok {
		s.sendError("no_hint", "no card to suggest")
		return
	}
	dto := cardToDTO(card)
	s.sendLocked(ServerMessage{Type: "hint", Hint: &dto})
}

func (s *Session) botAutoPlayLocked() {
	for {
		seat, ok := engine.CurrentPlayer(s.state)
		if !ok {
			return
		}
		bot, isBot := s.botPlayers[seat]
		if !isBot {
			return
		}
		prev := s.state
		card := bot.ChooseCard(s.state, seat)
		if err := engine.PlayCard(&s.state, seat, card); err != nil {
			log.Printf("bot play error: %v", err)
			return
		}
		events := buildEvents(prev, s.state, seat, card)
		events = append(events, s.ensureDealLocked()...)
		s.sendStateLocked(events)
	}
}

// ensureDealLocked reseeds and deals whenever the machine is parked in the
// dealing phase, so each round gets its own shuffle.
func (s *Session) ensureDealLocked() []Event {
	if s.state.Round.Phase != engine.PhaseDealing {
		return nil
	}
	s.state.Seed = s.baseSeed + int64(s.rounds)
	s.rounds++
	if err := engine.DealRound(&s.state); err != nil {
		log.Printf("deal error: %v", err)
		return nil
	}
	return dealEvents(s.state)
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if !s.started {
		s.state = engine.NewGame(engine.DefaultPreset(), 0)
	}
	s.sendLocked(ServerMessage{
		Type:   "state",
		Id:     s.id,
		State:  BuildGameView(s.state, HumanSeat),
		Events: events,
	})
}

func (s *Session) sendError(code, message string) {
	s.sendLocked(ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	})
}

func (s *Session) sendLocked(msg ServerMessage) {
	if s.conn == nil {
		return
	}
	_ = s.conn.WriteJSON(msg)
}
