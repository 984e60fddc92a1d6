package match

import (
	"math/rand"
	"sync"

	"github.com/gravity-games/dropfour/internal/domain"
	"github.com/gravity-games/dropfour/internal/service/bot"
)

type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusDraw   Status = "draw"
)

// Player pairs an identity with its assigned side. Immutable after
// the match is constructed.
type Player struct {
	Name string
	Side domain.Side
	Tier domain.BotTier
	bot  bool
}

func (p Player) IsBot() bool {
	return p.bot
}

// Match is the session aggregate: one board, two players, and the
// index of whose turn it is. A single mutex serializes Play against
// the query surface, so one transport goroutine at a time drives a
// match; distinct matches share nothing.
type Match struct {
	mu      sync.Mutex
	board   *domain.Board
	players [2]Player
	current int
	status  Status
	winner  domain.Side
}

// NewVersusBot builds a human-vs-bot match. The human always moves
// first: first-turn randomization applies only when the opponent is
// human-controlled (see DESIGN.md).
func NewVersusBot(playerName string, tier domain.BotTier) *Match {
	return &Match{
		board: domain.NewBoard(),
		players: [2]Player{
			{Name: playerName, Side: domain.SideOne},
			{Name: domain.GetBotName(tier), Side: domain.SideTwo, Tier: tier, bot: true},
		},
		current: 0,
		status:  StatusActive,
	}
}

// NewVersusHuman builds a human-vs-human match with the starting
// player chosen uniformly at random.
func NewVersusHuman(playerOne, playerTwo string) *Match {
	return &Match{
		board: domain.NewBoard(),
		players: [2]Player{
			{Name: playerOne, Side: domain.SideOne},
			{Name: playerTwo, Side: domain.SideTwo},
		},
		current: rand.Intn(2),
		status:  StatusActive,
	}
}

// Play drops the current player's mark into the column, then keeps
// applying bot replies until the game is over or a human is to move.
// The chain is an explicit loop rather than recursive re-entry so
// stack depth stays flat no matter how tiers chain.
//
// A move either fully applies, including any bot reply, or not at all.
func (m *Match) Play(column int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusActive {
		return domain.ErrGameOver
	}
	free, err := m.board.IsColumnFree(column)
	if err != nil {
		return err
	}
	if !free {
		return domain.ErrColumnFull
	}

	for {
		if err := m.board.Drop(column, m.players[m.current].Side); err != nil {
			return err
		}

		if winner := domain.Winner(m.board); winner != domain.Empty {
			m.status = StatusWon
			m.winner = winner
			return nil
		}
		if m.board.Full() {
			m.status = StatusDraw
			return nil
		}

		m.current = 1 - m.current
		if !m.players[m.current].IsBot() {
			return nil
		}

		// bot replies only select from FreeColumns, so this cannot
		// fail on a non-full board
		column, err = bot.ChooseColumn(m.board, m.players[m.current].Tier, m.players[m.current].Side)
		if err != nil {
			return err
		}
	}
}

// Winner returns the side owning the winning line, or Empty on a
// draw. Fails while the game is still in progress.
func (m *Match) Winner() (domain.Side, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusActive {
		return domain.Empty, domain.ErrGameInProgress
	}
	return m.winner, nil
}

func (m *Match) IsOver() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status != StatusActive
}

func (m *Match) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Match) CurrentPlayer() Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.players[m.current]
}

func (m *Match) OpponentPlayer() Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.players[1-m.current]
}

// PlayerBySide returns the player record owning the given mark.
func (m *Match) PlayerBySide(side domain.Side) (Player, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.Side == side {
			return p, true
		}
	}
	return Player{}, false
}

func (m *Match) CellAt(column, row int) (domain.Side, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.CellAt(column, row)
}

// Snapshot builds the transport-facing view of the match.
func (m *Match) Snapshot() domain.MatchState {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := domain.MatchState{
		Board:   m.board.Grid(),
		Status:  string(m.status),
		Current: m.players[m.current].Name,
	}
	for _, p := range m.players {
		state.Players = append(state.Players, domain.PlayerInfo{
			Name: p.Name,
			Side: p.Side,
			Bot:  p.bot,
			Tier: p.Tier,
		})
		if m.status == StatusWon && p.Side == m.winner {
			state.Winner = p.Name
		}
	}
	return state
}
