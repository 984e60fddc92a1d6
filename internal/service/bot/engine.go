package bot

import (
	"math/rand"

	"github.com/gravity-games/dropfour/internal/domain"
)

// search depth per tier
const (
	DEPTH_EASY   = 1
	DEPTH_NORMAL = 3
	DEPTH_CHEAT  = 8
)

// ChooseColumn selects the column a bot of the given tier plays.
// The stupid and random tiers bypass search entirely.
func ChooseColumn(b *domain.Board, tier domain.BotTier, side domain.Side) (int, error) {
	switch tier {
	case domain.TierStupid:
		free := b.FreeColumns()
		if len(free) == 0 {
			return -1, domain.ErrNoFreeColumn
		}
		return free[0], nil
	case domain.TierRandom:
		free := b.FreeColumns()
		if len(free) == 0 {
			return -1, domain.ErrNoFreeColumn
		}
		return free[rand.Intn(len(free))], nil
	case domain.TierEasy:
		return ChooseMove(b, DEPTH_EASY, side)
	case domain.TierCheat:
		return ChooseMove(b, DEPTH_CHEAT, side)
	default:
		return ChooseMove(b, DEPTH_NORMAL, side)
	}
}
