package bot

import (
	"math"

	"github.com/gravity-games/dropfour/internal/domain"
)

const (
	WIN_POINTS     = 1000000
	OPP_WIN_POINTS = -1000000
	DRAW_POINTS    = 0
)

// ChooseMove runs minimax with alpha-beta pruning to the given depth
// and returns the column to play for forSide. Columns are explored in
// ascending order and only a strict improvement replaces the best, so
// ties go to the lowest column. All exploration happens on clones; the
// caller's board is never touched.
func ChooseMove(b *domain.Board, depth int, forSide domain.Side) (int, error) {
	free := b.FreeColumns()
	if len(free) == 0 {
		return -1, domain.ErrNoFreeColumn
	}

	bestCol := free[0]
	bestScore := math.MinInt32
	alpha := math.MinInt32
	beta := math.MaxInt32

	for _, col := range free {
		next := b.Clone()
		next.Drop(col, forSide)

		score := minimax(next, depth-1, alpha, beta, false, forSide)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestCol, nil
}

// minimax evaluates the board for forSide. Terminal positions score a
// flat win/loss/draw regardless of remaining depth, so pruned and
// unpruned search return identical values.
func minimax(b *domain.Board, depth, alpha, beta int, maximizing bool, forSide domain.Side) int {
	if winner := domain.Winner(b); winner != domain.Empty {
		if winner == forSide {
			return WIN_POINTS
		}
		return OPP_WIN_POINTS
	}
	if b.Full() {
		return DRAW_POINTS
	}
	if depth == 0 {
		return Score(b, forSide)
	}

	if maximizing {
		best := math.MinInt32
		for _, col := range b.FreeColumns() {
			next := b.Clone()
			next.Drop(col, forSide)

			value := minimax(next, depth-1, alpha, beta, false, forSide)
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return best
	}

	worst := math.MaxInt32
	for _, col := range b.FreeColumns() {
		next := b.Clone()
		next.Drop(col, forSide.Opponent())

		value := minimax(next, depth-1, alpha, beta, true, forSide)
		if value < worst {
			worst = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return worst
}
