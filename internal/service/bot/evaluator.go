package bot

import (
	"github.com/gravity-games/dropfour/internal/domain"
)

const (
	// window scores by (empty count, own count); the rest of the
	// window must belong to the opponent. Mixed windows score 0.
	SCORE_OWN_FOUR    = 10000
	SCORE_OWN_THREE   = 5
	SCORE_OWN_TWO     = 2
	SCORE_OPP_FOUR    = -1000
	SCORE_OPP_THREE   = -5
	SCORE_OPP_TWO     = -2
	SCORE_CENTER_CELL = 4
)

// Score is a heuristic estimate of how favorable the board is for
// forSide. It is not bounded or normalized; it only means anything
// when comparing candidate moves at the same search depth.
func Score(b *domain.Board, forSide domain.Side) int {
	grid := b.Grid()
	score := 0

	// center column bonus: the center participates in the most
	// four-cell windows
	center := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		if grid[center][row] == forSide {
			score += SCORE_CENTER_CELL
		}
	}

	// vertical windows
	for col := 0; col < domain.Columns; col++ {
		for row := 0; row <= domain.Rows-domain.ToWin; row++ {
			score += windowScore(grid, col, row, 0, 1, forSide)
		}
	}

	// horizontal windows
	for col := 0; col <= domain.Columns-domain.ToWin; col++ {
		for row := 0; row < domain.Rows; row++ {
			score += windowScore(grid, col, row, 1, 0, forSide)
		}
	}

	// diagonal windows (rising, "/")
	for col := 0; col <= domain.Columns-domain.ToWin; col++ {
		for row := 0; row <= domain.Rows-domain.ToWin; row++ {
			score += windowScore(grid, col, row, 1, 1, forSide)
		}
	}

	// anti-diagonal windows (falling, "\")
	for col := 0; col <= domain.Columns-domain.ToWin; col++ {
		for row := domain.ToWin - 1; row < domain.Rows; row++ {
			score += windowScore(grid, col, row, 1, -1, forSide)
		}
	}

	return score
}

// windowScore classifies the four cells starting at (col, row) and
// stepping by (dCol, dRow) by how many are empty and how many belong
// to forSide.
func windowScore(grid [][]domain.Side, col, row, dCol, dRow int, forSide domain.Side) int {
	own, empty := 0, 0
	for i := 0; i < domain.ToWin; i++ {
		switch grid[col+i*dCol][row+i*dRow] {
		case forSide:
			own++
		case domain.Empty:
			empty++
		}
	}

	switch {
	case empty == 0 && own == 4:
		return SCORE_OWN_FOUR
	case empty == 0 && own == 0:
		return SCORE_OPP_FOUR
	case empty == 1 && own == 3:
		return SCORE_OWN_THREE
	case empty == 1 && own == 0:
		return SCORE_OPP_THREE
	case empty == 2 && own == 2:
		return SCORE_OWN_TWO
	case empty == 2 && own == 0:
		return SCORE_OPP_TWO
	}
	return 0
}
