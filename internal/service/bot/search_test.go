package bot

import (
	"math"
	"testing"

	"github.com/gravity-games/dropfour/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveMinimax is the unpruned reference implementation. Pruning is an
// optimization, not a behavior change, so both searches must agree.
func naiveMinimax(b *domain.Board, depth int, maximizing bool, forSide domain.Side) int {
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

	mark := forSide
	if !maximizing {
		mark = forSide.Opponent()
	}

	best := math.MinInt32
	if !maximizing {
		best = math.MaxInt32
	}
	for _, col := range b.FreeColumns() {
		next := b.Clone()
		next.Drop(col, mark)
		value := naiveMinimax(next, depth-1, !maximizing, forSide)
		if maximizing && value > best {
			best = value
		}
		if !maximizing && value < best {
			best = value
		}
	}
	return best
}

func naiveChooseMove(b *domain.Board, depth int, forSide domain.Side) int {
	bestCol := -1
	bestScore := math.MinInt32
	for _, col := range b.FreeColumns() {
		next := b.Clone()
		next.Drop(col, forSide)
		if value := naiveMinimax(next, depth-1, false, forSide); value > bestScore {
			bestScore = value
			bestCol = col
		}
	}
	return bestCol
}

func midGameBoard(t *testing.T) *domain.Board {
	t.Helper()
	b := domain.NewBoard()
	drops(t, b, domain.SideOne, 3, 3, 2, 0)
	drops(t, b, domain.SideTwo, 3, 4, 2, 1)
	return b
}

func TestAlphaBetaMatchesPlainMinimaxValues(t *testing.T) {
	boards := map[string]*domain.Board{
		"empty":    domain.NewBoard(),
		"mid-game": midGameBoard(t),
	}

	for name, b := range boards {
		for depth := 1; depth <= 4; depth++ {
			pruned := minimax(b, depth, math.MinInt32, math.MaxInt32, true, domain.SideOne)
			plain := naiveMinimax(b, depth, true, domain.SideOne)
			assert.Equalf(t, plain, pruned, "%s board, depth %d", name, depth)
		}
	}
}

func TestAlphaBetaMatchesPlainMinimaxMove(t *testing.T) {
	boards := map[string]*domain.Board{
		"empty":    domain.NewBoard(),
		"mid-game": midGameBoard(t),
	}

	for name, b := range boards {
		for depth := 1; depth <= 4; depth++ {
			col, err := ChooseMove(b, depth, domain.SideTwo)
			require.NoError(t, err)
			assert.Equalf(t, naiveChooseMove(b, depth, domain.SideTwo), col, "%s board, depth %d", name, depth)
		}
	}
}

func TestChooseMoveTakesTheWin(t *testing.T) {
	// three stacked in column 4 with the fourth slot open; at depth 2
	// only the completing drop scores a win
	b := domain.NewBoard()
	drops(t, b, domain.SideOne, 4, 4, 4)

	col, err := ChooseMove(b, 2, domain.SideOne)
	require.NoError(t, err)
	assert.Equal(t, 4, col)
}

func TestCheatTierTakesTheWin(t *testing.T) {
	b := domain.NewBoard()
	drops(t, b, domain.SideOne, 0, 0, 0)

	col, err := ChooseColumn(b, domain.TierCheat, domain.SideOne)
	require.NoError(t, err)
	assert.Equal(t, 0, col)
}

func TestNormalTierBlocksTheThreat(t *testing.T) {
	// the opponent owns the bottom row cols 0..2; only column 3 stops
	// the completion
	b := domain.NewBoard()
	drops(t, b, domain.SideTwo, 0, 1, 2)

	col, err := ChooseColumn(b, domain.TierNormal, domain.SideOne)
	require.NoError(t, err)
	assert.Equal(t, 3, col)
}

func TestChooseMoveOnFullBoard(t *testing.T) {
	b := domain.NewBoard()
	mark := domain.SideOne
	for round := 0; round < domain.Rows; round++ {
		for _, col := range []int{0, 2, 1, 3, 4, 6, 5} {
			require.NoError(t, b.Drop(col, mark))
			mark = mark.Opponent()
		}
	}

	_, err := ChooseMove(b, 3, domain.SideOne)
	assert.ErrorIs(t, err, domain.ErrNoFreeColumn)
}

func TestStupidTierTakesLowestFreeColumn(t *testing.T) {
	b := domain.NewBoard()

	col, err := ChooseColumn(b, domain.TierStupid, domain.SideTwo)
	require.NoError(t, err)
	assert.Equal(t, 0, col)

	for i := 0; i < domain.Rows; i++ {
		require.NoError(t, b.Drop(0, domain.SideOne))
	}
	col, err = ChooseColumn(b, domain.TierStupid, domain.SideTwo)
	require.NoError(t, err)
	assert.Equal(t, 1, col)
}

func TestRandomTierIsUniform(t *testing.T) {
	b := domain.NewBoard()
	counts := make(map[int]int)

	const trials = 1000
	for i := 0; i < trials; i++ {
		col, err := ChooseColumn(b, domain.TierRandom, domain.SideTwo)
		require.NoError(t, err)
		require.GreaterOrEqual(t, col, 0)
		require.Less(t, col, domain.Columns)
		counts[col]++
	}

	// every free column gets picked, each within a loose band around
	// the uniform expectation of trials/7
	assert.Len(t, counts, domain.Columns)
	for col, n := range counts {
		assert.Greaterf(t, n, 80, "column %d picked too rarely", col)
		assert.Lessf(t, n, 220, "column %d picked too often", col)
	}
}

func TestRandomTierOnlyPicksFreeColumns(t *testing.T) {
	b := domain.NewBoard()
	for i := 0; i < domain.Rows; i++ {
		require.NoError(t, b.Drop(0, domain.SideOne))
		require.NoError(t, b.Drop(6, domain.SideTwo))
	}

	for i := 0; i < 200; i++ {
		col, err := ChooseColumn(b, domain.TierRandom, domain.SideTwo)
		require.NoError(t, err)
		assert.Contains(t, []int{1, 2, 3, 4, 5}, col)
	}
}
