package domain

// Board is a column-major grid of cells. cells[col][row] with row 0 at
// the bottom, so gravity means the occupied cells of a column are
// always a contiguous prefix.
type Board struct {
	cells [][]Side
}

func NewBoard() *Board {
	cells := make([][]Side, Columns)
	for c := range cells {
		cells[c] = make([]Side, Rows)
	}
	return &Board{cells: cells}
}

// Drop writes mark into the lowest empty cell of the column.
// No other side effect.
func (b *Board) Drop(column int, mark Side) error {
	row, err := b.LowestEmptyRow(column)
	if err != nil {
		return err
	}
	b.cells[column][row] = mark
	return nil
}

// LowestEmptyRow returns the row the next drop in this column would
// occupy.
func (b *Board) LowestEmptyRow(column int) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}
	for row := 0; row < Rows; row++ {
		if b.cells[column][row] == Empty {
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// IsColumnFree reports whether the column still has an empty cell.
func (b *Board) IsColumnFree(column int) (bool, error) {
	if column < 0 || column >= Columns {
		return false, ErrInvalidColumn
	}
	return b.cells[column][Rows-1] == Empty, nil
}

// FreeColumns returns the columns that can still take a drop,
// in ascending order.
func (b *Board) FreeColumns() []int {
	free := []int{}
	for col := 0; col < Columns; col++ {
		if b.cells[col][Rows-1] == Empty {
			free = append(free, col)
		}
	}
	return free
}

// Full reports whether no column has space left.
func (b *Board) Full() bool {
	for col := 0; col < Columns; col++ {
		if b.cells[col][Rows-1] == Empty {
			return false
		}
	}
	return true
}

// CellAt returns the mark at (column, row), Empty if unoccupied.
func (b *Board) CellAt(column, row int) (Side, error) {
	if column < 0 || column >= Columns {
		return Empty, ErrInvalidColumn
	}
	if row < 0 || row >= Rows {
		return Empty, ErrInvalidRow
	}
	return b.cells[column][row], nil
}

// Clone creates a deep copy sharing no cell storage with the source.
// Search explores hypothetical futures on clones so the live board is
// never mutated.
func (b *Board) Clone() *Board {
	cells := make([][]Side, Columns)
	for c := range b.cells {
		cells[c] = make([]Side, Rows)
		copy(cells[c], b.cells[c])
	}
	return &Board{cells: cells}
}

// Grid returns a column-major snapshot of the cell contents for the
// presentation layer.
func (b *Board) Grid() [][]Side {
	return b.Clone().cells
}
