package domain

// Winner scans every 4-cell window along the four orientations and
// returns the side owning a full window, or Empty if there is none.
//
// The scan is exhaustive on purpose: search evaluates hypothetical
// boards that have no "last move" to check around.
func Winner(b *Board) Side {
	// vertical windows
	for col := 0; col < Columns; col++ {
		for row := 0; row <= Rows-ToWin; row++ {
			if s := windowOwner(b, col, row, 0, 1); s != Empty {
				return s
			}
		}
	}

	// horizontal windows
	for col := 0; col <= Columns-ToWin; col++ {
		for row := 0; row < Rows; row++ {
			if s := windowOwner(b, col, row, 1, 0); s != Empty {
				return s
			}
		}
	}

	// diagonal windows (rising, "/")
	for col := 0; col <= Columns-ToWin; col++ {
		for row := 0; row <= Rows-ToWin; row++ {
			if s := windowOwner(b, col, row, 1, 1); s != Empty {
				return s
			}
		}
	}

	// anti-diagonal windows (falling, "\")
	for col := 0; col <= Columns-ToWin; col++ {
		for row := ToWin - 1; row < Rows; row++ {
			if s := windowOwner(b, col, row, 1, -1); s != Empty {
				return s
			}
		}
	}

	return Empty
}

// windowOwner returns the side occupying all four cells of the window
// starting at (col, row) and stepping by (dCol, dRow), or Empty.
func windowOwner(b *Board, col, row, dCol, dRow int) Side {
	first := b.cells[col][row]
	if first == Empty {
		return Empty
	}
	for i := 1; i < ToWin; i++ {
		if b.cells[col+i*dCol][row+i*dRow] != first {
			return Empty
		}
	}
	return first
}

// IsOver reports whether the game on this board is finished:
// someone has four in a row, or the board is full (draw).
func IsOver(b *Board) bool {
	return Winner(b) != Empty || b.Full()
}
