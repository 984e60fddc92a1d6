package domain

// Side is the mark a player drops into a cell.
// A cell holding Empty is unoccupied.
type Side int

const (
	Empty   Side = 0
	SideOne Side = 1
	SideTwo Side = 2
)

// Opponent returns the other mark. Calling it on Empty returns Empty.
func (s Side) Opponent() Side {
	switch s {
	case SideOne:
		return SideTwo
	case SideTwo:
		return SideOne
	}
	return Empty
}

func (s Side) String() string {
	switch s {
	case SideOne:
		return "one"
	case SideTwo:
		return "two"
	}
	return "empty"
}

// Board geometry. The canonical game is 7 columns by 6 rows,
// four in a row to win.
const (
	Columns = 7
	Rows    = 6
	ToWin   = 4
)

// BotTier selects a move policy for a bot-controlled player.
type BotTier string

const (
	TierEasy   BotTier = "easy"
	TierNormal BotTier = "normal"
	TierStupid BotTier = "stupid"
	TierRandom BotTier = "random"
	TierCheat  BotTier = "cheat"
)

// ParseTier validates and returns the bot tier.
// Defaults to Normal if invalid or empty.
func ParseTier(tier string) BotTier {
	switch tier {
	case "easy":
		return TierEasy
	case "normal":
		return TierNormal
	case "stupid":
		return TierStupid
	case "random":
		return TierRandom
	case "cheat":
		return TierCheat
	default:
		return TierNormal
	}
}

var BotNames = map[BotTier]string{
	TierEasy:   "Alice",
	TierNormal: "Bob",
	TierStupid: "Dory",
	TierRandom: "Randy",
	TierCheat:  "Charles",
}

func GetBotName(tier BotTier) string {
	if name, ok := BotNames[tier]; ok {
		return name
	}
	return "BOT"
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn  Error = "invalid column"
	ErrInvalidRow     Error = "invalid row"
	ErrColumnFull     Error = "column is full"
	ErrGameInProgress Error = "game still in progress"
	ErrGameOver       Error = "game is over"
	ErrNoFreeColumn   Error = "no free column"
)
