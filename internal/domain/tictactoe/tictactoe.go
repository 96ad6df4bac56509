package tictactoe

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type State struct {
	Board [9]Mark
	XTurn bool
}

func New() State {
	return State{XTurn: true}
}

func (s State) Winner() Mark {
	for _, l := range lines {
		a, b, c := l[0], l[1], l[2]
		if s.Board[a] != Empty && s.Board[a] == s.Board[b] && s.Board[a] == s.Board[c] {
			return s.Board[a]
		}
	}
	return Empty
}

func (s State) Draw() bool {
	if s.Winner() != Empty {
		return false
	}
	for _, m := range s.Board {
		if m == Empty {
			return false
		}
	}
	return true
}

// Next returns the mark that plays next.
func (s State) Next() Mark {
	if s.XTurn {
		return X
	}
	return O
}

func Play(s State, cell int) (State, bool) {
	if cell < 0 || cell >= len(s.Board) {
		return s, false
	}
	if s.Board[cell] != Empty || s.Winner() != Empty {
		return s, false
	}
	s.Board[cell] = s.Next()
	s.XTurn = !s.XTurn
	return s, true
}

func Reset(State) State {
	return New()
}
