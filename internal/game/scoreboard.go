package game

// ScoreBoard tracks both scores and the current round of a match
type ScoreBoard struct {
	Player1Score int
	Player2Score int
	Round        int
	ToWin        int
}

func NewScoreBoard(toWin int) ScoreBoard {
	return ScoreBoard{ToWin: toWin}
}

// Award gives the player one point
func (s *ScoreBoard) Award(p Player) {
	switch p {
	case PlayerOne:
		s.Player1Score++
	case PlayerTwo:
		s.Player2Score++
	}
}

// Score returns the player's points
func (s ScoreBoard) Score(p Player) int {
	switch p {
	case PlayerOne:
		return s.Player1Score
	case PlayerTwo:
		return s.Player2Score
	}
	return 0
}

// Winner returns the first player to reach the winning score, or NoPlayer
func (s ScoreBoard) Winner() Player {
	if s.Player1Score >= s.ToWin {
		return PlayerOne
	}
	if s.Player2Score >= s.ToWin {
		return PlayerTwo
	}
	return NoPlayer
}
