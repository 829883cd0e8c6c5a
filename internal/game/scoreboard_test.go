package game

import "testing"

func TestScoreBoard_Award(t *testing.T) {
	s := NewScoreBoard(3)

	s.Award(PlayerOne)
	s.Award(PlayerTwo)
	s.Award(PlayerTwo)
	s.Award(NoPlayer)

	if s.Score(PlayerOne) != 1 {
		t.Errorf("player one score = %d, want 1", s.Score(PlayerOne))
	}
	if s.Score(PlayerTwo) != 2 {
		t.Errorf("player two score = %d, want 2", s.Score(PlayerTwo))
	}
	if s.Score(NoPlayer) != 0 {
		t.Errorf("NoPlayer score = %d, want 0", s.Score(NoPlayer))
	}
}

func TestScoreBoard_Winner(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 int
		want   Player
	}{
		{"no points", 0, 0, NoPlayer},
		{"one short", 2, 2, NoPlayer},
		{"player one reaches target", 3, 1, PlayerOne},
		{"player two reaches target", 0, 3, PlayerTwo},
		{"player one checked first", 3, 3, PlayerOne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreBoard{Player1Score: tt.p1, Player2Score: tt.p2, ToWin: 3}
			if got := s.Winner(); got != tt.want {
				t.Errorf("Winner() = %v, want %v", got, tt.want)
			}
		})
	}
}
