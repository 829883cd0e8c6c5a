package game

import (
	"testing"
)

func testBounds() Bounds {
	return Bounds{Upper: 25, Lower: 875, Left: 0, Right: 1200}
}

func TestPaddle_StartsCentered(t *testing.T) {
	paddle := NewPaddle(PlayerOne, 34, 40, 120, testBounds())

	if paddle.Y != 390 {
		t.Errorf("expected Y=390, got %f", paddle.Y)
	}
	if paddle.CenterY() != 450 {
		t.Errorf("expected center 450, got %f", paddle.CenterY())
	}
}

func TestPaddle_SetY(t *testing.T) {
	paddle := NewPaddle(PlayerOne, 34, 40, 120, testBounds())

	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"inside", 200, 200},
		{"at top border", 25, 25},
		{"above top border", 0, 25},
		{"at bottom limit", 755, 755},
		{"below bottom limit", 900, 755},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle.SetY(tt.y)
			if paddle.Y != tt.want {
				t.Errorf("SetY(%f) = %f, want %f", tt.y, paddle.Y, tt.want)
			}
		})
	}
}

func TestPaddle_CenterOn(t *testing.T) {
	paddle := NewPaddle(PlayerTwo, 1126, 40, 120, testBounds())

	tests := []struct {
		name    string
		pointer float64
		want    float64
	}{
		{"middle", 450, 390},
		{"near top", 30, 25},
		{"top threshold", 85, 25},
		{"near bottom", 870, 755},
		{"bottom threshold", 815, 755},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle.CenterOn(tt.pointer)
			if paddle.Y != tt.want {
				t.Errorf("CenterOn(%f) = %f, want %f", tt.pointer, paddle.Y, tt.want)
			}
		})
	}
}

func TestPaddle_Recenter(t *testing.T) {
	paddle := NewPaddle(PlayerOne, 34, 40, 120, testBounds())
	paddle.SetY(25)

	paddle.Recenter()

	if paddle.Y != 390 {
		t.Errorf("expected Y=390 after recenter, got %f", paddle.Y)
	}
}

func TestPaddle_Box(t *testing.T) {
	paddle := NewPaddle(PlayerOne, 34, 40, 120, testBounds())
	box := paddle.Box()

	if box.Left() != 34 || box.Right() != 74 || box.Top() != 390 || box.Bottom() != 510 {
		t.Errorf("unexpected box %+v", box)
	}
	if paddle.TopY() != box.Top() || paddle.BottomY() != box.Bottom() {
		t.Errorf("TopY/BottomY disagree with box: %f/%f", paddle.TopY(), paddle.BottomY())
	}
}

func TestPlayer_Opponent(t *testing.T) {
	if PlayerOne.Opponent() != PlayerTwo {
		t.Error("expected player two to oppose player one")
	}
	if PlayerTwo.Opponent() != PlayerOne {
		t.Error("expected player one to oppose player two")
	}
	if NoPlayer.Opponent() != NoPlayer {
		t.Error("expected no opponent for NoPlayer")
	}
}
