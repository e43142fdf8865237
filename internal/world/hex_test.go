package world

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want int
	}{
		{"same hex", Coord{3, 3}, Coord{3, 3}, 0},
		{"east neighbor", Coord{0, 0}, Coord{1, 0}, 1},
		{"southwest neighbor", Coord{0, 0}, Coord{-1, 1}, 1},
		{"straight line", Coord{0, 0}, Coord{5, 0}, 5},
		{"diagonal", Coord{0, 0}, Coord{2, 3}, 5},
		{"negative quadrant", Coord{-2, -2}, Coord{2, 2}, 8},
		{"symmetric", Coord{4, -1}, Coord{1, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d (not symmetric)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	c := Coord{Q: 2, R: 5}
	neighbors := c.Neighbors()

	if len(neighbors) != 6 {
		t.Fatalf("Neighbors() returned %d coords, want 6", len(neighbors))
	}

	seen := make(map[Coord]bool)
	for _, nb := range neighbors {
		if nb == c {
			t.Errorf("Neighbors() includes the center %v", c)
		}
		if Distance(c, nb) != 1 {
			t.Errorf("neighbor %v is at distance %d, want 1", nb, Distance(c, nb))
		}
		if seen[nb] {
			t.Errorf("duplicate neighbor %v", nb)
		}
		seen[nb] = true
	}
}

func TestCubeCoordinateInvariant(t *testing.T) {
	for _, c := range []Coord{{0, 0}, {3, -2}, {-5, 1}, {10, 10}} {
		if c.Q+c.R+c.S() != 0 {
			t.Errorf("coord %v: q+r+s = %d, want 0", c, c.Q+c.R+c.S())
		}
	}
}
