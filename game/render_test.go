package game

import "testing"

func TestRenderGlyphs(t *testing.T) {
	g := NewGrid(4, 2)
	g.SetTile(Position{0, 0}, SnakeTile(DirUp))
	g.SetTile(Position{1, 0}, SnakeTile(DirDown))
	g.SetTile(Position{2, 0}, SnakeTile(DirLeft))
	g.SetTile(Position{3, 0}, SnakeTile(DirRight))
	g.SetTile(Position{1, 1}, FoodTile())

	rows := Render(g)
	want := []string{"^v<>", " O  "}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	e, err := New(Options{Rand: seeded(), Food: &Position{2, 3}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := e.Grid().Clone()
	rows := e.Render()
	if !e.Grid().Equal(before) {
		t.Error("render mutated the grid")
	}
	if len(rows) != Height {
		t.Fatalf("expected %d rows, got %d", Height, len(rows))
	}
	for i, r := range rows {
		if len([]rune(r)) != Width {
			t.Errorf("row %d has width %d", i, len([]rune(r)))
		}
	}
	if rows[8][8] != '>' || rows[3][2] != 'O' {
		t.Errorf("unexpected glyphs: head=%q food=%q", rows[8][8], rows[3][2])
	}
}
