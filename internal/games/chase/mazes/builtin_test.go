package mazes

import "testing"

func TestBuiltin(t *testing.T) {
	mazes, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	expected := []struct {
		id           string
		rows, cols   int
		collectibles int
	}{
		{"arena", 11, 21, 125},
		{"classic", 15, 19, 110},
		{"crossroads", 15, 21, 161},
	}

	if len(mazes) != len(expected) {
		t.Fatalf("Builtin() returned %d mazes, expected %d", len(mazes), len(expected))
	}

	for i, want := range expected {
		m := mazes[i]
		if m.ID != want.id {
			t.Errorf("mazes[%d].ID = %q, expected %q", i, m.ID, want.id)
			continue
		}
		rows, cols := m.Size()
		if rows != want.rows || cols != want.cols {
			t.Errorf("%s Size() = (%d, %d), expected (%d, %d)", m.ID, rows, cols, want.rows, want.cols)
		}
		if got := m.Collectibles(); got != want.collectibles {
			t.Errorf("%s Collectibles() = %d, expected %d", m.ID, got, want.collectibles)
		}
		if m.FilePath != "" {
			t.Errorf("%s FilePath = %q, expected empty for built-in", m.ID, m.FilePath)
		}
	}
}

func TestBuiltinDefaultExists(t *testing.T) {
	mazes, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	for _, m := range mazes {
		if m.ID == DefaultID {
			return
		}
	}
	t.Errorf("default maze %q is not built in", DefaultID)
}

func TestClassicSetup(t *testing.T) {
	mazes, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	var classic Maze
	for _, m := range mazes {
		if m.ID == "classic" {
			classic = m
		}
	}

	setup, err := Setup(classic)
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if setup.PursuerStart.Row != 7 || setup.PursuerStart.Col != 5 {
		t.Errorf("PursuerStart = %v, expected (7,5)", setup.PursuerStart)
	}
}
