package main

import (
	"os"
	"path/filepath"
	"testing"
)

const corridorYAML = `name: Corridor
layout:
  - "WWWWWWW"
  - "WP...GW"
  - "WWWWWWW"
pursuer:
  heading: left
`

func TestResolveGame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corridor.yaml")
	if err := os.WriteFile(path, []byte(corridorYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target  string
		wantID  string
		wantErr bool
	}{
		{"classic", "classic", false},
		{"arena", "arena", false},
		{path, "corridor", false},
		{"nope", "", true},
		{filepath.Join(dir, "missing.yaml"), "", true},
	}

	for _, tc := range tests {
		game, err := resolveGame(tc.target)
		if tc.wantErr {
			if err == nil {
				t.Errorf("resolveGame(%q) expected error", tc.target)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolveGame(%q) failed: %v", tc.target, err)
			continue
		}
		if game.ID() != tc.wantID {
			t.Errorf("resolveGame(%q).ID() = %q, expected %q", tc.target, game.ID(), tc.wantID)
		}
	}
}
