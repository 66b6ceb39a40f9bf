package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocky.yaml")
	body := "board:\n  max_depth: 2\ngameplay:\n  moves: 7\ndifficulty:\n  preset: fixed\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		difficulty string
		want       []string
	}{
		{"as loaded", "", []string{"max_depth: 2", "moves: 7", "preset: fixed"}},
		{"hard preset", "hard", []string{"max_depth: 5", "moves: 10", "preset: hard"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeConfig(&buf, path, tt.difficulty); err != nil {
				t.Fatalf("writeConfig: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}

	if err := writeConfig(&bytes.Buffer{}, path, "brutal"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
