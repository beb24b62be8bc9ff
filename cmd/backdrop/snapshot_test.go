package main

import (
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/backdrop/config"
)

func TestRunSnapshotWritesPNG(t *testing.T) {
	tests := []struct {
		name string
		dark bool
	}{
		{"rain", true},
		{"ripple", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name+".png")
			opts := snapshotOptions{Path: path, Width: 160, Height: 90, Frames: 150, Dark: tt.dark}
			if err := runSnapshot(config.Default(), rand.New(rand.NewSource(3)), opts); err != nil {
				t.Fatalf("runSnapshot failed: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("Failed to open snapshot: %v", err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("Snapshot is not a PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 90 {
				t.Errorf("Expected 160x90 image, got %v", b)
			}
		})
	}
}

func TestRunSnapshotRejectsBadOptions(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))
	dir := t.TempDir()

	if err := runSnapshot(cfg, rng, snapshotOptions{Path: filepath.Join(dir, "a.png"), Width: 10, Height: 10}); err == nil {
		t.Error("Expected error for zero frames")
	}
	if err := runSnapshot(cfg, rng, snapshotOptions{Path: filepath.Join(dir, "b.png"), Width: 0, Height: 10, Frames: 1}); err == nil {
		t.Error("Expected error for empty surface")
	}
}
