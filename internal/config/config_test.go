package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TempDir != "tmp" {
		t.Errorf("TempDir = %q, want tmp", cfg.TempDir)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want output", cfg.OutputDir)
	}
	if cfg.Pad != 3.0 {
		t.Errorf("Pad = %v, want 3.0", cfg.Pad)
	}
	if cfg.KeepTemp {
		t.Error("KeepTemp should default to false")
	}
	if cfg.Downloader.Format != "bv*+ba/best" {
		t.Errorf("Downloader.Format = %q", cfg.Downloader.Format)
	}
	if cfg.Downloader.Container != "mp4" {
		t.Errorf("Downloader.Container = %q", cfg.Downloader.Container)
	}
	if cfg.FFmpeg.ImageFormat != "png" {
		t.Errorf("FFmpeg.ImageFormat = %q", cfg.FFmpeg.ImageFormat)
	}
	if cfg.FFmpeg.Quality != 2 {
		t.Errorf("FFmpeg.Quality = %d, want 2", cfg.FFmpeg.Quality)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.yaml")
	data := `
temp_dir: /tmp/frames
pad: 5.5
keep_temp: true
downloader:
  binary_path: /opt/bin/yt-dlp
ffmpeg:
  quality: 5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TempDir != "/tmp/frames" {
		t.Errorf("TempDir = %q", cfg.TempDir)
	}
	if cfg.Pad != 5.5 {
		t.Errorf("Pad = %v, want 5.5", cfg.Pad)
	}
	if !cfg.KeepTemp {
		t.Error("KeepTemp not applied")
	}
	if cfg.Downloader.BinaryPath != "/opt/bin/yt-dlp" {
		t.Errorf("Downloader.BinaryPath = %q", cfg.Downloader.BinaryPath)
	}
	if cfg.FFmpeg.Quality != 5 {
		t.Errorf("FFmpeg.Quality = %d, want 5", cfg.FFmpeg.Quality)
	}

	// fields absent from the file keep their defaults
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want default", cfg.OutputDir)
	}
	if cfg.Downloader.Format != "bv*+ba/best" {
		t.Errorf("Downloader.Format = %q, want default", cfg.Downloader.Format)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.yaml")
	if err := os.WriteFile(path, []byte("temp_dir: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestContextRoundTrip(t *testing.T) {
	cfg := &Config{TempDir: "x"}
	ctx := WithConfig(context.Background(), cfg)

	if got := FromContext(ctx); got != cfg {
		t.Error("FromContext did not return the stored config")
	}

	// missing config falls back to defaults
	if got := FromContext(context.Background()); got.TempDir != "tmp" {
		t.Errorf("fallback TempDir = %q, want tmp", got.TempDir)
	}
}
