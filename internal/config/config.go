package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// Working directories
	TempDir   string `yaml:"temp_dir"`
	OutputDir string `yaml:"output_dir"`

	// Extraction settings
	Pad      float64 `yaml:"pad"`
	KeepTemp bool    `yaml:"keep_temp"`

	// Downloader settings
	Downloader DownloaderConfig `yaml:"downloader"`

	// FFmpeg settings
	FFmpeg FFmpegConfig `yaml:"ffmpeg"`
}

type DownloaderConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Format     string `yaml:"format"`
	Container  string `yaml:"container"`
}

type FFmpegConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ProbePath   string `yaml:"probe_path"`
	ImageFormat string `yaml:"image_format"`
	Quality     int    `yaml:"quality"`
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders the effective configuration as yaml.
func (c *Config) Dump() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func defaultConfig() *Config {
	return &Config{
		TempDir:   "tmp",
		OutputDir: "output",
		Pad:       3.0,
		KeepTemp:  false,
		Downloader: DownloaderConfig{
			BinaryPath: "yt-dlp",
			Format:     "bv*+ba/best",
			Container:  "mp4",
		},
		FFmpeg: FFmpegConfig{
			BinaryPath:  "ffmpeg",
			ProbePath:   "ffprobe",
			ImageFormat: "png",
			Quality:     2,
		},
	}
}

func findConfigFile() string {
	candidates := []string{
		"./frame.yaml",
		"./frame.yml",
		filepath.Join(os.Getenv("HOME"), ".frame", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
