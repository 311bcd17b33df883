package ytdlp

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/minhhlki/frame/pkg/fsutil"
	"github.com/minhhlki/frame/pkg/timeutil"
)

// Client wraps the yt-dlp binary for bounded section downloads.
type Client struct {
	logger    zerolog.Logger
	path      string
	format    string
	container string
}

// New resolves the yt-dlp binary and returns a client. Construction fails
// when the binary is not on the PATH.
func New(logger zerolog.Logger, binary, format, container string) (*Client, error) {
	if binary == "" {
		binary = "yt-dlp"
	}
	if format == "" {
		format = DefaultFormat
	}
	if container == "" {
		container = DefaultContainer
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp not found in PATH: %w", err)
	}

	return &Client{
		logger:    logger.With().Str("component", "ytdlp").Logger(),
		path:      path,
		format:    format,
		container: container,
	}, nil
}

// Version probes yt-dlp availability with a --version invocation.
func (c *Client) Version(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.path, "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("yt-dlp version probe failed: %w", err)
	}
	return nil
}

// DownloadSection fetches only the [start, end] window of the remote video,
// merged into a single container at dest. yt-dlp clamps windows that run
// past the end of the source.
func (c *Client) DownloadSection(ctx context.Context, url string, start, end float64, dest string) error {
	section := SectionSpec(start, end)
	args := c.downloadArgs(section, dest, url)

	c.logger.Debug().
		Str("cmd", "yt-dlp").
		Strs("args", args).
		Msg("executing yt-dlp")

	cmd := exec.CommandContext(ctx, c.path, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("section download failed: %w: %s", err, string(output))
	}

	if !fsutil.FileExists(dest) {
		return fmt.Errorf("section download produced no output: %s", dest)
	}

	c.logger.Debug().
		Str("section", section).
		Str("output", dest).
		Msg("section downloaded")
	return nil
}

func (c *Client) downloadArgs(section, dest, url string) []string {
	return []string{
		"--download-sections", section,
		"--force-keyframes-at-cuts",
		"-f", c.format,
		"--merge-output-format", c.container,
		"--no-playlist",
		"-o", dest,
		url,
	}
}

// SectionSpec builds the yt-dlp --download-sections selector for a window.
// The leading "*" selects by time range rather than chapter name.
func SectionSpec(start, end float64) string {
	return fmt.Sprintf("*%s-%s", timeutil.Format(start), timeutil.Format(end))
}
