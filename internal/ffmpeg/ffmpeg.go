package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/minhhlki/frame/pkg/fsutil"
)

// Executor handles all ffmpeg operations
type Executor struct {
	logger      zerolog.Logger
	ffmpegPath  string
	ffprobePath string
	quality     int
}

// New creates a new ffmpeg executor. Both binaries must be resolvable,
// otherwise construction fails.
func New(logger zerolog.Logger, ffmpegBin, ffprobeBin string, quality int) (*Executor, error) {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	if ffprobeBin == "" {
		ffprobeBin = "ffprobe"
	}

	ffmpegPath, err := exec.LookPath(ffmpegBin)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	ffprobePath, err := exec.LookPath(ffprobeBin)
	if err != nil {
		return nil, fmt.Errorf("ffprobe not found in PATH: %w", err)
	}

	return &Executor{
		logger:      logger.With().Str("component", "ffmpeg").Logger(),
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		quality:     quality,
	}, nil
}

// Version probes ffmpeg availability with a -version invocation.
func (e *Executor) Version(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, e.ffmpegPath, "-version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg version probe failed: %w", err)
	}
	return nil
}

// ExtractFrame seeks to offset seconds inside the clip and writes exactly
// one still image to dest, overwriting any existing file.
func (e *Executor) ExtractFrame(ctx context.Context, clipPath string, offset float64, dest string) error {
	quality := e.quality
	if quality == 0 {
		quality = DefaultQuality
	}

	args := []string{
		"-ss", strconv.FormatFloat(offset, 'f', -1, 64),
		"-i", clipPath,
		"-frames:v", "1",
		"-q:v", strconv.Itoa(quality),
		"-y",
		dest,
	}

	e.logger.Debug().
		Str("cmd", "ffmpeg").
		Strs("args", args).
		Msg("executing ffmpeg")

	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("frame extraction failed: %w: %s", err, string(output))
	}

	if !fsutil.FileExists(dest) {
		return fmt.Errorf("frame extraction produced no output: %s", dest)
	}

	e.logger.Debug().
		Str("clip", clipPath).
		Float64("offset", offset).
		Str("output", dest).
		Msg("frame extracted")
	return nil
}
