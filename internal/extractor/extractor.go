package extractor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/minhhlki/frame/pkg/fsutil"
	"github.com/minhhlki/frame/pkg/timeutil"
)

// Extractor turns timestamps into screenshots by downloading a padded clip
// around each one and grabbing a single frame from it.
type Extractor struct {
	logger     zerolog.Logger
	opts       Options
	downloader Downloader
	grabber    FrameGrabber
	prober     ClipProber
}

// New creates an extractor. prober may be nil; it is only used for debug
// logging of downloaded clips.
func New(logger zerolog.Logger, opts Options, downloader Downloader, grabber FrameGrabber, prober ClipProber) *Extractor {
	if opts.Container == "" {
		opts.Container = "mp4"
	}
	if opts.ImageFormat == "" {
		opts.ImageFormat = "png"
	}

	return &Extractor{
		logger:     logger.With().Str("component", "extractor").Logger(),
		opts:       opts,
		downloader: downloader,
		grabber:    grabber,
		prober:     prober,
	}
}

// job derives all per-timestamp paths and the download window from the raw
// timestamp string. Filenames come from the raw spelling, so "02:30" and
// "2:30" produce distinct artifacts.
func (e *Extractor) job(raw string) (*Job, error) {
	seconds, err := timeutil.Parse(raw)
	if err != nil {
		return nil, err
	}

	start, end := timeutil.Window(seconds, e.opts.Pad)
	name := timeutil.Sanitize(raw)

	return &Job{
		Raw:        raw,
		Seconds:    seconds,
		Start:      start,
		End:        end,
		ClipPath:   filepath.Join(e.opts.TempDir, fmt.Sprintf("clip_%s.%s", name, e.opts.Container)),
		Screenshot: filepath.Join(e.opts.OutputDir, fmt.Sprintf("screenshot_%s.%s", name, e.opts.ImageFormat)),
	}, nil
}

// Process runs the full pipeline for one timestamp and returns the path of
// the screenshot. An existing screenshot short-circuits the whole pipeline.
func (e *Extractor) Process(ctx context.Context, url, raw string) (string, error) {
	job, err := e.job(raw)
	if err != nil {
		return "", err
	}

	logger := e.logger.With().Str("timestamp", raw).Logger()

	if fsutil.FileExists(job.Screenshot) {
		logger.Info().Str("screenshot", job.Screenshot).Msg("screenshot exists, skipping")
		return absPath(job.Screenshot), nil
	}

	logger.Info().
		Str("section", timeutil.Format(job.Start)+" - "+timeutil.Format(job.End)).
		Msg("downloading section")

	if err := e.downloader.DownloadSection(ctx, url, job.Start, job.End, job.ClipPath); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	if e.prober != nil {
		if info, err := e.prober.Probe(ctx, job.ClipPath); err == nil {
			logger.Debug().
				Float64("duration", info.Duration).
				Int("width", info.Width).
				Int("height", info.Height).
				Str("codec", info.VideoCodec).
				Msg("clip downloaded")
		}
	}

	// The seek offset is relative to the clip, not the source video.
	offset := job.Seconds - job.Start

	logger.Info().Float64("offset", offset).Msg("extracting frame")

	extractErr := e.grabber.ExtractFrame(ctx, job.ClipPath, offset, job.Screenshot)

	if !e.opts.KeepTemp {
		if removed, err := fsutil.Remove(job.ClipPath); err != nil {
			logger.Warn().Err(err).Str("clip", job.ClipPath).Msg("failed to remove temp clip")
		} else if removed {
			logger.Debug().Str("clip", job.ClipPath).Msg("temp clip removed")
		}
	}

	if extractErr != nil {
		return "", fmt.Errorf("extract: %w", extractErr)
	}

	logger.Info().Str("screenshot", job.Screenshot).Msg("frame saved")
	return absPath(job.Screenshot), nil
}

// Run processes every timestamp in order, isolating failures per timestamp.
// Duplicate spellings collapse to the first occurrence.
func (e *Extractor) Run(ctx context.Context, url string, rawTimestamps []string) (*Summary, error) {
	timestamps := timeutil.Dedupe(rawTimestamps)

	if err := fsutil.EnsureDir(e.opts.TempDir); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	if err := fsutil.EnsureDir(e.opts.OutputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	summary := &Summary{Requested: len(timestamps)}

	for i, raw := range timestamps {
		e.logger.Info().
			Int("index", i+1).
			Int("total", len(timestamps)).
			Str("timestamp", raw).
			Msg("processing timestamp")

		path, err := e.Process(ctx, url, raw)
		if err != nil {
			e.logger.Error().Err(err).Str("timestamp", raw).Msg("timestamp failed")
			continue
		}

		summary.Succeeded++
		summary.Screenshots = append(summary.Screenshots, path)
	}

	e.logger.Info().
		Int("succeeded", summary.Succeeded).
		Int("requested", summary.Requested).
		Msg("run complete")

	return summary, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
