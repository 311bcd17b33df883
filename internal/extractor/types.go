package extractor

import (
	"context"

	"github.com/minhhlki/frame/internal/ffmpeg"
)

// Downloader fetches a bounded section of a remote video into a local file.
type Downloader interface {
	DownloadSection(ctx context.Context, url string, start, end float64, dest string) error
}

// FrameGrabber pulls exactly one still frame from a local clip.
type FrameGrabber interface {
	ExtractFrame(ctx context.Context, clipPath string, offset float64, dest string) error
}

// ClipProber reports metadata about a downloaded clip.
type ClipProber interface {
	Probe(ctx context.Context, path string) (*ffmpeg.ClipInfo, error)
}

// Options configures an extraction run
type Options struct {
	TempDir     string
	OutputDir   string
	Pad         float64
	KeepTemp    bool
	Container   string
	ImageFormat string
}

// Job holds everything derived from one raw timestamp string
type Job struct {
	Raw        string
	Seconds    float64
	Start      float64
	End        float64
	ClipPath   string
	Screenshot string
}

// Summary reports the outcome of a run. Succeeded counts both freshly
// produced and already-existing screenshots.
type Summary struct {
	Requested   int
	Succeeded   int
	Screenshots []string
}
