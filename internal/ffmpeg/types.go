package ffmpeg

// ClipInfo contains metadata about a downloaded clip
type ClipInfo struct {
	FilePath   string
	Duration   float64
	Width      int
	Height     int
	VideoCodec string
	HasAudio   bool
}

// DefaultQuality is the ffmpeg -q:v value used when none is configured.
// 2 keeps near-lossless stills without oversized files.
const DefaultQuality = 2
