package ytdlp

// Default download settings
const (
	// DefaultFormat prefers best video plus best audio, falling back to
	// the best single stream when merging is not possible.
	DefaultFormat = "bv*+ba/best"

	// DefaultContainer is the merge target for downloaded sections.
	DefaultContainer = "mp4"
)
