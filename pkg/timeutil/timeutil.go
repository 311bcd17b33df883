package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a timestamp string in MM:SS or HH:MM:SS form to seconds.
// Seconds may be fractional ("02:30.5"); hours and minutes must be whole.
func Parse(text string) (float64, error) {
	text = strings.TrimSpace(text)
	parts := strings.Split(text, ":")

	switch len(parts) {
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", text)
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", text)
		}
		return float64(minutes)*60 + seconds, nil

	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", text)
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", text)
		}
		seconds, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", text)
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds, nil

	default:
		return 0, fmt.Errorf("invalid timestamp format: %s", text)
	}
}

// Format renders seconds as HH:MM:SS.mmm when hours are present, else
// MM:SS.mmm. This is the form yt-dlp expects in section selectors.
func Format(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(seconds/60) % 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%06.3f", minutes, secs)
}

// Sanitize makes a raw timestamp string safe for use in a filename.
// It works on the input spelling, not the parsed value, so "02:30" and
// "2:30" keep distinct names.
func Sanitize(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), ":", "-")
}

// Window computes the padded [start, end] download window around a
// timestamp. Start is clamped at zero; end is not clamped against the
// source duration, the downloader handles overruns.
func Window(timestamp, pad float64) (start, end float64) {
	start = timestamp - pad
	if start < 0 {
		start = 0
	}
	return start, timestamp + pad
}

// Dedupe removes exact duplicate strings preserving first-occurrence order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
