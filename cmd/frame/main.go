package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/minhhlki/frame/internal/config"
	"github.com/minhhlki/frame/internal/extractor"
	"github.com/minhhlki/frame/internal/ffmpeg"
	"github.com/minhhlki/frame/internal/logging"
	"github.com/minhhlki/frame/internal/ytdlp"
)

var (
	cfgFile string
	verbose bool

	flagPad        float64
	flagKeepTemp   bool
	flagURL        string
	flagTimestamps string
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frame",
	Short: "frame - YouTube frame extraction tool",
	Long:  "Extracts still images from a YouTube video at given timestamps by downloading short padded clips and grabbing one frame from each.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging
		logging.Init(verbose)

		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Store config in context
		ctx := config.WithConfig(cmd.Context(), cfg)
		cmd.SetContext(ctx)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./frame.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	extractCmd.Flags().Float64Var(&flagPad, "pad", 3.0, "padding around each timestamp (seconds)")
	extractCmd.Flags().BoolVar(&flagKeepTemp, "keep-temp", false, "keep temporary clip files")
	extractCmd.Flags().StringVar(&flagURL, "url", "", "YouTube URL (prompted for when omitted)")
	extractCmd.Flags().StringVar(&flagTimestamps, "timestamps", "", "comma-separated timestamps (prompted for when omitted)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Download padded clips and extract one frame per timestamp",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		if cmd.Flags().Changed("pad") {
			cfg.Pad = flagPad
		}
		if cmd.Flags().Changed("keep-temp") {
			cfg.KeepTemp = flagKeepTemp
		}

		logger := log.Logger.With().Str("run_id", uuid.NewString()).Logger()

		// Both tools must be present before any input is collected.
		downloader, grabber, err := buildTools(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		// One reader for all prompts: a fresh bufio.Reader per prompt would
		// buffer ahead and drop input meant for the next one.
		stdin := bufio.NewReader(cmd.InOrStdin())

		url := strings.TrimSpace(flagURL)
		if url == "" {
			url, err = prompt(stdin, cmd.OutOrStdout(), "YouTube URL: ")
			if err != nil {
				return err
			}
		}
		if url == "" {
			return fmt.Errorf("URL must not be empty")
		}

		rawTimestamps := flagTimestamps
		if strings.TrimSpace(rawTimestamps) == "" {
			rawTimestamps, err = prompt(stdin, cmd.OutOrStdout(),
				"Timestamps (MM:SS or HH:MM:SS, comma-separated): ")
			if err != nil {
				return err
			}
		}

		timestamps := splitTimestamps(rawTimestamps)
		if len(timestamps) == 0 {
			return fmt.Errorf("at least one timestamp is required")
		}

		logger.Info().
			Int("timestamps", len(timestamps)).
			Float64("pad", cfg.Pad).
			Bool("keep_temp", cfg.KeepTemp).
			Msg("starting extraction run")

		ext := extractor.New(logger, extractor.Options{
			TempDir:     cfg.TempDir,
			OutputDir:   cfg.OutputDir,
			Pad:         cfg.Pad,
			KeepTemp:    cfg.KeepTemp,
			Container:   cfg.Downloader.Container,
			ImageFormat: cfg.FFmpeg.ImageFormat,
		}, downloader, grabber, grabber)

		summary, err := ext.Run(cmd.Context(), url, timestamps)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nDone: %d/%d frames extracted\n", summary.Succeeded, summary.Requested)
		for _, path := range summary.Screenshots {
			fmt.Fprintf(out, "  %s\n", path)
		}

		// Partial failure is still a successful run.
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that yt-dlp and ffmpeg are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		out := cmd.OutOrStdout()

		var missing int
		if _, err := probeDownloader(cmd.Context(), cfg); err != nil {
			missing++
			fmt.Fprintf(out, "yt-dlp: %v\n", err)
		} else {
			fmt.Fprintln(out, "yt-dlp: ok")
		}
		if _, err := probeGrabber(cmd.Context(), cfg); err != nil {
			missing++
			fmt.Fprintf(out, "ffmpeg: %v\n", err)
		} else {
			fmt.Fprintln(out, "ffmpeg: ok")
		}

		if missing > 0 {
			return fmt.Errorf("%d dependencies missing", missing)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())

		dump, err := cfg.Dump()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), dump)
		return nil
	},
}

// buildTools resolves and probes both external binaries.
func buildTools(ctx context.Context, cfg *config.Config) (*ytdlp.Client, *ffmpeg.Executor, error) {
	downloader, err := probeDownloader(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	grabber, err := probeGrabber(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return downloader, grabber, nil
}

func probeDownloader(ctx context.Context, cfg *config.Config) (*ytdlp.Client, error) {
	downloader, err := ytdlp.New(log.Logger, cfg.Downloader.BinaryPath, cfg.Downloader.Format, cfg.Downloader.Container)
	if err != nil {
		return nil, err
	}
	if err := downloader.Version(ctx); err != nil {
		return nil, err
	}
	return downloader, nil
}

func probeGrabber(ctx context.Context, cfg *config.Config) (*ffmpeg.Executor, error) {
	grabber, err := ffmpeg.New(log.Logger, cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath, cfg.FFmpeg.Quality)
	if err != nil {
		return nil, err
	}
	if err := grabber.Version(ctx); err != nil {
		return nil, err
	}
	return grabber, nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// splitTimestamps splits a comma-separated list, trimming whitespace and
// dropping empty entries. Duplicates are handled later by the extractor.
func splitTimestamps(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
