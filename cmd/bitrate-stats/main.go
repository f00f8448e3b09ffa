package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/autobrr/go-bitrate-stats/internal/bitrate"
	"github.com/autobrr/go-bitrate-stats/internal/cli"
)

var version = "dev"

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:           "bitrate-stats [options] <file>",
	Short:         "Calculate bitrate statistics per time chunk or GOP using ffprobe.",
	Long:          "Calculate the bitrate of an audio or video stream over aggregation windows (fixed time chunks or GOPs) using ffprobe, and report the result as CSV or JSON.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.InputFile = args[0]
		if code := cli.Run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update bitrate-stats",
	Long:  "Update bitrate-stats to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print go-bitrate-stats version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	resolvedVersion := resolveVersion()
	cli.SetVersion(resolvedVersion)
	bitrate.SetAppVersion(resolvedVersion)
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.Flags().StringVarP(&opts.StreamType, "stream-type", "s", "video", "Stream type to analyze (audio, video)")
	rootCmd.Flags().StringVarP(&opts.Aggregation, "aggregation", "a", "time", "Window for aggregating statistics, either time-based (per-second) or per GOP")
	rootCmd.Flags().Float64VarP(&opts.ChunkSize, "chunk-size", "c", 1, "Custom aggregation window size in seconds")
	rootCmd.Flags().StringVarP(&opts.OutputFormat, "output-format", "o", "json", "Output format (json, csv)")
	rootCmd.Flags().StringVar(&opts.FFprobePath, "ffprobe-path", "", "Path to the ffprobe executable (default: look up on PATH)")
	rootCmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Only print the ffprobe command that would be run")
	rootCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only log errors")
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug("autobrr/go-bitrate-stats"))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", "autobrr/go-bitrate-stats", version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: %s\n", bitrate.FormatVersion(version))
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", bitrate.FormatVersion(latest.Version()))
	return nil
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return normalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
