package bitratestats

import (
	"github.com/rs/zerolog"

	"github.com/autobrr/go-bitrate-stats/internal/bitrate"
)

// Types
type StreamType = bitrate.StreamType
type Aggregation = bitrate.Aggregation
type FrameType = bitrate.FrameType
type Seconds = bitrate.Seconds
type PacketRecord = bitrate.PacketRecord
type PacketSource = bitrate.PacketSource
type FFprobeSource = bitrate.FFprobeSource
type Config = bitrate.Config
type Stats = bitrate.Stats
type Summary = bitrate.Summary

// Constants
const (
	StreamAudio = bitrate.StreamAudio
	StreamVideo = bitrate.StreamVideo

	AggregationTime = bitrate.AggregationTime
	AggregationGOP  = bitrate.AggregationGOP

	FrameKey    = bitrate.FrameKey
	FrameNonKey = bitrate.FrameNonKey

	DefaultChunkSizeSeconds = bitrate.DefaultChunkSizeSeconds
)

// Errors
var ErrNoStats = bitrate.ErrNoStats

// Functions
func New(cfg Config, source PacketSource, log zerolog.Logger) (*Stats, error) {
	return bitrate.New(cfg, source, log)
}

func SecondsOf(v float64) Seconds {
	return bitrate.SecondsOf(v)
}

func ParsePackets(data []byte) ([]PacketRecord, error) {
	return bitrate.ParsePackets(data)
}

// Rendering
func RenderCSV(summary *Summary) string {
	return bitrate.RenderCSV(summary)
}

func RenderJSON(summary *Summary) (string, error) {
	return bitrate.RenderJSON(summary)
}

func FormatVersion(version string) string {
	return bitrate.FormatVersion(version)
}

func SetAppVersion(version string) {
	bitrate.SetAppVersion(version)
}
