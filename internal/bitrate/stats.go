package bitrate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

const DefaultChunkSizeSeconds = 1.0

// ErrNoStats is returned when output is requested before ComputeStatistics
// has run. This is a usage error, not a data-quality condition.
var ErrNoStats = errors.New("no bitrate stats available")

// Config holds the analysis parameters. It is validated by New before any
// computation starts.
type Config struct {
	InputFile        string
	StreamType       StreamType
	Aggregation      Aggregation
	ChunkSizeSeconds float64
}

func (c Config) validate() error {
	switch c.StreamType {
	case StreamAudio, StreamVideo:
	default:
		return fmt.Errorf("stream type must be audio/video, got %q", c.StreamType)
	}
	switch c.Aggregation {
	case AggregationTime, AggregationGOP:
	default:
		return fmt.Errorf("aggregation must be time/gop, got %q", c.Aggregation)
	}
	if c.Aggregation == AggregationGOP && c.StreamType == StreamAudio {
		return errors.New("GOP aggregation for audio does not make sense")
	}
	if c.ChunkSizeSeconds < 0 {
		return fmt.Errorf("chunk size must be greater than 0, got %v", c.ChunkSizeSeconds)
	}
	return nil
}

// Summary is the aggregated result for one stream. All float fields are
// full precision; rounding to three digits happens at render time.
type Summary struct {
	InputFile            string
	StreamType           StreamType
	AvgFPS               float64
	FrameCount           int
	AvgBitrate           float64
	AvgBitrateOverChunks float64
	MaxBitrate           float64
	MinBitrate           float64
	MaxBitrateFactor     float64
	BitratePerChunk      []float64
	Aggregation          Aggregation
	ChunkSize            float64
	Duration             float64
}

// Stats computes bitrate statistics for one stream of a media file. The
// packet source is injected so the engine stays independent of ffprobe.
type Stats struct {
	cfg    Config
	source PacketSource
	log    zerolog.Logger

	summary *Summary
}

func New(cfg Config, source PacketSource, log zerolog.Logger) (*Stats, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ChunkSizeSeconds == 0 {
		cfg.ChunkSizeSeconds = DefaultChunkSizeSeconds
	}
	return &Stats{cfg: cfg, source: source, log: log}, nil
}

// ComputeStatistics runs the pipeline once: probe, duration repair, chunking,
// per-chunk bitrate, aggregation. Repeat calls return the cached summary.
func (s *Stats) ComputeStatistics(ctx context.Context) (*Summary, error) {
	if s.summary != nil {
		return s.summary, nil
	}

	s.log.Debug().Str("input", s.cfg.InputFile).Msg("calculating frame sizes")

	records, err := s.source.Packets(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", s.cfg.InputFile, err)
	}

	repairDurations(records, s.log)

	duration := totalDuration(records)
	if duration == 0 && len(records) > 0 {
		s.log.Warn().Msg("no duration information derivable from the stream")
	}

	s.log.Debug().Msg("collecting chunks for bitrate calculation")

	ch := &chunker{
		mode:      s.cfg.Aggregation,
		chunkSize: s.cfg.ChunkSizeSeconds,
		records:   records,
	}
	chunks := ch.Chunks()
	series := make([]float64, 0, len(chunks))
	for _, chunk := range chunks {
		series = append(series, chunkBitrate(chunk))
	}

	var totalSize int64
	for _, rec := range records {
		totalSize += rec.Size
	}

	avgBitrate := safeRate(float64(totalSize)*8/1000, duration)
	minBitrate, maxBitrate, meanBitrate := seriesStats(series)

	s.summary = &Summary{
		InputFile:            s.cfg.InputFile,
		StreamType:           s.cfg.StreamType,
		AvgFPS:               safeRate(float64(len(records)), duration),
		FrameCount:           len(records),
		AvgBitrate:           avgBitrate,
		AvgBitrateOverChunks: meanBitrate,
		MaxBitrate:           maxBitrate,
		MinBitrate:           minBitrate,
		MaxBitrateFactor:     maxBitrate / avgBitrate,
		BitratePerChunk:      series,
		Aggregation:          s.cfg.Aggregation,
		ChunkSize:            s.cfg.ChunkSizeSeconds,
		Duration:             duration,
	}
	return s.summary, nil
}

// Summary returns the cached summary, or ErrNoStats if ComputeStatistics has
// not run yet.
func (s *Stats) Summary() (*Summary, error) {
	if s.summary == nil {
		return nil, ErrNoStats
	}
	return s.summary, nil
}

// CSV renders the computed summary as one row per chunk.
func (s *Stats) CSV() (string, error) {
	if s.summary == nil {
		return "", ErrNoStats
	}
	return RenderCSV(s.summary), nil
}

// JSON renders the computed summary as a flat document.
func (s *Stats) JSON() (string, error) {
	if s.summary == nil {
		return "", ErrNoStats
	}
	return RenderJSON(s.summary)
}

// chunkBitrate computes kbit/s across a chunk using the elapsed span between
// the first and last packet's PTS, not the duration sum. Chunks with fewer
// than two packets have no span and yield NaN.
func chunkBitrate(chunk []PacketRecord) float64 {
	if len(chunk) < 2 {
		return math.NaN()
	}
	span := chunk[len(chunk)-1].PTS.Float() - chunk[0].PTS.Float()
	var size int64
	for _, rec := range chunk {
		size += rec.Size
	}
	return (float64(size) * 8 / 1000) / span
}

// seriesStats returns min, max and mean of the chunk bitrate series.
// Undefined chunk bitrates propagate: one NaN makes all three NaN.
func seriesStats(series []float64) (min, max, mean float64) {
	if len(series) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	min, max = series[0], series[0]
	sum := 0.0
	for _, v := range series {
		if math.IsNaN(v) {
			return math.NaN(), math.NaN(), math.NaN()
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(series))
}

// totalDuration sums the known per-packet durations; unset ones are excluded.
func totalDuration(records []PacketRecord) float64 {
	var sum float64
	for _, rec := range records {
		if v, ok := rec.Duration.Value(); ok {
			sum += v
		}
	}
	return sum
}

func safeRate(count, duration float64) float64 {
	if duration == 0 {
		return math.NaN()
	}
	return count / duration
}
