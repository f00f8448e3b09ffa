package bitrate

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// jsonNumber rounds to three digits and spells undefined values as null.
type jsonNumber float64

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) {
		return []byte("null"), nil
	}
	return json.Marshal(round3(v))
}

type jsonSummary struct {
	InputFile            string       `json:"input_file"`
	StreamType           StreamType   `json:"stream_type"`
	AvgFPS               jsonNumber   `json:"avg_fps"`
	NumFrames            int          `json:"num_frames"`
	AvgBitrate           jsonNumber   `json:"avg_bitrate"`
	AvgBitrateOverChunks jsonNumber   `json:"avg_bitrate_over_chunks"`
	MaxBitrate           jsonNumber   `json:"max_bitrate"`
	MinBitrate           jsonNumber   `json:"min_bitrate"`
	MaxBitrateFactor     jsonNumber   `json:"max_bitrate_factor"`
	BitratePerChunk      []jsonNumber `json:"bitrate_per_chunk"`
	Aggregation          Aggregation  `json:"aggregation"`
	ChunkSize            jsonNumber   `json:"chunk_size"`
	Duration             jsonNumber   `json:"duration"`
}

// RenderJSON renders the summary as an indented flat document.
func RenderJSON(summary *Summary) (string, error) {
	perChunk := make([]jsonNumber, 0, len(summary.BitratePerChunk))
	for _, v := range summary.BitratePerChunk {
		perChunk = append(perChunk, jsonNumber(v))
	}
	payload := jsonSummary{
		InputFile:            summary.InputFile,
		StreamType:           summary.StreamType,
		AvgFPS:               jsonNumber(summary.AvgFPS),
		NumFrames:            summary.FrameCount,
		AvgBitrate:           jsonNumber(summary.AvgBitrate),
		AvgBitrateOverChunks: jsonNumber(summary.AvgBitrateOverChunks),
		MaxBitrate:           jsonNumber(summary.MaxBitrate),
		MinBitrate:           jsonNumber(summary.MinBitrate),
		MaxBitrateFactor:     jsonNumber(summary.MaxBitrateFactor),
		BitratePerChunk:      perChunk,
		Aggregation:          summary.Aggregation,
		ChunkSize:            jsonNumber(summary.ChunkSize),
		Duration:             jsonNumber(summary.Duration),
	}
	data, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}
	return string(data), nil
}
