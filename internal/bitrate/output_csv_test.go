package bitrate

import (
	"math"
	"strings"
	"testing"
)

func TestRenderCSVRowReplication(t *testing.T) {
	summary := &Summary{
		InputFile:            "test.mp4",
		StreamType:           StreamVideo,
		AvgFPS:               25,
		FrameCount:           250,
		AvgBitrate:           1000,
		AvgBitrateOverChunks: 900.1234,
		MaxBitrate:           1100,
		MinBitrate:           700.5,
		MaxBitrateFactor:     1.1,
		BitratePerChunk:      []float64{800, 1000.25},
		Aggregation:          AggregationTime,
		ChunkSize:            1,
		Duration:             10,
	}

	output := RenderCSV(summary)
	expected := "input_file,chunk_index,stream_type,avg_fps,num_frames,avg_bitrate,avg_bitrate_over_chunks,max_bitrate,min_bitrate,max_bitrate_factor,bitrate_per_chunk,aggregation,chunk_size,duration\n" +
		"test.mp4,0,video,25,250,1000,900.123,1100,700.5,1.1,800,time,1,10\n" +
		"test.mp4,1,video,25,250,1000,900.123,1100,700.5,1.1,1000.25,time,1,10\n"
	if output != expected {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestRenderCSVNaN(t *testing.T) {
	nan := math.NaN()
	summary := &Summary{
		InputFile:            "test.mp4",
		StreamType:           StreamVideo,
		AvgFPS:               25,
		FrameCount:           1,
		AvgBitrate:           1000,
		AvgBitrateOverChunks: nan,
		MaxBitrate:           nan,
		MinBitrate:           nan,
		MaxBitrateFactor:     nan,
		BitratePerChunk:      []float64{nan},
		Aggregation:          AggregationGOP,
		ChunkSize:            1,
		Duration:             10,
	}

	output := RenderCSV(summary)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count mismatch: got %d want 2", len(lines))
	}
	if got, want := lines[1], "test.mp4,0,video,25,1,1000,NaN,NaN,NaN,NaN,NaN,gop,1,10"; got != want {
		t.Fatalf("NaN row mismatch:\ngot  %s\nwant %s", got, want)
	}
}

func TestRenderCSVNoChunks(t *testing.T) {
	summary := &Summary{InputFile: "test.mp4", StreamType: StreamAudio, Aggregation: AggregationTime}

	output := RenderCSV(summary)
	if got := strings.Count(output, "\n"); got != 1 {
		t.Fatalf("expected header only, got %d lines", got)
	}
}
