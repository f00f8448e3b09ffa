package bitrate

import (
	"bytes"
	"strconv"
)

var csvColumns = []string{
	"input_file",
	"chunk_index",
	"stream_type",
	"avg_fps",
	"num_frames",
	"avg_bitrate",
	"avg_bitrate_over_chunks",
	"max_bitrate",
	"min_bitrate",
	"max_bitrate_factor",
	"bitrate_per_chunk",
	"aggregation",
	"chunk_size",
	"duration",
}

// RenderCSV renders one row per chunk, replicating the scalar summary fields
// across rows. chunk_index is synthetic and 0-based; input_file leads.
func RenderCSV(summary *Summary) string {
	var buf bytes.Buffer
	writeCSVRow(&buf, csvColumns)
	for i, chunk := range summary.BitratePerChunk {
		writeCSVRow(&buf, []string{
			summary.InputFile,
			strconv.Itoa(i),
			string(summary.StreamType),
			formatNumber(summary.AvgFPS),
			strconv.Itoa(summary.FrameCount),
			formatNumber(summary.AvgBitrate),
			formatNumber(summary.AvgBitrateOverChunks),
			formatNumber(summary.MaxBitrate),
			formatNumber(summary.MinBitrate),
			formatNumber(summary.MaxBitrateFactor),
			formatNumber(chunk),
			string(summary.Aggregation),
			formatNumber(summary.ChunkSize),
			formatNumber(summary.Duration),
		})
	}
	return buf.String()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(field)
	}
	buf.WriteString("\n")
}
