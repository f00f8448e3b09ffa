package bitrate

import "math"

// pkt builds a record for tests; NaN marks an unset PTS or duration.
func pkt(idx int, ft FrameType, pts, dur float64, size int64) PacketRecord {
	rec := PacketRecord{Index: idx, FrameType: ft, Size: size}
	if !math.IsNaN(pts) {
		rec.PTS = SecondsOf(pts)
	}
	if !math.IsNaN(dur) {
		rec.Duration = SecondsOf(dur)
	}
	return rec
}

func concatenated(chunks [][]PacketRecord) []PacketRecord {
	var all []PacketRecord
	for _, chunk := range chunks {
		all = append(all, chunk...)
	}
	return all
}
