package bitrate

import "sync"

// chunker partitions the duration-repaired packet sequence into chunks per
// the configured aggregation. The partition is computed once and cached.
type chunker struct {
	mode      Aggregation
	chunkSize float64
	records   []PacketRecord

	once   sync.Once
	chunks [][]PacketRecord
}

func (c *chunker) Chunks() [][]PacketRecord {
	c.once.Do(func() {
		if c.mode == AggregationGOP {
			c.chunks = c.collectGOPs()
		} else {
			c.chunks = c.collectWindows()
		}
	})
	return c.chunks
}

// collectGOPs opens a chunk at every keyframe and accumulates the dependent
// frames that follow it. The open chunk is always flushed at the end, even
// when it holds a single keyframe.
func (c *chunker) collectGOPs() [][]PacketRecord {
	var chunks [][]PacketRecord
	var current []PacketRecord
	for _, rec := range c.records {
		if rec.FrameType != FrameKey {
			current = append(current, rec)
			continue
		}
		if len(current) > 0 {
			chunks = append(chunks, current)
		}
		current = []PacketRecord{rec}
	}
	return append(chunks, current)
}

// collectWindows accumulates packets until their summed duration reaches the
// window size. The packet that crosses the boundary starts the next chunk
// rather than closing out the current one. An unset duration poisons the
// running sum, which degrades to one chunk per packet from that point on.
func (c *chunker) collectWindows() [][]PacketRecord {
	var chunks [][]PacketRecord
	var current []PacketRecord
	elapsed := 0.0
	for _, rec := range c.records {
		if elapsed < c.chunkSize {
			current = append(current, rec)
			elapsed += rec.Duration.Float()
			continue
		}
		if len(current) > 0 {
			chunks = append(chunks, current)
		}
		current = []PacketRecord{rec}
		elapsed = rec.Duration.Float()
	}
	return append(chunks, current)
}
