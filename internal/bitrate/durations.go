package bitrate

import "github.com/rs/zerolog"

// repairDurations estimates missing per-packet durations from consecutive PTS
// deltas. A sequence whose records all carry a duration is left untouched.
// The last record receives the most recently computed delta; if no delta
// could be computed at all, durations stay unset.
func repairDurations(records []PacketRecord, log zerolog.Logger) {
	if allDurationsDefined(records) {
		return
	}

	var last Seconds
	for i := 0; i < len(records)-1; i++ {
		curr, currOK := records[i].PTS.Value()
		next, nextOK := records[i+1].PTS.Value()
		if !currOK || !nextOK {
			log.Warn().Int("packet", records[i].Index).Msg("PTS is missing, duration/bitrate may be invalid")
			continue
		}
		if next < curr {
			log.Warn().Int("packet", records[i].Index).Msg("non-monotonically increasing PTS, duration/bitrate may be invalid")
		}
		last = SecondsOf(next - curr)
		records[i].Duration = last
	}

	if last.Defined() {
		records[len(records)-1].Duration = last
	}
}

func allDurationsDefined(records []PacketRecord) bool {
	for _, rec := range records {
		if !rec.Duration.Defined() {
			return false
		}
	}
	return true
}
