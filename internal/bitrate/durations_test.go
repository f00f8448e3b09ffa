package bitrate

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestRepairDurationsNoOpWhenComplete(t *testing.T) {
	records := []PacketRecord{
		pkt(1, FrameKey, 0.0, 0.5, 1000),
		pkt(2, FrameNonKey, 1.0, 0.5, 1000),
		pkt(3, FrameNonKey, 2.0, 0.5, 1000),
	}

	repairDurations(records, zerolog.Nop())

	for i, rec := range records {
		if got, ok := rec.Duration.Value(); !ok || got != 0.5 {
			t.Fatalf("record %d duration changed: got %v ok %v", i, got, ok)
		}
	}
}

func TestRepairDurationsFromPTSDeltas(t *testing.T) {
	nan := math.NaN()
	records := []PacketRecord{
		pkt(1, FrameKey, 0.0, nan, 1000),
		pkt(2, FrameNonKey, 0.5, nan, 1000),
		pkt(3, FrameNonKey, 1.5, nan, 1000),
		pkt(4, FrameNonKey, 1.75, nan, 1000),
	}

	repairDurations(records, zerolog.Nop())

	want := []float64{0.5, 1.0, 0.25, 0.25}
	for i, rec := range records {
		got, ok := rec.Duration.Value()
		if !ok {
			t.Fatalf("record %d duration still unset", i)
		}
		if got != want[i] {
			t.Fatalf("record %d duration mismatch: got %v want %v", i, got, want[i])
		}
	}
}

func TestRepairDurationsLastRecordCarryForward(t *testing.T) {
	nan := math.NaN()
	records := []PacketRecord{
		pkt(1, FrameKey, 0.0, nan, 1000),
		pkt(2, FrameNonKey, 0.25, nan, 1000),
	}

	repairDurations(records, zerolog.Nop())

	if got, _ := records[1].Duration.Value(); got != 0.25 {
		t.Fatalf("carry-forward mismatch: got %v want 0.25", got)
	}
}

func TestRepairDurationsSkipsMissingPTS(t *testing.T) {
	nan := math.NaN()
	records := []PacketRecord{
		pkt(1, FrameKey, 0.0, nan, 1000),
		pkt(2, FrameNonKey, nan, nan, 1000),
		pkt(3, FrameNonKey, 1.0, nan, 1000),
	}

	repairDurations(records, zerolog.Nop())

	if records[0].Duration.Defined() {
		t.Fatalf("expected record 0 duration to stay unset, got %v", records[0].Duration.Float())
	}
	if records[1].Duration.Defined() {
		t.Fatalf("expected record 1 duration to stay unset, got %v", records[1].Duration.Float())
	}
}

func TestRepairDurationsNegativeDelta(t *testing.T) {
	nan := math.NaN()
	records := []PacketRecord{
		pkt(1, FrameKey, 1.0, nan, 1000),
		pkt(2, FrameNonKey, 0.5, nan, 1000),
	}

	repairDurations(records, zerolog.Nop())

	if got, _ := records[0].Duration.Value(); got != -0.5 {
		t.Fatalf("expected signed delta -0.5, got %v", got)
	}
}

func TestRepairDurationsAllPTSMissing(t *testing.T) {
	nan := math.NaN()
	records := []PacketRecord{
		pkt(1, FrameKey, nan, nan, 1000),
		pkt(2, FrameNonKey, nan, nan, 1000),
	}

	repairDurations(records, zerolog.Nop())

	for i, rec := range records {
		if rec.Duration.Defined() {
			t.Fatalf("record %d duration should stay unset", i)
		}
	}
}

func TestRepairDurationsSingleRecord(t *testing.T) {
	records := []PacketRecord{pkt(1, FrameKey, 0.0, math.NaN(), 1000)}

	repairDurations(records, zerolog.Nop())

	if records[0].Duration.Defined() {
		t.Fatalf("single record duration should stay unset")
	}
}
