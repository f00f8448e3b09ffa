package bitrate

import "math"

// StreamType selects which stream of the input file is analyzed.
type StreamType string

const (
	StreamAudio StreamType = "audio"
	StreamVideo StreamType = "video"
)

// Aggregation selects how packets are grouped into chunks.
type Aggregation string

const (
	AggregationTime Aggregation = "time"
	AggregationGOP  Aggregation = "gop"
)

type FrameType string

const (
	FrameKey    FrameType = "I"
	FrameNonKey FrameType = "Non-I"
)

// keyFrameFlags is the ffprobe packet flags value marking a keyframe.
const keyFrameFlags = "K_"

func frameTypeFromFlags(flags string) FrameType {
	if flags == keyFrameFlags {
		return FrameKey
	}
	return FrameNonKey
}

// Seconds is an optional timing value in seconds. ffprobe omits pts_time and
// duration_time for some packets; those stay unset rather than carrying a
// sentinel in the float domain.
type Seconds struct {
	val float64
	ok  bool
}

func SecondsOf(v float64) Seconds {
	return Seconds{val: v, ok: true}
}

func (s Seconds) Value() (float64, bool) {
	return s.val, s.ok
}

func (s Seconds) Defined() bool {
	return s.ok
}

// Float returns the value, or NaN when unset, so missing timing data
// propagates through downstream arithmetic.
func (s Seconds) Float() float64 {
	if !s.ok {
		return math.NaN()
	}
	return s.val
}

// PacketRecord is one probed packet of the selected stream. Index is 1-based
// and reflects original packet order; the sequence is never re-sorted.
type PacketRecord struct {
	Index     int
	FrameType FrameType
	PTS       Seconds
	Duration  Seconds
	Size      int64
}
