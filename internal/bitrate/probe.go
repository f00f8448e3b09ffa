package bitrate

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/goccy/go-json"
)

// PacketSource produces the ordered packet sequence for one stream.
// Implementations must preserve the source packet order.
type PacketSource interface {
	Packets(ctx context.Context) ([]PacketRecord, error)
}

// probePacket mirrors one entry of ffprobe's -show_packets JSON output.
// Timing fields stay strings so an absent field is distinguishable from zero.
type probePacket struct {
	PtsTime      string    `json:"pts_time"`
	DtsTime      string    `json:"dts_time"`
	DurationTime string    `json:"duration_time"`
	Size         byteCount `json:"size"`
	Flags        string    `json:"flags"`
}

// byteCount tolerates ffprobe emitting size as either a JSON string or a
// bare number.
type byteCount int64

func (b *byteCount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid packet size %q: %w", s, err)
	}
	*b = byteCount(v)
	return nil
}

type probeOutput struct {
	Packets []probePacket `json:"packets"`
}

// FFprobeSource probes the first audio or video stream of a media file
// by running ffprobe.
type FFprobeSource struct {
	// FFprobePath overrides the executable looked up on PATH.
	FFprobePath string
	InputFile   string
	StreamType  StreamType
}

// Command returns the argv that Packets executes.
func (s FFprobeSource) Command() []string {
	ffprobe := s.FFprobePath
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	return []string{
		ffprobe,
		"-loglevel", "error",
		"-select_streams", s.selector(),
		"-show_packets",
		"-show_entries", "packet=pts_time,dts_time,duration_time,size,flags",
		"-of", "json",
		s.InputFile,
	}
}

func (s FFprobeSource) selector() string {
	if s.StreamType == StreamAudio {
		return "a:0"
	}
	return "v:0"
}

func (s FFprobeSource) Packets(ctx context.Context) ([]PacketRecord, error) {
	argv := s.Command()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("ffprobe: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	return ParsePackets(stdout.Bytes())
}

// ParsePackets converts ffprobe -show_packets JSON into packet records.
// When some packets carry an explicit duration_time, the first one found
// becomes the default for packets lacking it. When none do, durations stay
// unset and duration repair estimates them from PTS deltas.
func ParsePackets(data []byte) ([]PacketRecord, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode ffprobe output: %w", err)
	}

	var defaultDuration Seconds
	for _, p := range out.Packets {
		if p.DurationTime == "" {
			continue
		}
		v, err := strconv.ParseFloat(p.DurationTime, 64)
		if err != nil {
			return nil, fmt.Errorf("packet duration_time %q: %w", p.DurationTime, err)
		}
		defaultDuration = SecondsOf(v)
		break
	}

	records := make([]PacketRecord, 0, len(out.Packets))
	for i, p := range out.Packets {
		rec := PacketRecord{
			Index:     i + 1,
			FrameType: frameTypeFromFlags(p.Flags),
			Duration:  defaultDuration,
			Size:      int64(p.Size),
		}
		if p.PtsTime != "" {
			v, err := strconv.ParseFloat(p.PtsTime, 64)
			if err != nil {
				return nil, fmt.Errorf("packet %d pts_time %q: %w", rec.Index, p.PtsTime, err)
			}
			rec.PTS = SecondsOf(v)
		}
		if p.DurationTime != "" {
			v, err := strconv.ParseFloat(p.DurationTime, 64)
			if err != nil {
				return nil, fmt.Errorf("packet %d duration_time %q: %w", rec.Index, p.DurationTime, err)
			}
			rec.Duration = SecondsOf(v)
		}
		records = append(records, rec)
	}

	return records, nil
}
