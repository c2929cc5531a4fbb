package buffer

import (
	"errors"
	"fmt"
)

// Stage selects which processing stage a sequence records.
type Stage int

const (
	// Raw holds the generator output.
	Raw Stage = iota
	// Noisy holds the raw sample plus injected noise.
	Noisy
	// Filtered holds the smoothed noisy sample.
	Filtered

	// StageCount is the number of stages.
	StageCount
)

// Stages lists every stage in storage order.
var Stages = [...]Stage{Raw, Noisy, Filtered}

var (
	// ErrChannel reports a channel index outside the ring.
	ErrChannel = errors.New("buffer: channel out of range")
	// ErrStage reports an unknown stage.
	ErrStage = errors.New("buffer: stage out of range")
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case Raw:
		return "raw"
	case Noisy:
		return "noisy"
	case Filtered:
		return "filtered"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ParseStage maps a stage name back to its Stage.
func ParseStage(name string) (Stage, error) {
	for _, s := range Stages {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrStage, name)
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	return s >= 0 && s < StageCount
}

// Ring stores channels × stages circular sequences of equal capacity.
//
// Writes land at the shared cursor and overwrite the oldest sample once the
// ring is full. The cursor only moves through [Ring.Advance]. Ring is not
// safe for concurrent use.
type Ring struct {
	channels int
	capacity int
	cursor   int
	data     [StageCount][][]float64
}

// NewRing allocates a zero-filled ring.
func NewRing(channels, capacity int) (*Ring, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("ring channels must be > 0: %d", channels)
	}
	if capacity <= 1 {
		return nil, fmt.Errorf("ring capacity must be > 1: %d", capacity)
	}

	r := &Ring{channels: channels, capacity: capacity}
	for s := range r.data {
		rows := make([][]float64, channels)
		backing := make([]float64, channels*capacity)
		for ch := range rows {
			rows[ch] = backing[ch*capacity : (ch+1)*capacity : (ch+1)*capacity]
		}
		r.data[s] = rows
	}
	return r, nil
}

// Channels returns the number of channels.
func (r *Ring) Channels() int { return r.channels }

// Capacity returns the sequence length N.
func (r *Ring) Capacity() int { return r.capacity }

// Cursor returns the slot the next write goes to.
func (r *Ring) Cursor() int { return r.cursor }

func (r *Ring) check(ch int, st Stage) error {
	if ch < 0 || ch >= r.channels {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrChannel, ch, r.channels)
	}
	if !st.Valid() {
		return fmt.Errorf("%w: %d", ErrStage, int(st))
	}
	return nil
}

// Write stores v at the cursor for the given channel and stage.
func (r *Ring) Write(ch int, st Stage, v float64) error {
	if err := r.check(ch, st); err != nil {
		return err
	}
	r.set(ch, st, v)
	return nil
}

func (r *Ring) set(ch int, st Stage, v float64) {
	r.data[st][ch][r.cursor] = v
}

// Push writes one frame at the cursor and advances it. frame[st][ch] is
// the sample for channel ch at stage st. Channels missing from a short row
// are written as zero; entries past Channels are ignored.
func (r *Ring) Push(frame [StageCount][]float64) {
	for st, row := range frame {
		for ch := range r.channels {
			v := 0.0
			if ch < len(row) {
				v = row[ch]
			}
			r.set(ch, Stage(st), v)
		}
	}
	r.Advance()
}

// Advance moves the shared cursor one slot forward, wrapping modulo N.
func (r *Ring) Advance() {
	r.cursor++
	if r.cursor >= r.capacity {
		r.cursor = 0
	}
}

// Window copies the full sequence into dst oldest-first and returns it.
// Index 0 is the sample one buffer length behind the cursor and index N-1
// the most recent write. dst is reallocated when its capacity is short.
func (r *Ring) Window(dst []float64, ch int, st Stage) ([]float64, error) {
	if err := r.check(ch, st); err != nil {
		return nil, err
	}
	if cap(dst) < r.capacity {
		dst = make([]float64, r.capacity)
	}
	dst = dst[:r.capacity]

	row := r.data[st][ch]
	n := copy(dst, row[r.cursor:])
	copy(dst[n:], row[:r.cursor])
	return dst, nil
}

// Latest returns the sample written back ticks before the most recent one;
// back = 0 is the most recent sample. back is reduced modulo N.
func (r *Ring) Latest(ch int, st Stage, back int) (float64, error) {
	if err := r.check(ch, st); err != nil {
		return 0, err
	}
	if back < 0 {
		back = -back
	}
	back %= r.capacity

	idx := r.cursor - 1 - back
	for idx < 0 {
		idx += r.capacity
	}
	return r.data[st][ch][idx], nil
}

// Reset zeroes every sequence and rewinds the cursor.
func (r *Ring) Reset() {
	for s := range r.data {
		for _, row := range r.data[s] {
			clear(row)
		}
	}
	r.cursor = 0
}
