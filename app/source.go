package app

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"tftgauge/hal"
)

// Source yields one sample per step. ok is false when nothing is available
// yet.
type Source interface {
	Next() (v float64, ok bool)
}

// SineSource is a deterministic sine between min and max.
type SineSource struct {
	min, max float64
	period   int
	n        int
}

func NewSineSource(min, max float64, period int) *SineSource {
	if period <= 0 {
		period = 1
	}
	return &SineSource{min: min, max: max, period: period}
}

func (s *SineSource) Next() (float64, bool) {
	mid := (s.max + s.min) / 2
	amp := (s.max - s.min) / 2
	v := mid + amp*math.Sin(2*math.Pi*float64(s.n)/float64(s.period))
	s.n = (s.n + 1) % s.period
	return v, true
}

// LineSource reads newline-delimited decimal samples from a stream in the
// background. Next hands out each sample once; when several lines arrive
// between steps only the latest is kept. Lines may carry extra comma or
// whitespace separated fields; only the first is used.
type LineSource struct {
	l hal.Logger

	mu   sync.Mutex
	v    float64
	seen bool
	err  error

	done chan struct{}
}

func NewLineSource(r io.Reader, l hal.Logger) *LineSource {
	s := &LineSource{l: l, done: make(chan struct{})}
	go s.run(r)
	return s
}

func (s *LineSource) run(r io.Reader) {
	defer close(s.done)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		v, ok := parseSample(sc.Text())
		if !ok {
			if s.l != nil && strings.TrimSpace(sc.Text()) != "" {
				s.l.WriteLineString("app: skipping bad sample " + strconv.Quote(sc.Text()))
			}
			continue
		}
		s.mu.Lock()
		s.v = v
		s.seen = true
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.err = sc.Err()
	s.mu.Unlock()
	if s.err != nil && s.l != nil {
		s.l.WriteLineString("app: sample stream: " + s.err.Error())
	}
}

func parseSample(line string) (float64, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (s *LineSource) Next() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.seen
	s.seen = false
	return s.v, ok
}

// Done is closed when the stream ends.
func (s *LineSource) Done() <-chan struct{} { return s.done }

// Err returns the read error that ended the stream, if any.
func (s *LineSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
