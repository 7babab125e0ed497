package variant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/cpfvariant/combin"
	"github.com/katalvlaran/cpfvariant/cpf"
)

// Searcher runs variation searches and holds the state of the last one.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	opts Options

	state    State
	original cpf.Identifier
	entries  []Entry
	seen     map[string]struct{}
	checked  int
	level    int
	levels   []LevelStats
	err      error
}

// NewSearcher returns an Idle Searcher configured by opts.
func NewSearcher(opts ...Option) *Searcher {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Searcher{opts: o}
}

// Submit validates raw and, when it is a valid identifier, searches for
// the variations with the fewest changed digits.
//
// Raw input may carry "." and "-". After they are removed the input must
// be 11 digits (ErrWrongLength) that pass the Validator
// (ErrInvalidChecksum); on either failure the Searcher returns to Idle.
// Otherwise levels 1, 2, 3 are searched in turn until one of them records
// an entry, and the Searcher ends in Done.
func (s *Searcher) Submit(raw string) (Outcome, error) {
	if s.busy() {
		return Outcome{}, ErrBusy
	}

	// A panicking hook must not leave the Searcher busy.
	finished := false
	defer func() {
		if !finished {
			s.state = Idle
		}
	}()

	runID := uuid.New()
	start := time.Now()
	log := s.opts.Logger.With(slog.String("run_id", runID.String()))
	ctx, span := s.opts.Tracer.Start(s.opts.Ctx, "variant.Submit",
		trace.WithAttributes(attribute.String("run_id", runID.String())))
	defer span.End()

	s.clear()
	s.state = Validating
	id, err := s.validate(raw)
	if err != nil {
		s.err = err
		s.state = Idle
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("input rejected", slog.Any("error", err))
		if errors.Is(err, ErrWrongLength) {
			s.opts.Metrics.IncrementOutcome(OutcomeWrongLength)
		} else {
			s.opts.Metrics.IncrementOutcome(OutcomeInvalidChecksum)
		}

		finished = true

		return Outcome{ID: runID, State: Idle}, err
	}

	s.original = id
	s.state = Searching
	log.Debug("search started", slog.String("cpf", id.String()), slog.Int("max_level", s.opts.MaxLevel))

	found := 0
	for k := MinLevel; k <= s.opts.MaxLevel; k++ {
		st := s.searchLevel(ctx, log, k)
		s.levels = append(s.levels, st)
		if st.Found > 0 {
			found = k
			break
		}
	}

	s.state = Done
	finished = true
	out := s.outcome(runID, found, time.Since(start))
	span.SetAttributes(
		attribute.Int("checked", out.Checked),
		attribute.Int("entries", len(out.Entries)),
		attribute.Int("level", out.Level),
	)
	if out.Found() {
		s.opts.Metrics.IncrementOutcome(OutcomeFound)
	} else {
		s.opts.Metrics.IncrementOutcome(OutcomeEmpty)
	}
	s.opts.Metrics.ObserveDuration(out.Elapsed)
	log.Info(out.Summary(),
		slog.String("cpf", out.Original),
		slog.Int("entries", len(out.Entries)),
		slog.Int("checked", out.Checked),
		slog.Int("search_level", out.Level),
		slog.Duration("elapsed", out.Elapsed),
	)

	return out, nil
}

// Reset clears the last search and returns to Idle.
func (s *Searcher) Reset() error {
	if s.busy() {
		return ErrBusy
	}
	s.clear()
	s.state = Idle

	return nil
}

// State returns the current lifecycle state.
func (s *Searcher) State() State { return s.state }

// Entries returns a copy of the recorded entries.
func (s *Searcher) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Checked returns the number of candidates validated so far.
func (s *Searcher) Checked() int { return s.checked }

// Level returns the level being, or last, searched; 0 before any search.
func (s *Searcher) Level() int { return s.level }

// Err returns the validation error of the last Submit, if any.
func (s *Searcher) Err() error { return s.err }

func (s *Searcher) busy() bool {
	return s.state == Validating || s.state == Searching
}

func (s *Searcher) clear() {
	s.original = cpf.Identifier{}
	s.entries = nil
	s.seen = make(map[string]struct{})
	s.checked = 0
	s.level = 0
	s.levels = nil
	s.err = nil
}

// validate strips punctuation, parses and applies the Validator.
func (s *Searcher) validate(raw string) (cpf.Identifier, error) {
	id, err := cpf.Parse(cpf.Strip(raw))
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrWrongLength, err)
	}
	if !s.opts.Validator.Valid(id) {
		return id, fmt.Errorf("%w: %w: %s", ErrInvalidChecksum, cpf.ErrInvalidChecksum, id)
	}

	return id, nil
}

// searchLevel enumerates every candidate with exactly k positions changed
// and reports what the level contributed.
func (s *Searcher) searchLevel(ctx context.Context, log *slog.Logger, k int) LevelStats {
	_, span := s.opts.Tracer.Start(ctx, "variant.level", trace.WithAttributes(attribute.Int("level", k)))
	defer span.End()

	start := time.Now()
	s.level = k
	s.opts.OnLevel(k)
	log.Debug(ProgressMessage(k), slog.Int("search_level", k))

	st := LevelStats{Level: k}
	// k is bounded by WithMaxLevel, so Each cannot fail.
	_ = combin.Each(cpf.Length, k, func(positions []int) bool {
		st.PositionSets++
		EachCandidate(s.original, positions, func(c cpf.Identifier) bool {
			st.Checked++
			s.tick()
			if s.opts.Validator.Valid(c) && s.record(c) {
				st.Found++
			}
			return true
		})
		return true
	})
	st.Elapsed = time.Since(start)

	span.SetAttributes(
		attribute.Int("position_sets", st.PositionSets),
		attribute.Int("checked", st.Checked),
		attribute.Int("found", st.Found),
	)
	s.opts.Metrics.ObserveLevel(st)
	log.Debug("level finished",
		slog.Int("search_level", k),
		slog.Int("checked", st.Checked),
		slog.Int("found", st.Found),
	)

	return st
}

func (s *Searcher) tick() {
	s.checked++
	if s.opts.ProgressEvery > 0 && s.checked%s.opts.ProgressEvery == 0 {
		s.opts.OnProgress(s.checked)
	}
}

// record appends c unless an entry with the same display form exists.
func (s *Searcher) record(c cpf.Identifier) bool {
	f := c.String()
	if _, dup := s.seen[f]; dup {
		return false
	}
	s.seen[f] = struct{}{}
	e := Entry{Formatted: f, Differences: s.original.Differences(c)}
	s.entries = append(s.entries, e)
	s.opts.OnEntry(e)

	return true
}

func (s *Searcher) outcome(id uuid.UUID, level int, elapsed time.Duration) Outcome {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)

	return Outcome{
		ID:       id,
		Original: s.original.String(),
		Entries:  entries,
		Checked:  s.checked,
		Level:    level,
		Levels:   append([]LevelStats(nil), s.levels...),
		Elapsed:  elapsed,
		State:    s.state,
	}
}
