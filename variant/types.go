package variant

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/cpfvariant/cpf"
)

// Search levels: the number of digit positions altered at once.
const (
	MinLevel = 1
	MaxLevel = 3
)

// State is the lifecycle of a Searcher.
type State int

const (
	// Idle is the initial state, and the state after a rejected input or Reset.
	Idle State = iota
	// Validating is held while the raw input is being checked.
	Validating
	// Searching is held while levels are being enumerated.
	Searching
	// Done is terminal until Reset.
	Done
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Searching:
		return "searching"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Validator decides whether a candidate is a well-formed identifier.
type Validator interface {
	Valid(id cpf.Identifier) bool
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(id cpf.Identifier) bool

// Valid calls f(id).
func (f ValidatorFunc) Valid(id cpf.Identifier) bool { return f(id) }

// ChecksumValidator applies the CPF check-digit rule.
type ChecksumValidator struct{}

// Valid reports id.Valid().
func (ChecksumValidator) Valid(id cpf.Identifier) bool { return id.Valid() }

// Entry is one valid variation: its display form and the number of digits
// it differs from the searched identifier by.
type Entry struct {
	Formatted   string
	Differences int
}

// LevelStats describes one completed level.
type LevelStats struct {
	Level        int
	PositionSets int
	Checked      int
	Found        int
	Elapsed      time.Duration
}

// Outcome is the snapshot returned by Submit.
type Outcome struct {
	// ID identifies the run in logs and spans.
	ID uuid.UUID
	// Original is the searched identifier in display form.
	Original string
	// Entries in enumeration order; never nil after a successful search.
	Entries []Entry
	// Checked counts every candidate passed to the Validator.
	Checked int
	// Level that produced Entries, or 0 when nothing was found.
	Level  int
	Levels []LevelStats
	// Elapsed wall time from submission to Done.
	Elapsed time.Duration
	State   State
}

// Found reports whether at least one variation was recorded.
func (o Outcome) Found() bool { return len(o.Entries) > 0 }

// Summary combines the result count and the checked counter.
func (o Outcome) Summary() string {
	if len(o.Entries) == 0 {
		return fmt.Sprintf("search complete: no valid variation found, %d checked", o.Checked)
	}

	return fmt.Sprintf("search complete: %d variation(s) found, %d checked", len(o.Entries), o.Checked)
}

// ProgressMessage describes a level about to be searched.
func ProgressMessage(level int) string {
	return fmt.Sprintf("searching variations with %d digit(s) changed", level)
}

// WorstCaseChecks is the number of candidates validated when no level
// yields a variation: Σ C(11,k)·9^k for k = 1..maxLevel.
func WorstCaseChecks(maxLevel int) int {
	total := 0
	for k := MinLevel; k <= maxLevel; k++ {
		total += binomial11(k) * CandidateCount(k)
	}

	return total
}
