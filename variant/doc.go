// Package variant searches for valid CPF identifiers that differ from a
// given valid identifier in as few digits as possible.
//
// What
//
//   - Candidate / EachCandidate: for one set of positions, every way of
//     replacing those digits with different digits (9^k candidates).
//   - Searcher: a small state machine (Idle → Validating → Searching → Done)
//     that validates the raw input, then escalates over levels k = 1, 2, 3,
//     stopping at the first level that yields a valid candidate.
//   - Outcome: entries in enumeration order, the checked counter, per-level
//     statistics and a one-line Summary.
//
// Search order
//
//	For k = 1..MaxLevel:
//	  for each k-subset P of positions 0..10, lexicographic (package combin):
//	    for i in [0, 9^k):
//	      candidate ← Candidate(original, P, i)
//	      checked++
//	      if Validator.Valid(candidate) and its display form is new:
//	        append Entry{display form, differing digits}
//	  stop when this level appended at least one entry
//
//	Every candidate of level k differs from the original at exactly k
//	positions, so all entries share the same Differences value.
//
// Complexity
//
//	Σ C(11,k)·9^k checks in the worst case: 99 + 4455 + 120285 = 124839.
//	Memory is O(entries).
//
// Usage
//
//	s := variant.NewSearcher(
//	    variant.WithLogger(logger),
//	    variant.WithMetrics(variant.NewMetrics(prometheus.NewRegistry())),
//	    variant.WithOnLevel(func(k int) { fmt.Println(variant.ProgressMessage(k)) }),
//	)
//	out, err := s.Submit("529.982.247-25")
//	switch {
//	case errors.Is(err, variant.ErrWrongLength), errors.Is(err, variant.ErrInvalidChecksum):
//	    // s.State() == variant.Idle
//	case err == nil:
//	    fmt.Println(out.Summary()) // search complete: 1 variation(s) found, 4554 checked
//	}
//	_ = s.Reset()
//
// Options
//
//   - WithValidator(v)      replace the checksum rule (tests use a mock).
//   - WithMaxLevel(n)       escalate no further than n, 1 ≤ n ≤ 3.
//   - WithLogger(l)         slog logger; Debug per level, Info per search.
//   - WithMetrics(m)        prometheus counters and duration histogram.
//   - WithTracer(t)         otel tracer; spans "variant.Submit", "variant.level".
//   - WithContext(ctx)      parent for spans. There is no cancellation.
//   - WithOnLevel(fn)       hook before each level.
//   - WithOnEntry(fn)       hook for each new entry.
//   - WithProgress(n, fn)   hook every n checked candidates.
//
// Errors
//
//   - ErrWrongLength      input does not reduce to 11 digits (wraps the cpf error).
//   - ErrInvalidChecksum  11 digits rejected by the Validator.
//   - ErrBusy             Submit or Reset called during a search.
//
// A Searcher is not safe for concurrent use.
package variant
