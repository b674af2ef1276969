package intcode

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"intcode/log"
)

const DefaultLimit = 100

// Match is a noun/verb pair whose run left the target at address 0.
type Match struct {
	Noun, Verb int32
	Attempts   int
}

// Answer encodes the pair the way the puzzle expects it.
func (m Match) Answer() int {
	return 100*int(m.Noun) + int(m.Verb)
}

// Searcher tries every noun and verb in [0, Limit) against Base.
type Searcher struct {
	Base   Memory
	Target int32
	// Limit defaults to DefaultLimit.
	Limit int32
	// Workers > 1 shards nouns across goroutines. The outcome is the same as
	// the sequential one.
	Workers int
	// Logger defaults to the root logger.
	Logger *slog.Logger
}

func (s *Searcher) limit() int32 {
	if s.Limit <= 0 {
		return DefaultLimit
	}
	return s.Limit
}

func (s *Searcher) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Root().With("module", log.SearchModule)
}

// Search returns the first pair in noun-major order whose run produces
// Target. A VM error aborts the search. An exhausted space yields a
// *NotFoundError.
func (s *Searcher) Search(ctx context.Context) (Match, error) {
	logger := s.logger()
	logger.Info("search started", "target", s.Target, "limit", s.limit(), "workers", s.Workers)
	var (
		m   Match
		err error
	)
	if s.Workers > 1 {
		m, err = s.searchParallel(ctx, logger)
	} else {
		m, err = s.searchSequential(ctx, logger)
	}
	if err != nil {
		logger.Warn("search failed", "target", s.Target, "err", err)
		return Match{}, err
	}
	logger.Info("search matched", "noun", m.Noun, "verb", m.Verb, "answer", m.Answer(), "attempts", m.Attempts)
	return m, nil
}

func (s *Searcher) try(ctx context.Context, noun, verb int32) (bool, error) {
	v, err := Execute(ctx, s.Base, NounVerb(noun, verb))
	if err != nil {
		return false, err
	}
	return v == s.Target, nil
}

func (s *Searcher) searchSequential(ctx context.Context, logger *slog.Logger) (Match, error) {
	limit := s.limit()
	attempts := 0
	for noun := int32(0); noun < limit; noun++ {
		logger.Debug("scanning noun", "noun", noun)
		for verb := int32(0); verb < limit; verb++ {
			attempts++
			ok, err := s.try(ctx, noun, verb)
			if err != nil {
				return Match{}, err
			}
			if ok {
				return Match{Noun: noun, Verb: verb, Attempts: attempts}, nil
			}
		}
	}
	return Match{}, &NotFoundError{Target: s.Target, Attempts: attempts}
}

// outcome is the first match or VM error within one noun.
type outcome struct {
	noun, verb int32
	err        error
}

// searchParallel hands nouns out in ascending order and scans each noun's
// verbs in order. The lowest noun with an outcome is the cut: nouns above it
// are skipped or abandoned, nouns below it are always scanned to the end, so
// the outcome at the cut is the one the sequential search would reach first.
func (s *Searcher) searchParallel(ctx context.Context, logger *slog.Logger) (Match, error) {
	limit := s.limit()
	g, gctx := errgroup.WithContext(ctx)

	var (
		attempts atomic.Int64
		cut      atomic.Int32
		mu       sync.Mutex
		first    *outcome
	)
	cut.Store(math.MaxInt32)

	record := func(o outcome) {
		mu.Lock()
		defer mu.Unlock()
		if first == nil || o.noun < first.noun {
			first = &o
			cut.Store(o.noun)
		}
	}

	nouns := make(chan int32)
	g.Go(func() error {
		defer close(nouns)
		for noun := int32(0); noun < limit; noun++ {
			if noun > cut.Load() {
				return nil
			}
			select {
			case nouns <- noun:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	for i := 0; i < s.Workers; i++ {
		g.Go(func() error {
			for noun := range nouns {
				if noun > cut.Load() {
					continue
				}
				logger.Debug("scanning noun", "noun", noun)
				for verb := int32(0); verb < limit && noun <= cut.Load(); verb++ {
					attempts.Add(1)
					ok, err := s.try(gctx, noun, verb)
					if err != nil {
						if cerr := gctx.Err(); cerr != nil {
							return cerr
						}
						record(outcome{noun: noun, verb: verb, err: err})
						break
					}
					if ok {
						record(outcome{noun: noun, verb: verb})
						break
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Match{}, err
	}
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	if first == nil {
		return Match{}, &NotFoundError{Target: s.Target, Attempts: int(attempts.Load())}
	}
	if first.err != nil {
		return Match{}, first.err
	}
	return Match{Noun: first.noun, Verb: first.verb, Attempts: int(attempts.Load())}, nil
}
