// Package analysis runs definitional-core jobs over a dictionary and keeps
// their results as JSON files in a per-source work directory.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/internal/dataset"
	"github.com/heartmarshall/lexcore/internal/defgraph"
	"github.com/heartmarshall/lexcore/internal/domain"
)

// Sources accepted by LoadSource.
const (
	SourceCleaned = "cleaned"
	SourceSenses  = "senses"
)

// Files written under the work directory.
const (
	FreeFile     = "undefWords.json"
	CoreFile     = "delNodes.json"
	CulledFile   = "cullNodes.json"
	AnnealedFile = "simNodes.json"
	SolutionFile = "solution.json"
	NamesFile    = "names.json"
	GraphFile    = "graph.json"
	EdgesFile    = "edges.csv"
	TreeDir      = "trees"
)

// LoadSource opens the dictionary named by cfg.Source.
func LoadSource(cfg config.CoreConfig, log *slog.Logger) (dataset.Source, error) {
	switch cfg.Source {
	case SourceCleaned:
		d, err := dataset.LoadDictionary(cfg.CleanedDir, log)
		if err != nil {
			return nil, err
		}
		return d, nil
	case SourceSenses:
		s, err := dataset.LoadSenses(cfg.SensesFile, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, domain.NewValidationError("core.source", fmt.Sprintf("unknown source %q", cfg.Source))
	}
}

// Service runs analysis jobs over one Source.
type Service struct {
	log    *slog.Logger
	src    dataset.Source
	dir    string
	params defgraph.AnnealParams

	graph *defgraph.Graph
}

// NewService creates a Service writing to cfg.WorkDir/cfg.Source.
func NewService(log *slog.Logger, src dataset.Source, cfg config.CoreConfig) *Service {
	return &Service{
		log: log,
		src: src,
		dir: filepath.Join(cfg.WorkDir, cfg.Source),
		params: defgraph.AnnealParams{
			T0:      cfg.AnnealT0,
			Cooling: cfg.AnnealCooling,
			Bias:    cfg.AnnealBias,
			Seed:    uint64(cfg.AnnealSeed),
		},
	}
}

// Dir returns the work directory.
func (s *Service) Dir() string { return s.dir }

// Path returns the location of name inside the work directory.
func (s *Service) Path(name string) string { return filepath.Join(s.dir, name) }

// Graph builds the definition graph on first use.
func (s *Service) Graph() *defgraph.Graph {
	if s.graph == nil {
		start := time.Now()
		s.graph = defgraph.FromSource(s.src)
		s.log.Info("graph built",
			slog.Int("vertices", s.graph.Len()),
			slog.Int("edges", s.graph.EdgeCount()),
			slog.Duration("duration", time.Since(start)),
		)
	}
	return s.graph
}

// run wraps one job with cancellation and timing logs.
func (s *Service) run(ctx context.Context, job string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", job, err)
	}

	start := time.Now()
	s.log.Info("starting job", slog.String("job", job))

	if err := fn(); err != nil {
		s.log.Error("job failed",
			slog.String("job", job),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return fmt.Errorf("%s: %w", job, err)
	}

	s.log.Info("job completed",
		slog.String("job", job),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Solve computes the undefined words and a greedy core, writing them to
// FreeFile and CoreFile.
func (s *Service) Solve(ctx context.Context) ([]string, error) {
	var core []string
	err := s.run(ctx, "solve", func() error {
		g := s.Graph()
		free := g.FreeWords()
		if err := dataset.WriteJSON(s.Path(FreeFile), free); err != nil {
			return err
		}

		core = g.Solve()
		if err := dataset.WriteJSON(s.Path(CoreFile), core); err != nil {
			return err
		}
		s.log.Info("core solved", slog.Int("free", len(free)), slog.Int("core", len(core)))
		return nil
	})
	return core, err
}

// Cull shrinks the core stored in from and writes the result to CulledFile.
func (s *Service) Cull(ctx context.Context, from string) ([]string, error) {
	var culled []string
	err := s.run(ctx, "cull", func() error {
		core, err := s.ReadCore(from)
		if err != nil {
			return err
		}

		g := s.Graph()
		culled = g.Cull(core, g.FreeWords())
		if err := dataset.WriteJSON(s.Path(CulledFile), culled); err != nil {
			return err
		}
		s.log.Info("core culled", slog.Int("before", len(core)), slog.Int("after", len(culled)))
		return nil
	})
	return culled, err
}

// Anneal improves the core stored in from by simulated annealing and writes
// the best set seen to AnnealedFile.
func (s *Service) Anneal(ctx context.Context, from string) (defgraph.AnnealResult, error) {
	var res defgraph.AnnealResult
	err := s.run(ctx, "anneal", func() error {
		core, err := s.ReadCore(from)
		if err != nil {
			return err
		}

		g := s.Graph()
		free := g.FreeWords()
		if !g.Verify(core, free) {
			return fmt.Errorf("%s does not hold a valid core", from)
		}

		res = g.Anneal(core, free, s.params)
		if err := dataset.WriteJSON(s.Path(AnnealedFile), res.Core); err != nil {
			return err
		}
		s.log.Info("core annealed",
			slog.Int("before", len(core)),
			slog.Int("after", len(res.Core)),
			slog.Int("steps", res.Steps),
			slog.Int("accepted", res.Accepted),
		)
		return nil
	})
	return res, err
}

// Verify reports whether the core stored in from breaks every cycle.
func (s *Service) Verify(ctx context.Context, from string) (bool, error) {
	var ok bool
	err := s.run(ctx, "verify", func() error {
		core, err := s.ReadCore(from)
		if err != nil {
			return err
		}
		g := s.Graph()
		ok = g.Verify(core, g.FreeWords())
		s.log.Info("core verified", slog.Int("core", len(core)), slog.Bool("valid", ok))
		return nil
	})
	return ok, err
}

// Expand returns the stored definition of word and its expansion down to
// the core stored in from. An empty from expands against an empty core.
func (s *Service) Expand(ctx context.Context, from, word string) (definition, expanded string, err error) {
	word = domain.NormalizeText(word)
	err = s.run(ctx, "expand", func() error {
		if _, found := slices.BinarySearch(s.src.Names(), word); !found {
			return fmt.Errorf("%w: %q", domain.ErrUnknownWord, word)
		}
		definition = s.src.Definition(word)
		core, err := s.readCoreSet(from)
		if err != nil {
			return err
		}
		expanded = s.src.Expand(core, word)
		return nil
	})
	return definition, expanded, err
}

// ReadCore loads a core list previously written to the work directory.
func (s *Service) ReadCore(name string) ([]string, error) {
	var core []string
	if err := dataset.ReadJSON(s.Path(name), &core); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, s.Path(name))
		}
		return nil, err
	}
	return core, nil
}

func (s *Service) readCoreSet(name string) (domain.WordSet, error) {
	if name == "" {
		return domain.NewWordSet(), nil
	}
	core, err := s.ReadCore(name)
	if err != nil {
		return nil, err
	}
	return domain.NewWordSet(core...), nil
}
