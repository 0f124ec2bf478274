package analysis

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/lexcore/internal/dataset"
	"github.com/heartmarshall/lexcore/internal/domain"
)

// ExportSolution writes every defined word with its definition and its
// expansion down to the core stored in from, as name -> [definition, expanded].
func (s *Service) ExportSolution(ctx context.Context, from string) (int, error) {
	var n int
	err := s.run(ctx, "export solution", func() error {
		core, err := s.readCoreSet(from)
		if err != nil {
			return err
		}

		names := s.src.Names()
		solution := make(map[string][2]string, len(names))
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return err
			}
			solution[name] = [2]string{s.src.Definition(name), s.src.Expand(core, name)}
		}

		n = len(solution)
		return dataset.WriteJSON(s.Path(SolutionFile), solution)
	})
	return n, err
}

// ExportNames writes the sorted list of defined words.
func (s *Service) ExportNames(ctx context.Context) (int, error) {
	var n int
	err := s.run(ctx, "export names", func() error {
		names := s.src.Names()
		n = len(names)
		return dataset.WriteJSON(s.Path(NamesFile), names)
	})
	return n, err
}

// ExportGraph writes the whole graph as a node-link document.
func (s *Service) ExportGraph(ctx context.Context) (int, error) {
	var n int
	err := s.run(ctx, "export graph", func() error {
		exp := s.Graph().Export()
		n = len(exp.Links)
		return dataset.WriteJSON(s.Path(GraphFile), exp)
	})
	return n, err
}

// ExportCSV writes the edge list with a source,target header. When from is
// set, edges touching a word of that core are left out.
func (s *Service) ExportCSV(ctx context.Context, from string) (int, error) {
	var n int
	err := s.run(ctx, "export csv", func() error {
		core, err := s.readCoreSet(from)
		if err != nil {
			return err
		}

		path := s.Path(EdgesFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write([]string{"source", "target"}); err != nil {
			return err
		}

		var werr error
		s.Graph().EachEdge(func(definer, defined string) {
			if werr != nil || core.Has(definer) || core.Has(defined) {
				return
			}
			werr = w.Write([]string{definer, defined})
			n++
		})
		if werr != nil {
			return fmt.Errorf("write edge: %w", werr)
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush csv: %w", err)
		}
		return f.Close()
	})
	return n, err
}

// ExportTree writes the definition tree of word, stopping at the core
// stored in from, to trees/<word>.json as {word: tree}.
func (s *Service) ExportTree(ctx context.Context, from, word string) (string, error) {
	word = domain.NormalizeText(word)
	path := s.Path(filepath.Join(TreeDir, word+".json"))
	err := s.run(ctx, "export tree", func() error {
		if word == "" || strings.ContainsAny(word, `/\`) || word == "." || word == ".." {
			return domain.NewValidationError("word", fmt.Sprintf("%q cannot name a tree file", word))
		}

		core, err := s.readCoreSet(from)
		if err != nil {
			return err
		}

		tree, ok := s.Graph().Tree(word, core)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownWord, word)
		}
		s.log.Debug("tree built",
			slog.String("word", word),
			slog.Int("nodes", len(tree.Nodes)),
			slog.Int("links", len(tree.Links)),
		)
		return dataset.WriteJSON(path, map[string]any{word: tree})
	})
	return path, err
}
