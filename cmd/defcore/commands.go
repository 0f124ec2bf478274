package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexcore/internal/analysis"
	"github.com/heartmarshall/lexcore/internal/app"
	"github.com/heartmarshall/lexcore/internal/config"
)

var errInvalidCore = errors.New("core does not break every cycle")

// cli holds what the subcommands share once the root has bootstrapped.
type cli struct {
	configPath string
	source     string

	svc *analysis.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "defcore",
		Short: "Definitional-core analysis of a dictionary",
		Long: `Definitional-core analysis of a dictionary.

Every word points to the words it defines. A core is a set of words whose
removal, together with the undefined words, leaves the graph acyclic: every
other word can then be defined from the core alone.

Results are written under <work_dir>/<source>/.`,
		Version:           app.BuildVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: c.bootstrap,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&c.source, "source", "", "dictionary to analyze: cleaned or senses")

	root.AddCommand(
		c.solveCmd(),
		c.cullCmd(),
		c.annealCmd(),
		c.verifyCmd(),
		c.expandCmd(),
		c.exportCmd(),
		c.treeCmd(),
	)
	return root
}

func (c *cli) bootstrap(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}
	ctx, rt, err := app.Bootstrap(cmd.Context(), "defcore "+cmd.Name(), c.configPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("source") {
			cfg.Core.Source = c.source
		}
	})
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)

	src, err := analysis.LoadSource(rt.Config.Core, rt.Logger)
	if err != nil {
		return fmt.Errorf("load %s: %w", rt.Config.Core.Source, err)
	}
	c.svc = analysis.NewService(rt.Logger, src, rt.Config.Core)
	return nil
}

func fromFlag(cmd *cobra.Command, from *string, def string) {
	cmd.Flags().StringVar(from, "from", def, "core file inside the work directory")
}

func (c *cli) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Compute the undefined words and a greedy core",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core, err := c.svc.Solve(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d core words written to %s\n", len(core), c.svc.Path(analysis.CoreFile))
			return nil
		},
	}
}

func (c *cli) cullCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "cull",
		Short: "Drop core words that are not needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core, err := c.svc.Cull(cmd.Context(), from)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d core words written to %s\n", len(core), c.svc.Path(analysis.CulledFile))
			return nil
		},
	}
	fromFlag(cmd, &from, analysis.CoreFile)
	return cmd
}

func (c *cli) annealCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "anneal",
		Short: "Search for a smaller core by simulated annealing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.svc.Anneal(cmd.Context(), from)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d core words written to %s (%d steps, %d accepted)\n",
				len(res.Core), c.svc.Path(analysis.AnnealedFile), res.Steps, res.Accepted)
			return nil
		},
	}
	fromFlag(cmd, &from, analysis.CoreFile)
	return cmd
}

func (c *cli) verifyCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a core breaks every cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, err := c.svc.Verify(cmd.Context(), from)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: %w", from, errInvalidCore)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid core\n", from)
			return nil
		},
	}
	fromFlag(cmd, &from, analysis.CoreFile)
	return cmd
}

func (c *cli) expandCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "expand <word>",
		Short: "Print a definition and its expansion down to a core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, expanded, err := c.svc.Expand(cmd.Context(), from, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "definition: %s\n", strings.TrimSpace(def))
			fmt.Fprintf(out, "expanded:   %s\n", strings.TrimSpace(expanded))
			return nil
		},
	}
	fromFlag(cmd, &from, "")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:       "export solution|names|graph|csv",
		Short:     "Write the dictionary or its graph to the work directory",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"solution", "names", "graph", "csv"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				n    int
				file string
				err  error
			)
			switch args[0] {
			case "solution":
				if from == "" {
					from = analysis.CoreFile
				}
				n, err = c.svc.ExportSolution(ctx, from)
				file = analysis.SolutionFile
			case "names":
				n, err = c.svc.ExportNames(ctx)
				file = analysis.NamesFile
			case "graph":
				n, err = c.svc.ExportGraph(ctx)
				file = analysis.GraphFile
			case "csv":
				n, err = c.svc.ExportCSV(ctx, from)
				file = analysis.EdgesFile
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records written to %s\n", n, c.svc.Path(file))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "",
		"core file inside the work directory (solution: default "+analysis.CoreFile+"; csv: drop its edges)")
	return cmd
}

func (c *cli) treeCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "tree <word>",
		Short: "Write the definition tree of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.svc.ExportTree(cmd.Context(), from, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tree written to %s\n", path)
			return nil
		},
	}
	fromFlag(cmd, &from, analysis.CoreFile)
	return cmd
}
