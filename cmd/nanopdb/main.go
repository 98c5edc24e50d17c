// Command nanopdb parses PDB files, local or downloaded from the RCSB, and
// prints a summary of each structure.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/nanopdb"
	"github.com/rmera/nanopdb/rcsb"
)

// app is the state shared by the subcommands, set up before any of them runs.
type app struct {
	configPath string
	jsonOut    bool
	cfg        *Config
	log        *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nanopdb",
		Short: "Parse PDB structure files",
		Long: `nanopdb reads the HEADER, CRYST1, ATOM and HETATM records of PDB files
and prints the chains, residues and atoms found in each.

Examples:
  nanopdb parse 1zhy.pdb           # local file
  nanopdb parse 1zhy.pdb.gz        # gzip or zstd compressed files work too
  nanopdb fetch 1ZHY 4HHB --json   # download from files.rcsb.org`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print summaries as JSON")
	root.AddCommand(a.parseCmd(), a.fetchCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := newViper(a.configPath)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("output.json", cmd.Root().PersistentFlags().Lookup("json")); err != nil {
		return errors.Wrap(err, "binding --json")
	}
	a.cfg, err = loadConfig(v)
	if err != nil {
		return err
	}
	a.log, err = newLogger(a.cfg.Log)
	if err != nil {
		return err
	}
	return nil
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse local PDB files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sums := make([]summary, 0, len(args))
			for _, path := range args {
				s, err := nanopdb.ReadFile(path)
				if err != nil {
					a.log.Error("parse failed", zap.String("file", path), zap.Error(err))
					return err
				}
				a.log.Info("parsed", zap.String("file", path), zap.String("pdbid", s.PDBID()), zap.Int("chains", s.Len()))
				sums = append(sums, summarize(path, s))
			}
			return a.print(cmd, sums)
		},
	}
}

func (a *app) fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch ID...",
		Short: "Download and parse entries from the RCSB",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			sums := make([]summary, 0, len(args))
			for _, id := range args {
				s, err := client.Fetch(ctx, id)
				if err != nil {
					a.log.Error("fetch failed", zap.String("id", id), zap.Error(err))
					return err
				}
				a.log.Info("fetched", zap.String("id", id), zap.Int("chains", s.Len()))
				sums = append(sums, summarize(client.URL(id), s))
			}
			return a.print(cmd, sums)
		},
	}
}

func (a *app) client() *rcsb.Client {
	c := a.cfg.RCSB
	return rcsb.NewClient(
		rcsb.WithBaseURL(c.BaseURL),
		rcsb.WithHTTPClient(newHTTPClient(c.Timeout)),
		rcsb.WithRateLimit(c.Rate),
		rcsb.WithLogger(a.log.Named("rcsb")),
	)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (a *app) print(cmd *cobra.Command, sums []summary) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output.JSON {
		return writeJSON(out, sums)
	}
	for _, s := range sums {
		if err := writeTable(out, s); err != nil {
			return err
		}
	}
	return nil
}
