package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

const profileSuffix = ".profile.json"

func newBatchCmd(a *app) *cobra.Command {
	var (
		dir         string
		outDir      string
		concurrency int
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score every dating answers file in a directory",
		Long: `Scores each *.json answers file in --dir and writes <name>.profile.json to --out.
Files are scored concurrently; a failing file is reported without stopping the rest.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if concurrency < 1 {
				return fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
			}
			files, err := batchInputs(dir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(concurrency)

			var (
				mu       sync.Mutex
				scored   int
				failures []error
			)
			for _, path := range files {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					err := scoreFile(cmd, a, path, outDir, seed)

					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						a.logger.Warn("batch file failed", "file", filepath.Base(path), "error", err)
						failures = append(failures, fmt.Errorf("%s: %w", filepath.Base(path), err))
						return nil
					}
					scored++
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Scored %d of %d files into %s\n", scored, len(files), outDir)
			return errors.Join(failures...)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory of answers JSON files (required)")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory to write profiles to (required)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of files scored at once")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for mindset shift selection (0 uses the configured seed)")

	for _, name := range []string{"dir", "out"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

// batchInputs lists answers files in dir, skipping profiles from an earlier run.
func batchInputs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	files := matches[:0]
	for _, m := range matches {
		if !strings.HasSuffix(m, profileSuffix) {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no answers files found in %s", dir)
	}
	return files, nil
}

// scoreFile scores one answers file. Each file gets its own permuter so results do not depend on scheduling.
func scoreFile(cmd *cobra.Command, a *app, path, outDir string, seed uint64) error {
	var doc answersFile
	if _, err := readDocument(cmd, path, schemadocs.QuizAnswers, &doc); err != nil {
		return err
	}
	opts := a.options(seed)
	opts.OnProgress = nil

	result, err := pipeline.ScoreDating(doc.Answers, opts)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + profileSuffix
	return writeJSON(cmd, filepath.Join(outDir, name), result)
}
