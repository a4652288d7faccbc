// Package batch quotes loans in bulk from semicolon-separated files and
// records the results in the quote history.
package batch

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/loanquote/internal/logger"
	"github.com/guttosm/loanquote/internal/storage"
)

const (
	fileExt            = ".csv"
	defaultBatchSize   = 5000
	defaultMaxParallel = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.QuotesRepository {
	return storage.NewQuotesRepository(db)
}

// ProcessDirectory quotes every *.csv file in dir and stores the results.
//
// Parameters:
//   - dir:      directory containing the input files.
//   - db:       open *sql.DB (PostgreSQL).
//   - parallel: files processed at once; 0 selects min(NumCPU, 8).
//   - force:    re-import files already recorded in quote_import_log,
//     replacing their previous quotes.
//
// Behavior:
//   - Files already imported are skipped unless force is set.
//   - Each file is validated strictly; one bad row fails that file.
//   - Each file is stored in one transaction, so a failed file leaves
//     neither partial quotes nor a changed import log.
//   - If any file returns error, cancels the rest and returns that error.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	log := logger.Component("batch")

	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	files, err := listFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", fileExt, dir)
	}

	maxParallel := resolveParallel(parallel)
	log.Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Bool("force", force).Msg("batch start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, f := range files {
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(f)
			log.Info().Int("idx", i+1).Int("total", len(files)).Str("file", base).Msg("file start")

			exists, err := repo.HasImport(gctx, base)
			if err != nil {
				log.Error().Str("file", base).Err(err).Msg("check import log failed")
				return fmt.Errorf("file %s: check import log: %w", f, err)
			}
			if exists && !force {
				log.Info().Int("idx", i+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already imported")
				return nil
			}
			// the replace, the inserts and the log entry commit together
			var total int
			err = repo.WithinTx(gctx, func(tx storage.QuotesRepository) error {
				if exists {
					if err := tx.DeleteQuotesBySource(gctx, base); err != nil {
						return fmt.Errorf("delete previous quotes: %w", err)
					}
				}
				n, err := parseAndPersistFile(gctx, f, base, tx, defaultBatchSize, time.Now().UTC())
				if err != nil {
					return err
				}
				if err := tx.UpsertImportLog(gctx, base, n); err != nil {
					return fmt.Errorf("upsert import log: %w", err)
				}
				total = n
				return nil
			})
			if err != nil {
				log.Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			log.Info().Int("idx", i+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}

// listFiles returns the batch files in dir sorted by name.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func resolveParallel(parallel int) int {
	if parallel > 0 {
		return parallel
	}
	if c := runtime.NumCPU(); c < defaultMaxParallel {
		return c
	}
	return defaultMaxParallel
}
