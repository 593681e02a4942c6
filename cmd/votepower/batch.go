package main

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/votepower/powerindex"
)

var batchCmd = cli.Command{
	Name:  "batch",
	Usage: "computes power indices for a JSON array of games",
	Flags: []cli.Flag{
		kindFlag,
		methodFlag,
		jsonFlag,
		requireProperFlag,
		&cli.PathFlag{
			Name:     "file",
			Usage:    "JSON array of games, - for stdin",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "games evaluated at once",
			Value: runtime.NumCPU(),
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := settings(c)
		if err != nil {
			return err
		}
		jobs := c.Int("jobs")
		if jobs < 1 {
			return xerrors.Errorf("--jobs must be positive, got %d", jobs)
		}

		var inputs []gameInput
		if err := readJSON(c.Path("file"), c.App.Reader, &inputs); err != nil {
			return err
		}
		opts, err := indexOptions(c, cfg)
		if err != nil {
			return err
		}
		engine, err := powerindex.NewEngine(cfg.CacheSize, opts...)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(c.Context, cfg)
		defer cancel()

		var (
			reports = make([]report, len(inputs))
			errs    = make([]error, len(inputs))
			failed  atomic.Int64
			eg      errgroup.Group
		)
		eg.SetLimit(jobs)
		for i, in := range inputs {
			i, in := i, in
			eg.Go(func() error {
				kind, res, err := evaluate(ctx, engine, in, c.String("kind"))
				label := kind.String()
				if kind == 0 {
					label = in.Kind
				}
				reports[i] = newReport(in.Name, label, res, err)
				if err != nil {
					failed.Add(1)
					errs[i] = xerrors.Errorf("game %d: %w", i+1, err)
				}
				// per-game failures are reported, not fatal to the batch
				return nil
			})
		}
		_ = eg.Wait()

		log.Infow("batch finished", "games", len(inputs), "failed", failed.Load(), "cached", engine.Len())

		if c.Bool("json") {
			err = writeJSON(c.App.Writer, reports)
		} else {
			err = writeTable(c.App.Writer, reports)
		}

		return multierr.Combine(append(errs, err)...)
	},
}

// evaluate builds one game and computes it through the shared engine.
func evaluate(ctx context.Context, e *powerindex.Engine, in gameInput, fallback string) (powerindex.Kind, powerindex.Result, error) {
	kind, err := kindOf(in, fallback)
	if err != nil {
		return kind, powerindex.Result{}, err
	}
	g, err := in.build()
	if err != nil {
		return kind, powerindex.Result{}, err
	}

	res, err := e.Compute(ctx, g, kind)

	return kind, res, err
}
