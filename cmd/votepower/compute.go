package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/votepower/powerindex"
	"github.com/katalvlaran/votepower/shapley"
)

var kindFlag = &cli.StringFlag{
	Name:  "kind",
	Usage: "power index to compute: banzhaf or shapley",
	Value: "banzhaf",
}

var methodFlag = &cli.StringFlag{
	Name:  "method",
	Usage: "Shapley enumeration: permutations or subsets",
	Value: "permutations",
}

var jsonFlag = &cli.BoolFlag{
	Name:  "json",
	Usage: "print results as JSON",
}

var requireProperFlag = &cli.BoolFlag{
	Name:  "require-proper",
	Usage: "fail on games whose grand coalition loses or whose empty coalition wins",
}

var computeCmd = cli.Command{
	Name:  "compute",
	Usage: "computes the power index of one game",
	Flags: []cli.Flag{
		kindFlag,
		methodFlag,
		jsonFlag,
		requireProperFlag,
		&cli.StringFlag{
			Name:  "weights",
			Usage: `weight matrix, players separated by ';' and resolutions by ',', e.g. "3,1;2,2;1,1"`,
		},
		&cli.StringFlag{
			Name:  "quotas",
			Usage: `quota per resolution, e.g. "4,3"`,
		},
		&cli.PathFlag{
			Name:  "file",
			Usage: "read the game from a JSON file instead of flags, - for stdin",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := settings(c)
		if err != nil {
			return err
		}

		in, err := inputFromFlags(c)
		if err != nil {
			return err
		}
		g, err := in.build()
		if err != nil {
			return err
		}
		kind, err := kindOf(in, c.String("kind"))
		if err != nil {
			return err
		}
		opts, err := indexOptions(c, cfg)
		if err != nil {
			return err
		}

		ctx, cancel := withTimeout(c.Context, cfg)
		defer cancel()

		res, err := powerindex.Compute(ctx, g, kind, opts...)
		if err != nil {
			return xerrors.Errorf("computing %s: %w", kind, err)
		}

		r := newReport(in.Name, kind.String(), res, nil)
		if c.Bool("json") {
			return writeJSON(c.App.Writer, r)
		}

		return writeTable(c.App.Writer, []report{r})
	},
}

// inputFromFlags reads the game from --file or from --weights and --quotas.
func inputFromFlags(c *cli.Context) (gameInput, error) {
	var in gameInput
	if path := c.Path("file"); path != "" {
		if c.IsSet("weights") || c.IsSet("quotas") {
			return gameInput{}, xerrors.New("--file cannot be combined with --weights or --quotas")
		}
		if err := readJSON(path, c.App.Reader, &in); err != nil {
			return gameInput{}, err
		}

		return in, nil
	}

	if !c.IsSet("weights") || !c.IsSet("quotas") {
		return gameInput{}, xerrors.New("either --file or both --weights and --quotas are required")
	}
	weights, err := parseMatrix(c.String("weights"))
	if err != nil {
		return gameInput{}, xerrors.Errorf("parsing --weights: %w", err)
	}
	quotas, err := parseList(c.String("quotas"))
	if err != nil {
		return gameInput{}, xerrors.Errorf("parsing --quotas: %w", err)
	}
	in.Weights, in.Quotas = weights, quotas

	return in, nil
}

// kindOf picks the game's own kind, falling back to the command default.
func kindOf(in gameInput, fallback string) (powerindex.Kind, error) {
	name := in.Kind
	if name == "" {
		name = fallback
	}

	return powerindex.ParseKind(name)
}

// indexOptions translates flags and config into dispatcher options.
func indexOptions(c *cli.Context, cfg Config) ([]powerindex.Option, error) {
	method, err := shapley.ParseMethod(c.String("method"))
	if err != nil {
		return nil, err
	}

	opts := []powerindex.Option{
		powerindex.WithCappedMaxPlayers(cfg.MaxPlayers),
		powerindex.WithShapleyMethod(method),
	}
	if c.Bool("require-proper") {
		opts = append(opts, powerindex.WithRequireProper())
	}

	return opts, nil
}

func withTimeout(ctx context.Context, cfg Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}

	return context.WithCancel(ctx)
}
