package main

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/votepower/game"
)

// gameInput is the JSON form of one game. N and K may be omitted, in which
// case they are taken from the lengths of Weights and Quotas; an explicit
// value, zero included, is passed through to validation.
type gameInput struct {
	Name    string    `json:"name,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	N       *int      `json:"n,omitempty"`
	K       *int      `json:"k,omitempty"`
	Weights [][]int64 `json:"weights"`
	Quotas  []int64   `json:"quotas"`
}

// build validates the input and returns the game it describes.
func (s gameInput) build() (*game.Game, error) {
	n, k := len(s.Weights), len(s.Quotas)
	if s.N != nil {
		n = *s.N
	}
	if s.K != nil {
		k = *s.K
	}

	g, err := game.New(n, k, s.Weights, s.Quotas)
	if err != nil {
		return nil, xerrors.Errorf("building game %q: %w", s.Name, err)
	}

	return g, nil
}

// parseMatrix reads weights written row by row: players separated by ';',
// resolutions within a player by ','. "1,0;0,1" is two players, two resolutions.
func parseMatrix(s string) ([][]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, xerrors.New("empty weight matrix")
	}

	rows := strings.Split(s, ";")
	out := make([][]int64, len(rows))
	for i, row := range rows {
		vals, err := parseList(row)
		if err != nil {
			return nil, xerrors.Errorf("player %d: %w", i+1, err)
		}
		out[i] = vals
	}

	return out, nil
}

// parseList reads comma-separated integers.
func parseList(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, xerrors.New("empty list")
	}

	fields := strings.Split(s, ",")
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, xerrors.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// readJSON decodes the file at path into v; "-" reads standard input.
func readJSON(path string, stdin io.Reader, v any) (err error) {
	r := stdin
	if path != "-" {
		f, openErr := os.Open(path)
		if openErr != nil {
			return xerrors.Errorf("opening %s: %w", path, openErr)
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return xerrors.Errorf("decoding %s: %w", path, err)
	}

	return nil
}
