package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/xerrors"

	"github.com/katalvlaran/votepower/powerindex"
)

// report is the printed outcome of one game.
type report struct {
	Name   string   `json:"name,omitempty"`
	Kind   string   `json:"kind"`
	Values []string `json:"values,omitempty"`
	Raw    []uint64 `json:"raw,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func newReport(name, kind string, res powerindex.Result, err error) report {
	r := report{Name: name, Kind: kind}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Values = res.Values
	r.Raw = res.Raw

	return r
}

// writeTable prints one block per report:
//
//	# council (banzhaf)
//	Player 1	0.500000	2
func writeTable(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if r.Name != "" {
			fmt.Fprintf(tw, "# %s (%s)\n", r.Name, r.Kind)
		} else {
			fmt.Fprintf(tw, "# %s\n", r.Kind)
		}
		if r.Error != "" {
			fmt.Fprintf(tw, "error: %s\n", r.Error)
			continue
		}
		for p, v := range r.Values {
			fmt.Fprintf(tw, "Player %d\t%s\t%d\n", p+1, v, r.Raw[p])
		}
	}
	if err := tw.Flush(); err != nil {
		return xerrors.Errorf("writing table: %w", err)
	}

	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return xerrors.Errorf("encoding output: %w", err)
	}

	return nil
}
