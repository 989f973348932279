package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

// table is a rendered result: a header and rows of cells.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// render writes v as JSON when --json is set, otherwise writes t:
// aligned columns on a terminal and tab-separated values elsewhere.
func (a *App) render(t table, v any) error {

	if a.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	if isTerminal(a.stdout) {
		tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
		writeRows(tw, t)
		return tw.Flush()
	}

	writeRows(a.stdout, t)
	return nil
}

func writeRows(w io.Writer, t table) {
	if len(t.header) > 0 {
		fmt.Fprintln(w, strings.Join(t.header, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloats(v []float64) string {
	s := make([]string, len(v))
	for i := range v {
		s[i] = formatFloat(v[i])
	}
	return strings.Join(s, ",")
}

// parseFloats parses a comma separated list of numbers.
// The empty string parses to an empty list.
func parseFloats(s string) (v []float64, err error) {

	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}

	fields := strings.Split(s, ",")
	v = make([]float64, len(fields))
	for i, f := range fields {
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", f, err)
		}
	}

	return
}

// coeffsTable returns the table of the coefficients of a polynomial.
func coeffsTable[T int64 | float64](coeffs []T, format func(T) string) (t table) {
	t.header = []string{"degree", "coeff"}
	for i, c := range coeffs {
		t.add(strconv.Itoa(i), format(c))
	}
	return
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
