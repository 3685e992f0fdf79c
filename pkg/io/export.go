package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/skewrev/pkg/errors"
)

// Impossible is the single line printed when no insertion order exists.
const Impossible = "impossible"

type tree struct {
	Nodes []node `json:"nodes"`
}

type node struct {
	ID    int `json:"id"`
	Left  int `json:"left,omitempty"`
	Right int `json:"right,omitempty"`
}

// WriteResult writes the outcome of a query in the batch output format.
//
// On success (err == nil) it writes minSeq and maxSeq as two lines of
// space-separated values. If err is a rejection (see [errors.IsRejection])
// it writes the single line "impossible" and returns nil. Any other error is
// returned unchanged and nothing is written.
func WriteResult(w io.Writer, minSeq, maxSeq []int, err error) error {
	if err != nil {
		if !errors.IsRejection(err) {
			return err
		}
		_, werr := fmt.Fprintln(w, Impossible)
		return werr
	}
	if _, err := fmt.Fprintln(w, FormatSequence(minSeq)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, FormatSequence(maxSeq))
	return err
}

// FormatSequence joins seq with single spaces.
func FormatSequence(seq []int) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// WriteDescription writes d in the batch input format read by
// [ReadDescription], so that its output can be fed straight back in.
func WriteDescription(w io.Writer, d *Description) error {
	if _, err := fmt.Fprintln(w, d.N); err != nil {
		return err
	}
	for i := 1; i <= d.N; i++ {
		if _, err := fmt.Fprintf(w, "%d %d\n", d.Left[i], d.Right[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes d as JSON in the format read by [ReadJSON].
func WriteJSON(d *Description, w io.Writer) error {
	out := tree{Nodes: make([]node, d.N)}
	for i := 1; i <= d.N; i++ {
		out.Nodes[i-1] = node{ID: i, Left: d.Left[i], Right: d.Right[i]}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes d to a JSON file at path.
func ExportJSON(d *Description, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
