package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/skewrev/pkg/errors"
)

// Description is a parent→children tree description with 1-indexed slices.
// Left[i] and Right[i] are the children of node i (0 = absent); index 0 is
// unused, so both slices have length N+1.
type Description struct {
	N     int
	Left  []int
	Right []int
}

// NewDescription returns a description of n nodes with no children.
func NewDescription(n int) *Description {
	return &Description{N: n, Left: make([]int, n+1), Right: make([]int, n+1)}
}

// ReadDescription parses the batch input format from r:
//
//	n
//	l1 r1
//	l2 r2
//	...
//
// Tokens may be separated by any whitespace; tokens after the last pair are
// ignored. Empty input is read as n = 0.
//
// All failures are [errors.ErrCodeInvalidInput]: a non-integer token, a
// negative n, fewer than n pairs, or n above maxNodes when maxNodes > 0.
// Child references are not checked here; that is the tree builder's job.
func ReadDescription(r io.Reader, maxNodes int) (*Description, error) {
	tok := newTokenizer(r)

	n, ok, err := tok.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewDescription(0), nil
	}
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "node count %d is negative", n)
	}
	if maxNodes > 0 && n > maxNodes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "node count %d exceeds limit %d", n, maxNodes)
	}

	// n comes from untrusted input; grow with the pairs actually read.
	hint := min(n, 1<<16) + 1
	d := &Description{N: n, Left: make([]int, 1, hint), Right: make([]int, 1, hint)}
	for i := 1; i <= n; i++ {
		l, okL, err := tok.next()
		if err != nil {
			return nil, err
		}
		r, okR, err := tok.next()
		if err != nil {
			return nil, err
		}
		if !okL || !okR {
			return nil, errors.New(errors.ErrCodeInvalidInput, "expected %d child pairs, got %d", n, i-1)
		}
		d.Left = append(d.Left, l)
		d.Right = append(d.Right, r)
	}
	return d, nil
}

// ReadSequence parses whitespace-separated integers from r until EOF.
func ReadSequence(r io.Reader) ([]int, error) {
	tok := newTokenizer(r)
	var seq []int
	for {
		v, ok, err := tok.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return seq, nil
		}
		seq = append(seq, v)
	}
}

// ImportDescription reads a batch-format description from the file at path.
func ImportDescription(path string, maxNodes int) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDescription(f, maxNodes)
}

// ReadJSON decodes a JSON tree description from r.
//
// The input is an object with a "nodes" array; each entry names a node by id
// (1..n, where n is the array length) and optionally its children:
//
//	{
//	  "nodes": [
//	    {"id": 1, "left": 2},
//	    {"id": 2}
//	  ]
//	}
//
// ReadJSON returns an [errors.ErrCodeInvalidInput] error if the JSON is
// malformed, an id is out of range, or an id appears twice.
func ReadJSON(r io.Reader) (*Description, error) {
	var data tree
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}

	n := len(data.Nodes)
	d := NewDescription(n)
	seen := make([]bool, n+1)
	for _, nd := range data.Nodes {
		if nd.ID < 1 || nd.ID > n {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node id %d outside 1..%d", nd.ID, n)
		}
		if seen[nd.ID] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node id %d listed twice", nd.ID)
		}
		seen[nd.ID] = true
		d.Left[nd.ID], d.Right[nd.ID] = nd.Left, nd.Right
	}
	return d, nil
}

// tokenizer reads whitespace-separated integers.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

// next returns the next integer. ok is false at end of input.
func (t *tokenizer) next() (v int, ok bool, err error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read token %d", t.pos+1)
		}
		return 0, false, nil
	}
	t.pos++
	v, err = strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "token %d is not an integer", t.pos)
	}
	return v, true, nil
}
