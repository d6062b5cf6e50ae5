package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zephyrtronium/lispcalc"
)

// runner evaluates lines of input and writes their results.
type runner struct {
	ctx *lispcalc.Context
	out *bufio.Writer
	// verb formats numeric results. Other results print with %v.
	verb string
	// echo prints the canonical form of each expression before its result.
	echo bool
}

// line parses and evaluates one line, then writes the result or the error.
// It reports whether there was a result.
func (r *runner) line(src string) bool {
	a, err := lispcalc.Parse(src)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return false
	}
	if r.echo {
		fmt.Fprintf(r.out, "%v : ", a)
	}
	v, err := r.ctx.Eval(a)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return false
	}
	if n, ok := v.(lispcalc.Number); ok {
		fmt.Fprintf(r.out, r.verb, float64(n))
	} else {
		fmt.Fprintln(r.out, v)
	}
	return true
}

// loop evaluates each non-blank line of in until EOF and returns the number
// of lines that failed. If prompt is not empty, it is written before reading
// each line, and output is flushed after each one.
func (r *runner) loop(in io.Reader, prompt string) (int, error) {
	sc := bufio.NewScanner(in)
	failed := 0
	for {
		if prompt != "" {
			r.out.WriteString(prompt)
			r.out.Flush()
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !r.line(line) {
			failed++
		}
	}
	return failed, sc.Err()
}
