package compare

import (
	"bufio"
	"fmt"
	"io"

	"gitlab.com/rogov-ks/numcmp/numseq"
)

const (
	sameLine = "The files contain the same set of numbers (with the same frequency)."
	diffLine = "The files do not contain the same set of numbers."
)

// Render writes the human-readable report for r.
func Render(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)

	if r.Equal {
		fmt.Fprintln(bw, sameLine)
		return bw.Flush()
	}

	fmt.Fprintln(bw, diffLine)
	fmt.Fprintf(bw, "Number of numbers in %s: %d\n", r.First.Path, r.First.Count)
	fmt.Fprintf(bw, "Number of numbers in %s: %d\n", r.Second.Path, r.Second.Count)
	writeExcess(bw, r.First.Path, r.Second.Path, r.FirstExcess)
	writeExcess(bw, r.Second.Path, r.First.Path, r.SecondExcess)

	return bw.Flush()
}

func writeExcess(w io.Writer, from, to string, excess *Freq) {
	if excess == nil || excess.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "Numbers in %s but not in %s:\n", from, to)
	excess.Each(func(n numseq.Number, count int) {
		fmt.Fprintf(w, "Number %s occurs %d time(s)\n", n, count)
	})
}
