// Command vecinfo prints the growth schedule of a vector.
//
// Usage:
//
//	vecinfo [flags]
//
// It appends -n integers to a fresh vector and reports every reallocation
// together with the number of elements copied, followed by the amortized
// copy cost per append.
//
// Examples:
//
//	vecinfo
//	vecinfo -n 100000
//	vecinfo -initial 0 -factor 3 -n 50
//	vecinfo -max 1000 -n 5000
//	vecinfo -cpu
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/vector"
)

// growthEvent records one reallocation triggered by an append.
type growthEvent struct {
	index  int // index of the element whose append triggered growth
	oldCap int
	newCap int
	copied int
}

type trace struct {
	events []growthEvent
	length int
	cap    int
	copies int
	err    error
}

func main() {
	initial := flag.Int("initial", vector.DefaultInitialCapacity, "initial capacity in slots")
	factor := flag.Int("factor", vector.DefaultGrowthFactor, "capacity growth factor (>= 2)")
	maxCap := flag.Int("max", 0, "maximum capacity, 0 for unlimited")
	n := flag.Int("n", 1000, "number of elements to append")
	showCPU := flag.Bool("cpu", false, "print the SIMD features used by the float64 kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the growth schedule of a vector for a sequence of appends.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -n 100000\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -initial 0 -factor 3 -n 50\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -cpu\n")
	}
	flag.Parse()

	if *showCPU {
		printFeatures(os.Stdout, cpu.DetectFeatures())
		return
	}
	if *n < 0 {
		fmt.Fprintf(os.Stderr, "error: -n must be >= 0\n")
		os.Exit(1)
	}

	opts := []vector.Option{
		vector.WithInitialCapacity(*initial),
		vector.WithGrowthFactor(*factor),
		vector.WithMaxCapacity(*maxCap),
	}
	tr, err := traceGrowth(*n, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := printTrace(os.Stdout, tr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
	if tr.err != nil {
		fmt.Fprintf(os.Stderr, "error: stopped after %d appends: %v\n", tr.length, tr.err)
		os.Exit(1)
	}
}

// traceGrowth appends n elements and records each capacity change. An append
// failure ends the trace early and is kept in trace.err; only a failed
// initialization is returned as an error.
func traceGrowth(n int, opts ...vector.Option) (trace, error) {
	v, err := vector.New[int](opts...)
	if err != nil {
		return trace{}, err
	}
	defer v.Release()

	var tr trace
	for i := 0; i < n; i++ {
		before := v.Cap()
		if err := v.Append(i); err != nil {
			tr.err = err
			break
		}
		if v.Cap() != before {
			tr.events = append(tr.events, growthEvent{
				index:  i,
				oldCap: before,
				newCap: v.Cap(),
				copied: i,
			})
			tr.copies += i
		}
	}
	tr.length = v.Len()
	tr.cap = v.Cap()
	return tr, nil
}

func printTrace(w io.Writer, tr trace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Append\tOld Cap\tNew Cap\tCopied\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t-------\t------\n"); err != nil {
		return err
	}
	for _, e := range tr.events {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", e.index, e.oldCap, e.newCap, e.copied); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	perAppend := 0.0
	if tr.length > 0 {
		perAppend = float64(tr.copies) / float64(tr.length)
	}
	_, err := fmt.Fprintf(w, "\nlen=%d cap=%d growths=%d copies=%d copies/append=%.3f\n",
		tr.length, tr.cap, len(tr.events), tr.copies, perAppend)
	return err
}

func printFeatures(w io.Writer, f cpu.Features) {
	fmt.Fprintf(w, "arch=%s sse2=%t avx2=%t neon=%t generic=%t\n",
		f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON, f.ForceGeneric)
}
