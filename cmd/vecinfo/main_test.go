package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-vector/vector"
)

func TestTraceGrowthDefaults(t *testing.T) {
	tr, err := traceGrowth(401)
	if err != nil {
		t.Fatalf("traceGrowth() error = %v", err)
	}
	if tr.length != 401 || tr.cap != 800 {
		t.Fatalf("len/cap = %d/%d, want 401/800", tr.length, tr.cap)
	}
	want := []growthEvent{
		{index: 100, oldCap: 100, newCap: 200, copied: 100},
		{index: 200, oldCap: 200, newCap: 400, copied: 200},
		{index: 400, oldCap: 400, newCap: 800, copied: 400},
	}
	if len(tr.events) != len(want) {
		t.Fatalf("events = %v, want %v", tr.events, want)
	}
	for i := range want {
		if tr.events[i] != want[i] {
			t.Fatalf("events[%d] = %+v, want %+v", i, tr.events[i], want[i])
		}
	}
	if tr.copies != 700 {
		t.Fatalf("copies = %d, want 700", tr.copies)
	}
}

func TestTraceGrowthStopsAtMax(t *testing.T) {
	tr, err := traceGrowth(10,
		vector.WithInitialCapacity(2),
		vector.WithMaxCapacity(4),
	)
	if err != nil {
		t.Fatalf("traceGrowth() error = %v", err)
	}
	if !errors.Is(tr.err, vector.ErrAllocation) {
		t.Fatalf("trace err = %v, want ErrAllocation", tr.err)
	}
	if tr.length != 4 || tr.cap != 4 {
		t.Fatalf("len/cap = %d/%d, want 4/4", tr.length, tr.cap)
	}
}

func TestTraceGrowthInvalidConfig(t *testing.T) {
	_, err := traceGrowth(1, vector.WithInitialCapacity(8), vector.WithMaxCapacity(4))
	if !errors.Is(err, vector.ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestPrintTrace(t *testing.T) {
	tr, _ := traceGrowth(3, vector.WithInitialCapacity(1))
	var buf bytes.Buffer
	if err := printTrace(&buf, tr); err != nil {
		t.Fatalf("printTrace() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "len=3 cap=4 growths=2 copies=3 copies/append=1.000") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestPrintFeatures(t *testing.T) {
	var buf bytes.Buffer
	printFeatures(&buf, cpu.Features{HasSSE2: true, Architecture: "amd64"})
	want := "arch=amd64 sse2=true avx2=false neon=false generic=false\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
