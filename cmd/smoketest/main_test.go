package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newState() *fileState {
	return &fileState{
		path:         "test.txt",
		log:          zap.NewNop(),
		lengthCounts: make([]int, len(lengthBuckets)),
	}
}

func TestProcessChunk(t *testing.T) {
	fs := newState()
	fs.processChunk([]byte("Năm 2024 có 365 ngày, dân số 100000000 và mã 007; số lớn " +
		strings.Repeat("9", 40) + "."))

	if fs.numbers != 5 {
		t.Fatalf("numbers = %d, want 5", fs.numbers)
	}
	if fs.roundTripOK != 5 || fs.roundTripErr != 0 || fs.foldedErr != 0 {
		t.Errorf("ok=%d err=%d folded=%d, want 5/0/0", fs.roundTripOK, fs.roundTripErr, fs.foldedErr)
	}

	want := []int{2, 1, 1, 0, 1} // 365, 007 | 2024 | 100000000 | - | 40 digits
	for i, w := range want {
		if fs.lengthCounts[i] != w {
			t.Errorf("bucket %s = %d, want %d", lengthBuckets[i].label, fs.lengthCounts[i], w)
		}
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("1 22 333\n4444\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stats := &Stats{lengthCounts: make([]int, len(lengthBuckets))}
	processFile(path, stats, zap.NewNop())

	if stats.filesScanned != 1 || stats.numbers != 4 || stats.roundTripOK != 4 {
		t.Errorf("files=%d numbers=%d ok=%d, want 1/4/4", stats.filesScanned, stats.numbers, stats.roundTripOK)
	}
	if len(stats.densities) != 1 {
		t.Fatalf("densities = %d, want 1", len(stats.densities))
	}
}

func TestComputeMedian(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{nil, 0},
		{[]float64{3}, 3},
		{[]float64{5, 1, 3}, 3},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tt := range tests {
		if got := computeMedian(tt.in); got != tt.want {
			t.Errorf("computeMedian(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLastNonDigit(t *testing.T) {
	if got := lastNonDigit([]byte("ab 123")); got != 2 {
		t.Errorf("lastNonDigit = %d, want 2", got)
	}
	if got := lastNonDigit([]byte("123")); got != -1 {
		t.Errorf("lastNonDigit = %d, want -1", got)
	}
}
