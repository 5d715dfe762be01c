// Command smoketest walks a directory of .txt files, reads every integer it
// finds aloud and checks that the reading parses back to the same value,
// with and without diacritics.
package main

import (
	"bytes"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FuandB/vn-numtext/internal/vncase"
	"github.com/FuandB/vn-numtext/numtext"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
	bytesToKBShift = 10
	outlierFactor  = 3
)

// lengthBuckets groups numbers by digit count for the report.
var lengthBuckets = []struct {
	label string
	max   int
}{
	{"1-3 digits", 3},
	{"4-6 digits", 6},
	{"7-9 digits", 9},
	{"10-18 digits", 18},
	{"19+ digits", int(^uint(0) >> 1)},
}

type fileDensity struct {
	path    string
	numbers int
	kb      float64
	ratio   float64
}

// Stats aggregates results across files.
type Stats struct {
	mu           sync.Mutex
	filesScanned int
	totalBytes   int64
	numbers      int
	roundTripOK  int
	roundTripErr int
	foldedErr    int
	filesFailed  int
	densityHigh  int
	lengthCounts []int
	densities    []fileDensity
}

type fileState struct {
	path         string
	log          *zap.Logger
	totalBytes   int64
	numbers      int
	roundTripOK  int
	roundTripErr int
	foldedErr    int
	failLogged   bool
	lengthCounts []int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	dirPath := os.Args[1]
	stats := &Stats{lengthCounts: make([]int, len(lengthBuckets))}

	var filePaths []string
	err = filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		log.Fatal("walking directory", zap.String("dir", dirPath), zap.Error(err))
	}

	log.Info("found files", zap.Int("count", len(filePaths)))
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range filePaths {
		g.Go(func() error {
			processFile(path, stats, log)
			return nil
		})
	}
	_ = g.Wait()

	flagDensityOutliers(stats, log)

	log.Info("completed", zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	printStats(stats)

	if stats.roundTripErr > 0 || stats.foldedErr > 0 {
		os.Exit(1)
	}
}

func processFile(path string, stats *Stats, log *zap.Logger) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		log.Error("opening file", zap.String("path", path), zap.Error(err))
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		log.Error("stat file", zap.String("path", path), zap.Error(err))
		return
	}
	log.Debug("start", zap.String("path", path), zap.Int64("mb", info.Size()>>bytesToMBShift))
	fileStart := time.Now()

	state := &fileState{
		path:         path,
		log:          log,
		lengthCounts: make([]int, len(lengthBuckets)),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				// Cut at the last non-digit so no number straddles two chunks.
				if idx := lastNonDigit(chunk); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	log.Debug("done",
		zap.String("file", filepath.Base(path)),
		zap.Duration("elapsed", time.Since(fileStart).Round(time.Millisecond)),
		zap.Int("numbers", state.numbers))

	mergeFileState(state, stats)
}

// processChunk checks every maximal run of ASCII digits in chunk.
func (fs *fileState) processChunk(chunk []byte) {
	fs.totalBytes += int64(len(chunk))

	for i := 0; i < len(chunk); {
		if !isDigit(chunk[i]) {
			i++
			continue
		}
		j := i
		for j < len(chunk) && isDigit(chunk[j]) {
			j++
		}
		fs.check(string(chunk[i:j]))
		i = j
	}
}

func (fs *fileState) check(digits string) {
	fs.numbers++
	fs.lengthCounts[bucketFor(len(digits))]++

	n, err := numtext.ParseInt(digits)
	if err != nil {
		fs.fail(digits, "", err)
		fs.roundTripErr++
		return
	}
	text := numtext.ConvertBig(n)

	if !parsesTo(text, n) {
		fs.fail(digits, text, nil)
		fs.roundTripErr++
		return
	}
	fs.roundTripOK++

	if folded := vncase.Fold(text); !parsesTo(folded, n) {
		fs.fail(digits, folded, nil)
		fs.foldedErr++
	}
}

func parsesTo(text string, want *big.Int) bool {
	got, err := numtext.Parse(text)
	return err == nil && got.Cmp(want) == 0
}

// fail logs the first failure of each file.
func (fs *fileState) fail(digits, text string, err error) {
	if fs.failLogged {
		return
	}
	fs.failLogged = true
	fs.log.Warn("round trip failed",
		zap.String("path", fs.path),
		zap.String("digits", digits),
		zap.String("text", text),
		zap.Error(err))
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.numbers += fs.numbers
	stats.roundTripOK += fs.roundTripOK
	stats.roundTripErr += fs.roundTripErr
	stats.foldedErr += fs.foldedErr
	if fs.failLogged {
		stats.filesFailed++
	}

	for i, count := range fs.lengthCounts {
		stats.lengthCounts[i] += count
	}

	kb := float64(fs.totalBytes) / (1 << bytesToKBShift)
	ratio := 0.0
	if kb > 0 {
		ratio = float64(fs.numbers) / kb
	}
	stats.densities = append(stats.densities, fileDensity{
		path:    fs.path,
		numbers: fs.numbers,
		kb:      kb,
		ratio:   ratio,
	})
}

// flagDensityOutliers computes the median numbers-per-KB ratio across all
// files and flags any file whose ratio exceeds outlierFactor times the median.
func flagDensityOutliers(stats *Stats, log *zap.Logger) {
	if len(stats.densities) == 0 {
		return
	}

	ratios := make([]float64, len(stats.densities))
	for i, d := range stats.densities {
		ratios[i] = d.ratio
	}
	med := computeMedian(ratios)

	for _, d := range stats.densities {
		if med > 0 && d.ratio > outlierFactor*med {
			stats.densityHigh++
			log.Info("number density outlier",
				zap.String("path", d.path),
				zap.Int("numbers", d.numbers),
				zap.Float64("kb", d.kb),
				zap.Float64("ratio", d.ratio),
				zap.Float64("median", med))
		}
	}
}

func lastNonDigit(b []byte) int {
	return bytes.LastIndexFunc(b, func(r rune) bool { return r < '0' || r > '9' })
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func bucketFor(digits int) int {
	for i, b := range lengthBuckets {
		if digits <= b.max {
			return i
		}
	}
	return len(lengthBuckets) - 1
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Numbers checked:         %d\n", stats.numbers)
	fmt.Printf("Round trip OK:           %d\n", stats.roundTripOK)
	fmt.Printf("Round trip FAIL:         %d\n", stats.roundTripErr)
	fmt.Printf("Folded round trip FAIL:  %d\n", stats.foldedErr)
	fmt.Printf("Files with failures:     %d\n", stats.filesFailed)
	fmt.Printf("Density outliers:        %d\n", stats.densityHigh)
	fmt.Println()

	fmt.Println("Digit count distribution:")
	for i, b := range lengthBuckets {
		count := stats.lengthCounts[i]
		percentage := 0.0
		if stats.numbers > 0 {
			percentage = float64(count) / float64(stats.numbers) * 100
		}
		fmt.Printf("  %-15s %d  (%.1f%%)\n", b.label+":", count, percentage)
	}
}
