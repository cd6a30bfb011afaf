// Package main provides a performance benchmarking tool for the Tracktides CLI.
// It measures execution times across different log sizes and command types,
// running each test multiple times against the in-memory sample store and a
// seeded SQLite store, and writes CSV output for performance analysis.
//
// Prerequisites:
// - tracktides binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Scratch directory that holds one SQLite file per log size
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (in-memory average, SQLite cold run and average of warm runs).
type BenchmarkResult struct {
	LogDays    int
	Command    string
	MemoryTime string
	ColdTime   string
	WarmTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir    string
	Timeout    time.Duration
	MemoryRuns int
	SQLiteRuns int
	LogSizes   []int
}

// benchCommand is one command under test with a stable display name.
type benchCommand struct {
	Name string
	Args string
}

// benchCommands lists the command suite in the order it runs and prints.
var benchCommands = []benchCommand{
	{Name: "chart-month", Args: "chart all --range M"},
	{Name: "chart-6m", Args: "chart all --range 6M"},
	{Name: "chart-year", Args: "chart all --range Y"},
	{Name: "summary", Args: "summary"},
	{Name: "shots", Args: "shots"},
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:    os.Args[1],
		Timeout:    2 * time.Minute,
		MemoryRuns: 3,
		SQLiteRuns: 4,
		LogSizes:   []int{90, 400, 1500, 5000},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the tracktides binary and work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("tracktides"); err != nil {
		return fmt.Errorf("tracktides binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured log sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d log sizes, %v timeout, memory: %d runs, sqlite: %d runs\n",
		len(config.LogSizes), config.Timeout, config.MemoryRuns, config.SQLiteRuns)

	for _, days := range config.LogSizes {
		fmt.Printf("Benchmarking %d days\n", days)

		dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("tracktides_%d.db", days))
		if err := seedStore(dbPath, days); err != nil {
			fmt.Printf("Warning: failed to seed %s: %v\n", dbPath, err)
			continue
		}

		for _, bc := range benchCommands {
			results = append(results, runBenchmarkSuite(config, days, dbPath, bc))
		}
	}

	return results
}

// seedStore recreates the SQLite file for one log size.
func seedStore(dbPath string, days int) error {
	_ = os.Remove(dbPath)
	cmd := exec.Command("tracktides", "entries", "seed",
		"--store-backend", "sqlite", "--store-db-connect", dbPath,
		"--sample-days", strconv.Itoa(days))
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w\nOutput: %s", err, string(output))
	}
	return nil
}

// runBenchmarkSuite runs both in-memory and SQLite benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, days int, dbPath string, bc benchCommand) BenchmarkResult {
	fmt.Printf("Running %s on %d days\n", bc.Name, days)

	// Helper to run a benchmark phase
	runPhase := func(storeArgs []string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		args := append(strings.Fields(bc.Args), storeArgs...)
		cold, times := runBenchmark(config, args, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: in-memory sample store, generated on every run
	memoryArgs := []string{"--store-backend", "none", "--sample-days", strconv.Itoa(days)}
	_, memoryAvg := runPhase(memoryArgs, config.MemoryRuns, "Memory")

	// Phase 2: seeded SQLite store
	sqliteArgs := []string{"--store-backend", "sqlite", "--store-db-connect", dbPath}
	coldTime, warmAvg := runPhase(sqliteArgs, config.SQLiteRuns, "SQLite")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  Memory average: %s, Cold time: %s, Warm average: %s\n", memoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		LogDays:    days,
		Command:    bc.Name,
		MemoryTime: memoryAvg,
		ColdTime:   coldTimeStr,
		WarmTime:   warmAvg,
	}
}

// runBenchmark executes a tracktides command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string, numRuns int) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("tracktides", args...)
		cmd.Dir = config.WorkDir

		done := make(chan bool, 1)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, args[0]) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	switch command {
	case "chart":
		return strings.Contains(outputStr, "Rendered") && strings.Contains(outputStr, "charts in")
	case "shots":
		return strings.Contains(outputStr, "Total shots:")
	default:
		return strings.Contains(outputStr, "Loaded")
	}
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/tracktides_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"log_days", "cmd", "memory_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		row := []string{strconv.Itoa(result.LogDays), result.Command, result.MemoryTime, result.ColdTime, result.WarmTime}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, bc := range benchCommands {
		fmt.Printf("%s:\n", bc.Name)
		for _, result := range results {
			if result.Command == bc.Name {
				fmt.Printf("  %6d days: Memory: %s, Cold: %s, Warm: %s\n", result.LogDays, result.MemoryTime, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
