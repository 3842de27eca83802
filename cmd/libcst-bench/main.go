// Command libcst-bench runs the pkg/libcst benchmark suite and archives its
// output under benchmarks/history, the way the teacher's
// scripts/generate_benchmark_report does for pkg/yaml — trimmed to the
// run-and-archive step, since the comparison-report and benchstat
// integration are out of scope for a CST library's own benchmark harness.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// runMetadata describes one archived benchmark run. It mirrors the
// teacher's BenchmarkMetadata, plus RunID: the teacher tags a run by git
// commit alone, which collides across repeated runs of the same commit; a
// uuid.New() RunID gives every run its own identity regardless of commit.
type runMetadata struct {
	RunID       string `json:"run_id"`
	Timestamp   string `json:"timestamp"`
	GitCommit   string `json:"commit"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	GoVersion   string `json:"go_version"`
	BenchTime   string `json:"bench_time"`
	Description string `json:"description"`
}

func main() {
	description := flag.String("description", "", "optional description for this run")
	benchTime := flag.String("benchtime", "1s", "benchtime passed to go test -bench")
	flag.Parse()

	projectRoot, err := findProjectRoot(".")
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("libcst benchmark run")
	fmt.Println("====================")

	output, err := runBenchmarks(projectRoot, *benchTime)
	if err != nil {
		fatal("benchmark execution failed: %v", err)
	}
	fmt.Print(output)

	if err := saveToHistory(projectRoot, output, *benchTime, *description); err != nil {
		fatal("failed to save history: %v", err)
	}
}

func findProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (looking for go.mod)")
		}
		dir = parent
	}
}

func runBenchmarks(projectRoot, benchTime string) (string, error) {
	cmd := exec.Command("go", "test", "-bench=.", "-benchmem", "-benchtime="+benchTime, "./pkg/libcst/...")
	cmd.Dir = projectRoot

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%v\nstderr: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

func saveToHistory(projectRoot, benchmarkOutput, benchTime, description string) error {
	runID := uuid.New()
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	historyDir := filepath.Join(projectRoot, "benchmarks", "history", timestamp+"_"+runID.String())

	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(historyDir, "benchmark_output.txt"), []byte(benchmarkOutput), 0o644); err != nil {
		return fmt.Errorf("writing benchmark output: %w", err)
	}

	metadata := runMetadata{
		RunID:       runID.String(),
		Timestamp:   timestamp,
		GitCommit:   gitCommit(projectRoot),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		GoVersion:   strings.TrimPrefix(runtime.Version(), "go"),
		BenchTime:   benchTime,
		Description: description,
	}
	metadataJSON, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(historyDir, "metadata.json"), metadataJSON, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	fmt.Printf("\nrun %s archived to: %s\n", runID, historyDir)
	return nil
}

func gitCommit(projectRoot string) string {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = projectRoot
	out, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
