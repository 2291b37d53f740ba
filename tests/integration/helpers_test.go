// Package integration provides shared test helpers for integration tests.
package integration

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mesh-intelligence/tally/pkg/types"
)

var (
	tallyBin string
	buildErr error
)

// TestMain builds the tally binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	tmpDir, err := os.MkdirTemp("", "tally-test-*")
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}
	tallyBin = filepath.Join(tmpDir, "tally")

	cmd := exec.Command("go", "build", "-o", tallyBin, "./cmd/tally")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = fmt.Errorf("build tally: %w\n%s", err, output)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// cmdResult holds the output of one tally invocation.
type cmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// testEnv runs the tally binary against isolated config and data
// directories. Each test gets its own environment.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("tally binary not built: %v", buildErr)
	}
	return &testEnv{
		t:         t,
		configDir: t.TempDir(),
		dataDir:   t.TempDir(),
	}
}

// run invokes tally with the environment's directories and returns the
// result, whatever the exit code.
func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()

	cmd := exec.Command(tallyBin, args...)
	cmd.Env = append(os.Environ(),
		"TALLY_CONFIG_DIR="+e.configDir,
		"TALLY_DATA_DIR="+e.dataDir,
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := cmdResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("run tally %v: %v", args, err)
		}
	}
	return result
}

// mustRun invokes tally and fails the test on a non-zero exit.
func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	result := e.run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("tally %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// mustLoad loads the store from an adapter or fails the test.
func mustLoad(t *testing.T, a types.Adapter) *types.TaskStore {
	t.Helper()
	store, err := a.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

// mustSave saves the store through an adapter or fails the test.
func mustSave(t *testing.T, a types.Adapter, store *types.TaskStore) {
	t.Helper()
	if err := a.Save(store); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
