package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReport_PrintsMarkdownToStdout(t *testing.T) {
	newAdminServer(t, seedSnapshot())

	stdout, stderr, err := runCLI(t, []string{"report"})
	if err != nil {
		t.Fatalf("report: %v\nstderr:\n%s", err, stderr)
	}
	for _, want := range []string{"# Dashboard snapshot", "## Pharmacies", "| 2 | dana |"} {
		if !strings.Contains(string(stdout), want) {
			t.Fatalf("missing %q:\n%s", want, stdout)
		}
	}
}

func TestReport_OutFileRespectsOverwriteGuard(t *testing.T) {
	newAdminServer(t, seedSnapshot())

	path := filepath.Join(t.TempDir(), "snapshot.md")
	if _, stderr, err := runCLI(t, []string{"report", "--out", path}); err != nil {
		t.Fatalf("report --out: %v\nstderr:\n%s", err, stderr)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(b), "## Users") {
		t.Fatalf("unexpected snapshot content:\n%s", b)
	}

	_, stderr, err := runCLI(t, []string{"report", "--out", path})
	if err == nil {
		t.Fatal("expected overwrite refusal")
	}
	if !strings.Contains(string(stderr), "file exists") {
		t.Fatalf("stderr:\n%s", stderr)
	}

	if _, stderr, err := runCLI(t, []string{"report", "--out", path, "--overwrite"}); err != nil {
		t.Fatalf("report --overwrite: %v\nstderr:\n%s", err, stderr)
	}
}
