package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPredicates(t *testing.T) {
	archivePkg := PackageImportForbidden("zoocore/internal/archive")
	cases := []struct {
		name string
		pred ImportPredicate
		in   string
		want bool
	}{
		{"internal", InternalImportForbidden, "zoocore/internal/core", true},
		{"internal pkg", InternalImportForbidden, "zoocore/pkg/domain", false},
		{"infra driver", InfraImportForbidden, "zoocore/internal/infra/archive/s3", true},
		{"infra root", InfraImportForbidden, "zoocore/internal/infra", true},
		{"infra lookalike", InfraImportForbidden, "zoocore/internal/infrastructure", false},
		{"package exact", archivePkg, "zoocore/internal/archive", true},
		{"package child", archivePkg, "zoocore/internal/archive/core", true},
		{"package sibling", archivePkg, "zoocore/internal/archiver", false},
		{"any of", AnyOf(nil, InfraImportForbidden, archivePkg), "zoocore/internal/archive", true},
		{"any of none", AnyOf(), "fmt", false},
	}
	for _, tc := range cases {
		if got := tc.pred(tc.in); got != tc.want {
			t.Fatalf("%s: predicate(%q)=%v want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func writeFile(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestAssertNoDirectImportsIgnoresTestsAndDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.go", "package tmp\nimport \"fmt\"\nfunc X() { fmt.Println(1) }\n")
	writeFile(t, dir, "x_test.go", "package tmp\nimport \"zoocore/internal/infra/archive/fs\"\n")
	writeFile(t, dir, "notes.txt", "import \"zoocore/internal/infra\"")
	if err := os.Mkdir(filepath.Join(dir, "sub.go"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	AssertNoDirectImports(t, dir, InfraImportForbidden, "no infra")
}

type recordingFatal struct{ msg string }

func (r *recordingFatal) Fatalf(format string, args ...any) { r.msg = fmt.Sprintf(format, args...) }

func TestDirectImportViolationsReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.go", "package tmp\nimport _ \"zoocore/internal/infra/archive/s3\"\n")
	writeFile(t, dir, "a.go", "package tmp\nimport (\n\t\"fmt\"\n\t_ \"zoocore/internal/infra/archive/fs\"\n)\nvar _ = fmt.Sprint\n")

	viols, err := directImportViolations(dir, InfraImportForbidden)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(viols) != 2 || !strings.HasSuffix(viols[0], "(in a.go)") {
		t.Fatalf("unexpected violations %v", viols)
	}

	rec := &recordingFatal{}
	failIfDirectViolations(rec, "core stays driver agnostic", viols)
	if !strings.Contains(rec.msg, "core stays driver agnostic") || !strings.Contains(rec.msg, "archive/s3") {
		t.Fatalf("unexpected failure message %q", rec.msg)
	}
	rec = &recordingFatal{}
	failIfDirectViolations(rec, "none", nil)
	if rec.msg != "" {
		t.Fatalf("expected no failure, got %q", rec.msg)
	}
}

func TestDirectImportViolationsErrors(t *testing.T) {
	if _, err := directImportViolations(filepath.Join(t.TempDir(), "missing"), InfraImportForbidden); err == nil {
		t.Fatalf("expected missing dir to fail")
	}
	dir := t.TempDir()
	writeFile(t, dir, "bad.go", "package tmp\nimport (\n")
	if _, err := directImportViolations(dir, InfraImportForbidden); err == nil {
		t.Fatalf("expected parse error")
	}
}
