package pbxproj

import (
	"os"
	"path/filepath"
	"testing"

	sorterrors "pbxsort/internal/errors"
)

const unsortedDoc = "\t\tchildren = (\n" +
	"\t\t\tAA0000000000000000000001 /* b.m */,\n" +
	"\t\t\tAA0000000000000000000002 /* a.m */,\n" +
	"\t\t);\n"

const sortedDoc = "\t\tchildren = (\n" +
	"\t\t\tAA0000000000000000000002 /* a.m */,\n" +
	"\t\t\tAA0000000000000000000001 /* b.m */,\n" +
	"\t\t);\n"

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSortFile(t *testing.T) {
	t.Run("rewrites unsorted file", func(t *testing.T) {
		path := writeProject(t, unsortedDoc)

		changed, err := SortFile(path, Options{})
		if err != nil {
			t.Fatalf("SortFile() error = %v", err)
		}
		if !changed {
			t.Error("SortFile() changed = false, want true")
		}

		got, _ := os.ReadFile(path)
		if string(got) != sortedDoc {
			t.Errorf("file content = %q, want %q", got, sortedDoc)
		}
	})

	t.Run("sorted file is not rewritten", func(t *testing.T) {
		path := writeProject(t, sortedDoc)
		before, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}

		changed, err := SortFile(path, Options{})
		if err != nil {
			t.Fatalf("SortFile() error = %v", err)
		}
		if changed {
			t.Error("SortFile() changed = true, want false")
		}

		after, _ := os.Stat(path)
		if !after.ModTime().Equal(before.ModTime()) {
			t.Error("already-sorted file was rewritten")
		}
	})

	t.Run("fatal format error leaves file untouched", func(t *testing.T) {
		broken := "\t\tchildren = (\n\t\t\tAA0000000000000000000001 /* a.m */,\n"
		path := writeProject(t, broken)

		_, err := SortFile(path, Options{})
		if err == nil {
			t.Fatal("SortFile() expected error")
		}
		if sorterrors.CodeOf(err) != sorterrors.UnterminatedRegion {
			t.Errorf("code = %q, want UNTERMINATED_REGION", sorterrors.CodeOf(err))
		}

		got, _ := os.ReadFile(path)
		if string(got) != broken {
			t.Error("file modified despite fatal error")
		}

		entries, _ := os.ReadDir(filepath.Dir(path))
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %v", entries)
		}
	})

	t.Run("missing file reports IO failure", func(t *testing.T) {
		_, err := SortFile(filepath.Join(t.TempDir(), "project.pbxproj"), Options{})
		if sorterrors.CodeOf(err) != sorterrors.IOFailure {
			t.Errorf("code = %q, want IO_FAILURE", sorterrors.CodeOf(err))
		}
	})
}

func TestCheckFile(t *testing.T) {
	t.Run("unsorted reports false and never writes", func(t *testing.T) {
		path := writeProject(t, unsortedDoc)

		sorted, err := CheckFile(path, Options{})
		if err != nil {
			t.Fatalf("CheckFile() error = %v", err)
		}
		if sorted {
			t.Error("CheckFile() = true, want false")
		}

		got, _ := os.ReadFile(path)
		if string(got) != unsortedDoc {
			t.Error("check mode modified the file")
		}
	})

	t.Run("sorted reports true", func(t *testing.T) {
		path := writeProject(t, sortedDoc)

		sorted, err := CheckFile(path, Options{})
		if err != nil {
			t.Fatalf("CheckFile() error = %v", err)
		}
		if !sorted {
			t.Error("CheckFile() = false, want true")
		}
	})
}
