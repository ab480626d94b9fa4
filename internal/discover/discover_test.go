package discover

import (
	"os"
	"path/filepath"
	"testing"

	sorterrors "pbxsort/internal/errors"
)

func TestResolve(t *testing.T) {
	t.Run("project file passes through", func(t *testing.T) {
		got, err := Resolve("App.xcodeproj/project.pbxproj")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got != "App.xcodeproj/project.pbxproj" {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("xcodeproj bundle resolves inside", func(t *testing.T) {
		got, err := Resolve("App.xcodeproj")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if got != filepath.Join("App.xcodeproj", "project.pbxproj") {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("other files are rejected", func(t *testing.T) {
		_, err := Resolve("notes.txt")
		if err == nil {
			t.Fatal("Resolve() expected error")
		}
		if sorterrors.CodeOf(err) != sorterrors.NotAProjectFile {
			t.Errorf("code = %q, want NOT_A_PROJECT_FILE", sorterrors.CodeOf(err))
		}
		if sorterrors.IsFatal(err) {
			t.Error("NotAProjectFile must not be fatal")
		}
	})
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "App", "App.xcodeproj")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, ProjectFileName), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	found, err := Find(dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(found) != 1 || filepath.Base(found[0]) != ProjectFileName {
		t.Errorf("Find() = %v, want one project.pbxproj", found)
	}
}
