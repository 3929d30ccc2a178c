package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Accounts) != 0 || s.Selected() != nil {
		t.Errorf("expected an empty store, got %+v", s)
	}
}

func TestAddSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, _ := Load(path)

	if err := s.Add(Account{UUID: "069A79F444E94726A5BEFCA90E38AAF5", Username: "Notch", Token: "t1"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(Account{UUID: "853c80ef-3c37-49fd-aa49-938b674adae6", Username: "jeb_", Token: "t2"}); err != nil {
		t.Fatal(err)
	}
	// replaces the first account
	if err := s.Add(Account{UUID: "069a79f4-44e9-4726-a5be-fca90e38aaf5", Username: "Notch", Token: "t3"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	if runtime.GOOS != "windows" {
		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm() != 0600 {
			t.Errorf("account store should be private, mode is %s", stat.Mode())
		}
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(loaded.Accounts))
	}
	selected := loaded.Selected()
	if selected == nil || selected.Username != "Notch" || selected.Token != "t3" {
		t.Errorf("unexpected default account %+v", selected)
	}

	jeb, err := loaded.Get("JEB_")
	if err != nil || jeb.Token != "t2" {
		t.Errorf("lookup by name failed: %v %+v", err, jeb)
	}
	if _, err := loaded.Get("nobody"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAddInvalidUUID(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), FileName))
	if err := s.Add(Account{UUID: "not-a-uuid"}); err == nil {
		t.Fatal("expected an error")
	}
}
