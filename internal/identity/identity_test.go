package identity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func profilePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "profile.json")
}

func TestSaveAndLoad(t *testing.T) {
	path := profilePath(t)

	in := &Profile{
		Role:    RoleCandidate,
		ID:      "cand-1",
		Name:    "A. Candidate",
		JobRole: "Software Engineer",
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.ID != "cand-1" || out.Role != RoleCandidate || out.JobRole != "Software Engineer" {
		t.Errorf("loaded profile = %+v, want the saved one", out)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(profilePath(t))
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("error = %v, want ErrNotLoggedIn", err)
	}
}

func TestLoad_MalformedDiscarded(t *testing.T) {
	path := profilePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("error = %v, want ErrNotLoggedIn", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("malformed profile file was not removed")
	}
}

func TestLoad_UnknownRoleDiscarded(t *testing.T) {
	path := profilePath(t)
	if err := os.WriteFile(path, []byte(`{"role":"admin","id":"x","name":"y"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("error = %v, want ErrNotLoggedIn", err)
	}
}

func TestLoad_MissingIDDiscarded(t *testing.T) {
	path := profilePath(t)
	if err := os.WriteFile(path, []byte(`{"role":"candidate","name":"y"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("error = %v, want ErrNotLoggedIn", err)
	}
}

func TestClear(t *testing.T) {
	path := profilePath(t)
	if err := Save(path, &Profile{Role: RoleExpert, ID: "exp-1", Name: "E"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := Clear(path); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrNotLoggedIn) {
		t.Error("expected ErrNotLoggedIn after clear")
	}

	// Clearing again is fine.
	if err := Clear(path); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("TALENTMATCH_PROFILE", "/tmp/custom/profile.json")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/custom/profile.json" {
		t.Errorf("path = %q, want env override", p)
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("TALENTMATCH_PROFILE", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != filepath.Join("/tmp/xdg", "talentmatch", "profile.json") {
		t.Errorf("path = %q, want XDG location", p)
	}
}
