// Package identity manages the locally persisted user profile. The file
// is a soft cache of who registered from this machine; the backend owns
// the real record and can outlive or invalidate it.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Role distinguishes the two kinds of users.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleExpert    Role = "expert"
)

// ErrNotLoggedIn is returned when no usable profile exists locally,
// either because none was saved or because the saved one failed to parse.
var ErrNotLoggedIn = errors.New("not logged in")

// Profile is the minimal identity persisted after registration.
// Unknown fields from older writes are dropped on the next save.
type Profile struct {
	Role      Role   `json:"role"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	JobRole   string `json:"job_role,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	Seniority int    `json:"seniority,omitempty"`
}

// DefaultPath resolves the profile file location in priority order:
// 1. TALENTMATCH_PROFILE environment variable
// 2. $XDG_CONFIG_HOME/talentmatch/profile.json
// 3. ~/.config/talentmatch/profile.json
func DefaultPath() (string, error) {
	if p := os.Getenv("TALENTMATCH_PROFILE"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "talentmatch", "profile.json"), nil
}

// Load reads the stored profile. A missing file means ErrNotLoggedIn.
// A malformed or incomplete file is discarded (deleted, then reported
// as ErrNotLoggedIn) so a corrupt cache can never wedge the app.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		_ = os.Remove(path)
		return nil, ErrNotLoggedIn
	}
	if p.ID == "" || (p.Role != RoleCandidate && p.Role != RoleExpert) {
		_ = os.Remove(path)
		return nil, ErrNotLoggedIn
	}
	return &p, nil
}

// Save writes the profile, creating the parent directory as needed.
func Save(path string, p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// Clear removes the stored profile. Clearing an absent profile is not
// an error.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove profile: %w", err)
	}
	return nil
}
