// Package credentials reads the account store written by the login flow.
// The launch core only ever reads accounts from it.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/helixlauncher/helix/internals/fsutil"
)

// FileName is the name of the account store inside the data directory
const FileName = "accounts.helix.json"

// ErrAccountNotFound is returned if no account matches
var ErrAccountNotFound = errors.New("account not found")

// Account is a logged in minecraft account
type Account struct {
	UUID         string `json:"uuid"`
	Username     string `json:"username"`
	RefreshToken string `json:"refresh_token"`
	Token        string `json:"token"`
}

// Store is the list of accounts plus the uuid of the default one
type Store struct {
	path     string
	Accounts []Account `json:"accounts"`
	Default  string    `json:"default,omitempty"`
}

// Load reads the account store at path. A missing file results in an empty store.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		// parse json as expected
		if err := json.Unmarshal(raw, s); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return s, nil
	case os.IsNotExist(err):
		// no file is fine
		return s, nil
	default:
		// everything else is not
		return nil, err
	}
}

// Save writes the store back to disk, readable only by the current user
func (s *Store) Save() error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	f, err := fsutil.CreateAtomic(s.path)
	if err != nil {
		return err
	}
	defer f.Abort()
	if err := f.Chmod(0600); err != nil {
		return err
	}
	if _, err := f.Write(raw); err != nil {
		return err
	}
	return f.Commit()
}

// Add inserts or replaces the account with the same uuid. The first account
// becomes the default.
func (s *Store) Add(account Account) error {
	id, err := uuid.Parse(account.UUID)
	if err != nil {
		return fmt.Errorf("invalid account uuid %q: %w", account.UUID, err)
	}
	account.UUID = id.String()

	for i := range s.Accounts {
		if s.Accounts[i].UUID == account.UUID {
			s.Accounts[i] = account
			return nil
		}
	}
	s.Accounts = append(s.Accounts, account)
	if s.Default == "" {
		s.Default = account.UUID
	}
	return nil
}

// Get returns the account with the given uuid or username (case insensitive)
func (s *Store) Get(uuidOrName string) (*Account, error) {
	if id, err := uuid.Parse(uuidOrName); err == nil {
		uuidOrName = id.String()
	}
	for i := range s.Accounts {
		a := &s.Accounts[i]
		if a.UUID == uuidOrName || strings.EqualFold(a.Username, uuidOrName) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", uuidOrName, ErrAccountNotFound)
}

// Selected returns the default account, or nil if there is none
func (s *Store) Selected() *Account {
	if s.Default == "" {
		return nil
	}
	a, err := s.Get(s.Default)
	if err != nil {
		return nil
	}
	return a
}
