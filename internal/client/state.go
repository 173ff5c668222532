package client

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

const (
	stateDirName  = "inventoryctl"
	stateFileName = "state.json"
)

// Filters is the filter and sort set applied to a device listing.
type Filters struct {
	InUse             *bool  `json:"in_use,omitempty"`
	Location          string `json:"location,omitempty"`
	PurchaseDateStart string `json:"purchase_date_start,omitempty"`
	PurchaseDateEnd   string `json:"purchase_date_end,omitempty"`
	SortBy            string `json:"sort_by,omitempty"`
	SortOrder         string `json:"sort_order,omitempty"`
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f == (Filters{})
}

// Values encodes the filters as listing query parameters.
func (f Filters) Values() url.Values {
	values := url.Values{}
	if f.InUse != nil {
		values.Set("in_use", strconv.FormatBool(*f.InUse))
	}
	setIfNotEmpty(values, "location", f.Location)
	setIfNotEmpty(values, "purchase_date_start", f.PurchaseDateStart)
	setIfNotEmpty(values, "purchase_date_end", f.PurchaseDateEnd)
	setIfNotEmpty(values, "sort_by", f.SortBy)
	setIfNotEmpty(values, "sort_order", f.SortOrder)

	return values
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

// State is what the client keeps between invocations.
type State struct {
	Token   string   `json:"token,omitempty"`
	Filters *Filters `json:"filters,omitempty"`
}

// Store reads and writes the state file.
type Store struct {
	path string
}

// DefaultStatePath is the state file under the user config directory.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate user config dir")
	}

	return filepath.Join(dir, stateDirName, stateFileName), nil
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved state, or an empty one if nothing was saved yet.
func (s *Store) Load() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &State{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read state")
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errors.Wrapf(err, "parse state %s", s.path)
	}

	return &state, nil
}

// Save replaces the state file. The token is a credential, so the file is
// readable by its owner only.
func (s *Store) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create state dir")
	}

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode state")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), stateFileName+".*")
	if err != nil {
		return errors.Wrap(err, "create temp state")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod temp state")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write temp state")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp state")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace state")
}

// Clear removes all saved state.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove state")
	}

	return nil
}
