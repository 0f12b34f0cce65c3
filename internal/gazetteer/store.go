package gazetteer

import (
	"embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Store holds the canonical state/district/place/taluk tables. It is built
// once by Load and never mutated afterwards, so it is safe to share across
// any number of goroutines.
type Store struct {
	states    map[string]StateInfo // lower-cased state name -> info
	districts map[string]District  // lower-cased district name -> entry
	places    map[string]string    // lower-cased place alias -> lower-cased district key
	taluks    map[string]string    // lower-cased taluk alias -> lower-cased district key
}

type statesFile struct {
	States []StateInfo `yaml:"states"`
}

type districtsFile struct {
	Districts []struct {
		Name          string `yaml:"name"`
		State         string `yaml:"state"`
		DistrictCourt string `yaml:"district_court"`
	} `yaml:"districts"`
}

type aliasFile struct {
	Taluks map[string]string `yaml:"taluks"`
	Places map[string]string `yaml:"places"`
}

// Load parses the embedded reference data and builds the store. District
// court fields are derived from the owning state here, not carried in the
// data files, so the denormalization invariant holds by construction. Any
// district naming an unknown state, or alias naming an unknown district, is
// a data-entry error and fails the load.
func Load() (*Store, error) {
	s := &Store{
		states:    make(map[string]StateInfo),
		districts: make(map[string]District),
		places:    make(map[string]string),
		taluks:    make(map[string]string),
	}

	raw, err := dataFS.ReadFile("data/states.yaml")
	if err != nil {
		return nil, fmt.Errorf("read states.yaml: %w", err)
	}
	var sf statesFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse states.yaml: %w", err)
	}
	for _, st := range sf.States {
		key := strings.ToLower(st.Name)
		if _, dup := s.states[key]; dup {
			return nil, fmt.Errorf("duplicate state %q", st.Name)
		}
		s.states[key] = st
	}

	raw, err = dataFS.ReadFile("data/districts.yaml")
	if err != nil {
		return nil, fmt.Errorf("read districts.yaml: %w", err)
	}
	var df districtsFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("parse districts.yaml: %w", err)
	}
	for _, d := range df.Districts {
		st, ok := s.states[strings.ToLower(d.State)]
		if !ok {
			return nil, fmt.Errorf("district %q references unknown state %q", d.Name, d.State)
		}
		court := d.DistrictCourt
		if court == "" {
			court = fmt.Sprintf("District Court, %s", d.Name)
		}
		key := strings.ToLower(d.Name)
		if _, dup := s.districts[key]; dup {
			return nil, fmt.Errorf("duplicate district %q", d.Name)
		}
		s.districts[key] = District{
			Name:          d.Name,
			State:         st.Name,
			HighCourt:     st.HighCourt,
			HighCourtSeat: st.HighCourtSeat,
			DistrictCourt: court,
		}
	}

	raw, err = dataFS.ReadFile("data/aliases.yaml")
	if err != nil {
		return nil, fmt.Errorf("read aliases.yaml: %w", err)
	}
	var af aliasFile
	if err := yaml.Unmarshal(raw, &af); err != nil {
		return nil, fmt.Errorf("parse aliases.yaml: %w", err)
	}
	for alias, district := range af.Taluks {
		key := strings.ToLower(district)
		if _, ok := s.districts[key]; !ok {
			return nil, fmt.Errorf("taluk %q references unknown district %q", alias, district)
		}
		s.taluks[strings.ToLower(alias)] = key
	}
	for alias, district := range af.Places {
		key := strings.ToLower(district)
		if _, ok := s.districts[key]; !ok {
			return nil, fmt.Errorf("place %q references unknown district %q", alias, district)
		}
		s.places[strings.ToLower(alias)] = key
	}

	return s, nil
}

// State returns the StateInfo for a state name (case-insensitive).
func (s *Store) State(name string) (StateInfo, bool) {
	st, ok := s.states[strings.ToLower(name)]
	return st, ok
}

// District returns the entry for a district name (case-insensitive).
func (s *Store) District(name string) (District, bool) {
	d, ok := s.districts[strings.ToLower(name)]
	return d, ok
}

// States returns the state table keyed by lower-cased name. Callers must
// treat the returned map as read-only.
func (s *Store) States() map[string]StateInfo { return s.states }

// Districts returns the district table keyed by lower-cased name. Callers
// must treat the returned map as read-only.
func (s *Store) Districts() map[string]District { return s.districts }

// PlaceAliases returns the place alias table (lower-cased alias ->
// lower-cased district key). Read-only.
func (s *Store) PlaceAliases() map[string]string { return s.places }

// TalukAliases returns the taluk alias table (lower-cased alias ->
// lower-cased district key). Read-only.
func (s *Store) TalukAliases() map[string]string { return s.taluks }
