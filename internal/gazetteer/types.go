package gazetteer

// StateInfo describes one Indian state or union territory and the High Court
// holding jurisdiction over it. Circuit-bench annotations are part of the
// display name (e.g. "Gauhati High Court (Itanagar Bench)").
type StateInfo struct {
	Name          string `yaml:"name" json:"name"`
	HighCourt     string `yaml:"high_court" json:"high_court"`
	HighCourtSeat string `yaml:"high_court_seat" json:"high_court_seat"`
	Capital       string `yaml:"capital" json:"capital"`
}

// District is one administrative district. HighCourt and HighCourtSeat are
// denormalized from the owning StateInfo at load time so district lookups
// never need a join; Load guarantees they always equal the owning state's
// values.
type District struct {
	Name          string `json:"district_name"`
	State         string `json:"state_name"`
	HighCourt     string `json:"high_court"`
	HighCourtSeat string `json:"high_court_seat"`
	DistrictCourt string `json:"district_court_name"`
}
