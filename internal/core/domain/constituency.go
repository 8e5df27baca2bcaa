package domain

// Constituency is immutable reference data provisioned before any voting starts.
type Constituency struct {
	ConstituencyID  string `json:"constituencyID"`
	Name            string `json:"name"`
	Region          string `json:"region"`
	TotalRegistered int    `json:"totalRegistered"`
}
