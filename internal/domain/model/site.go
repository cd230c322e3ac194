package model

import "strings"

// SiteClient holds the client contact embedded in a site payload.
type SiteClient struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Site is the enrichment payload fetched for a site ID: address components
// plus the owning client. Any component may be empty.
type Site struct {
	Street string     `json:"street"`
	City   string     `json:"city"`
	State  string     `json:"state"`
	Zip    string     `json:"zip"`
	Client SiteClient `json:"client"`
}

// Address joins the non-empty address components with commas.
func (s Site) Address() string {
	return joinNonEmpty(", ", s.Street, s.City, s.State, s.Zip)
}

// ClientName joins the non-empty client name parts with a space.
func (s Site) ClientName() string {
	return joinNonEmpty(" ", s.Client.FirstName, s.Client.LastName)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
