package domain

import (
	"strings"
	"time"
)

// DateLayout is how discovery dates are written to the store.
const DateLayout = "2006-01-02"

// Columns is the canonical row header, shared by every store and platform.
var Columns = []string{
	"Name",
	"Username",
	"Platform",
	"Bio/Header",
	"Open To Work",
	"Profile URL",
	"Matched Keyword",
	"Discovery Date",
	"Contacted",
	"Notes",
}

// ProfileURLColumn is the header of the dedup key column.
const ProfileURLColumn = "Profile URL"

type Lead struct {
	Name         string
	Username     string
	Platform     Platform
	Bio          string
	OpenToWork   bool
	ProfileURL   string // normalized, unique across the store
	Keyword      string
	DiscoveredOn time.Time
	Contacted    bool
	Notes        string
}

// Row renders the lead in Columns order.
func (l Lead) Row() []string {
	return []string{
		l.Name,
		l.Username,
		string(l.Platform),
		l.Bio,
		yesNo(l.OpenToWork),
		l.ProfileURL,
		l.Keyword,
		l.DiscoveredOn.Format(DateLayout),
		strings.ToUpper(boolString(l.Contacted)),
		l.Notes,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
