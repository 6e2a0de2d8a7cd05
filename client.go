package freelance

import (
	"fmt"
	"strings"
)

// LeadSource is the origin of a client relationship.
type LeadSource string

const (
	LeadLinkedIn    LeadSource = "LinkedIn"
	LeadWebsite     LeadSource = "Website"
	LeadDirectEmail LeadSource = "Direct Email"
	LeadReferral    LeadSource = "Referral"
	LeadOther       LeadSource = "Other"
)

// leadSources lists the known values, in display order.
var leadSources = []LeadSource{LeadLinkedIn, LeadWebsite, LeadDirectEmail, LeadReferral, LeadOther}

// ParseLeadSource parses a string into a LeadSource, case-insensitively.
func ParseLeadSource(s string) (LeadSource, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, l := range leadSources {
		if strings.ToLower(string(l)) == needle {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown lead source %q (valid: %s)", s, joinLeadSources())
}

func joinLeadSources() string {
	names := make([]string, len(leadSources))
	for i, l := range leadSources {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// Client is a client record. The id is unique within a user's book.
type Client struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone string     `json:"phone"`
	Lead  LeadSource `json:"lead"`
}
