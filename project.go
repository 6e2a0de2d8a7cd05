package freelance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is a project's lifecycle state.
type Status string

const (
	Planning   Status = "Planning"
	InProgress Status = "In Progress"
	Completed  Status = "Completed"
)

var statuses = []Status{Planning, InProgress, Completed}

// ParseStatus parses a string into a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, st := range statuses {
		if strings.ToLower(string(st)) == needle {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (valid: Planning, In Progress, Completed)", s)
}

// Project is a project record. ClientID should reference a Client id, but a
// dangling reference is tolerated and renders as an empty client name.
type Project struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	ClientID int             `json:"clientId"`
	Status   Status          `json:"status"`
	Deadline Date            `json:"deadline"`
	Fee      decimal.Decimal `json:"fee"`
}

// ProjectFilter selects projects from a book. The zero value matches all.
// Predicates are ANDed.
type ProjectFilter struct {
	Status   Status           // "" matches any status
	ClientID int              // 0 matches any client (ids start at 1)
	MinFee   *decimal.Decimal // nil for no lower bound, inclusive otherwise
	MaxFee   *decimal.Decimal // nil for no upper bound, inclusive otherwise
}

// Match reports whether p passes every set predicate of the filter.
func (f ProjectFilter) Match(p Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.ClientID != 0 && p.ClientID != f.ClientID {
		return false
	}
	if f.MinFee != nil && p.Fee.LessThan(*f.MinFee) {
		return false
	}
	if f.MaxFee != nil && p.Fee.GreaterThan(*f.MaxFee) {
		return false
	}
	return true
}
