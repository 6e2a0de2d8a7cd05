package freelance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats are the aggregate figures shown on the statistics screen. They are
// recomputed in full from the collections on every call.
type Stats struct {
	// TotalEarnings is the sum of fees over completed projects.
	TotalEarnings Money
	// ProjectsCompleted is the number of completed projects.
	ProjectsCompleted int
	// Clients is the number of client records, the headline "Total Clients"
	// figure.
	Clients int
	// ActiveClients is the number of distinct clients referenced by at least
	// one project, completed or not.
	ActiveClients int
	// AverageProjectValue is TotalEarnings over ProjectsCompleted, zero when
	// nothing is completed.
	AverageProjectValue Money
}

// Stats computes the aggregate figures for the book. Fees are summed as
// exact decimals; currency is only used for display.
func (b *Book) Stats(currency string) Stats {
	s := Stats{
		TotalEarnings:       M(decimal.Zero, currency),
		AverageProjectValue: M(decimal.Zero, currency),
		Clients:             len(b.clients),
	}
	referenced := make(map[int]struct{})
	for _, p := range b.projects {
		referenced[p.ClientID] = struct{}{}
		if p.Status != Completed {
			continue
		}
		s.ProjectsCompleted++
		s.TotalEarnings = s.TotalEarnings.Add(M(p.Fee, currency))
	}
	s.ActiveClients = len(referenced)
	if s.ProjectsCompleted > 0 {
		s.AverageProjectValue = s.TotalEarnings.DivInt(s.ProjectsCompleted)
	}
	return s
}

// Earning is one row of the earnings breakdown: a completed project mapped
// to the calendar period of its deadline. Projects sharing a period are not
// aggregated; each yields its own row.
type Earning struct {
	Year   int
	Month  time.Month
	Amount Money
}

// EarningsBreakdown lists completed projects whose deadline falls inside the
// window anchored at ref, in display order.
func (b *Book) EarningsBreakdown(w Window, ref Date, currency string) []Earning {
	rows := make([]Earning, 0)
	for _, p := range b.projects {
		if p.Status != Completed || !w.Contains(ref, p.Deadline) {
			continue
		}
		rows = append(rows, Earning{
			Year:   p.Deadline.Year(),
			Month:  p.Deadline.Month(),
			Amount: M(p.Fee, currency),
		})
	}
	return rows
}
