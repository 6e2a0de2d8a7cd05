package renderer

import (
	"strings"
	"testing"

	"github.com/avlt/freelance"
	"github.com/shopspring/decimal"
)

func TestClients(t *testing.T) {
	out := Clients([]freelance.Client{
		{ID: 1, Name: "Bob", Email: "b@x.com", Phone: "555", Lead: freelance.LeadReferral},
	})
	for _, want := range []string{"| ID |", "| Bob |", "Referral"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestClients_Empty(t *testing.T) {
	out := Clients(nil)
	if !strings.Contains(out, "No clients yet.") {
		t.Errorf("empty list output:\n%s", out)
	}
}

func TestProjects_DanglingClientRendersEmpty(t *testing.T) {
	projects := []freelance.Project{
		{ID: 1, Name: "Site", ClientID: 42, Status: freelance.Completed,
			Deadline: freelance.MustParseDate("2024-03-15"), Fee: decimal.NewFromInt(1000)},
	}
	out := Projects(projects, map[int]string{1: "Bob"}, "USD")
	if !strings.Contains(out, "| Site |  | Completed |") {
		t.Errorf("dangling client should render as empty name:\n%s", out)
	}
	if !strings.Contains(out, "2024-03-15") {
		t.Errorf("deadline missing:\n%s", out)
	}
}

func TestStats(t *testing.T) {
	b := freelance.NewBook()
	b.AddClient(freelance.Client{Name: "Bob"})
	b.AddProject(freelance.Project{Name: "Site", ClientID: 1, Status: freelance.Completed,
		Fee: decimal.NewFromInt(1000)})

	out := Stats(b.Stats("USD"))
	for _, want := range []string{"Total Earnings", "$1,000.00", "| Projects Completed | 1 |", "| Total Clients | 1 |"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestEarnings(t *testing.T) {
	b := freelance.NewBook()
	b.AddProject(freelance.Project{Name: "Site", Status: freelance.Completed,
		Deadline: freelance.MustParseDate("2024-03-15"), Fee: decimal.NewFromInt(1000)})

	rows := b.EarningsBreakdown(freelance.ThisQuarter, freelance.MustParseDate("2024-03-20"), "USD")
	out := Earnings(rows, freelance.ThisQuarter)
	for _, want := range []string{"Earnings (quarter)", "Mar 2024", "$1,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestEarnings_Empty(t *testing.T) {
	out := Earnings(nil, freelance.AllTime)
	if !strings.Contains(out, "No completed projects") {
		t.Errorf("empty output:\n%s", out)
	}
}
