package freelance

import (
	"testing"
	"time"
)

func TestBook_Stats(t *testing.T) {
	b := NewBook()
	b.AddClient(Client{Name: "Bob"})   // id 1
	b.AddClient(Client{Name: "Alice"}) // id 2
	b.AddClient(Client{Name: "Eve"})   // id 3, never referenced

	b.AddProject(Project{Name: "site", ClientID: 1, Status: Completed, Fee: dec("1000")})
	b.AddProject(Project{Name: "logo", ClientID: 1, Status: Completed, Fee: dec("500")})
	b.AddProject(Project{Name: "app", ClientID: 2, Status: InProgress, Fee: dec("9000")})

	s := b.Stats("USD")
	if got := s.TotalEarnings.Amount().String(); got != "1500" {
		t.Errorf("TotalEarnings = %s, want 1500", got)
	}
	if s.ProjectsCompleted != 2 {
		t.Errorf("ProjectsCompleted = %d, want 2", s.ProjectsCompleted)
	}
	if s.Clients != 3 {
		t.Errorf("Clients = %d, want 3", s.Clients)
	}
	if s.ActiveClients != 2 {
		t.Errorf("ActiveClients = %d, want 2", s.ActiveClients)
	}
	if got := s.AverageProjectValue.Amount().String(); got != "750" {
		t.Errorf("AverageProjectValue = %s, want 750", got)
	}
}

func TestBook_Stats_AverageZeroGuard(t *testing.T) {
	b := NewBook()
	// non-completed fees must not leak into the average
	b.AddProject(Project{Name: "wip", Status: InProgress, Fee: dec("100000")})
	b.AddProject(Project{Name: "plan", Status: Planning, Fee: dec("5000")})

	s := b.Stats("USD")
	if !s.AverageProjectValue.IsZero() {
		t.Errorf("AverageProjectValue = %v, want exactly 0 with no completed project", s.AverageProjectValue)
	}
	if !s.TotalEarnings.IsZero() {
		t.Errorf("TotalEarnings = %v, want 0", s.TotalEarnings)
	}
}

func TestBook_EarningsBreakdown(t *testing.T) {
	ref := MustParseDate("2024-03-20")
	b := NewBook()
	b.AddProject(Project{Name: "old", Status: Completed, Deadline: MustParseDate("2023-03-15"), Fee: dec("700")})
	b.AddProject(Project{Name: "site", Status: Completed, Deadline: MustParseDate("2024-03-15"), Fee: dec("1000")})
	b.AddProject(Project{Name: "wip", Status: InProgress, Deadline: MustParseDate("2024-03-16"), Fee: dec("400")})
	b.AddProject(Project{Name: "summer", Status: Completed, Deadline: MustParseDate("2024-07-01"), Fee: dec("300")})

	testCases := []struct {
		window    Window
		wantNames int
	}{
		{window: AllTime, wantNames: 3},
		{window: ThisYear, wantNames: 2},
		{window: ThisQuarter, wantNames: 1},
		{window: ThisMonth, wantNames: 1},
	}
	for _, tc := range testCases {
		rows := b.EarningsBreakdown(tc.window, ref, "USD")
		if len(rows) != tc.wantNames {
			t.Errorf("%v: got %d rows, want %d", tc.window, len(rows), tc.wantNames)
		}
	}

	quarter := b.EarningsBreakdown(ThisQuarter, ref, "USD")
	if len(quarter) != 1 {
		t.Fatalf("quarter rows = %d, want 1", len(quarter))
	}
	row := quarter[0]
	if row.Year != 2024 || row.Month != time.March || row.Amount.Amount().String() != "1000" {
		t.Errorf("quarter row = %+v, want {2024 March 1000}", row)
	}
}

// TestEndToEnd walks the reference scenario: one client, one completed
// project, and every derived figure checked.
func TestEndToEnd(t *testing.T) {
	b := NewBook()
	c := b.AddClient(Client{Name: "Bob", Email: "b@x.com", Phone: "555", Lead: LeadReferral})
	if c.ID != 1 {
		t.Fatalf("client id = %d, want 1", c.ID)
	}
	p := b.AddProject(Project{Name: "Site", ClientID: c.ID, Status: Completed, Deadline: MustParseDate("2024-03-15"), Fee: dec("1000")})
	if p.ID != 1 {
		t.Fatalf("project id = %d, want 1", p.ID)
	}

	s := b.Stats("USD")
	if got := s.TotalEarnings.Amount().String(); got != "1000" {
		t.Errorf("TotalEarnings = %s, want 1000", got)
	}
	if s.ProjectsCompleted != 1 {
		t.Errorf("ProjectsCompleted = %d, want 1", s.ProjectsCompleted)
	}
	if got := s.AverageProjectValue.Amount().String(); got != "1000" {
		t.Errorf("AverageProjectValue = %s, want 1000", got)
	}

	rows := b.EarningsBreakdown(ThisQuarter, MustParseDate("2024-03-20"), "USD")
	found := false
	for _, row := range rows {
		if row.Year == 2024 && row.Month == time.March && row.Amount.Amount().String() == "1000" {
			found = true
		}
	}
	if !found {
		t.Errorf("quarter breakdown %v misses {2024 March 1000}", rows)
	}
}
