package renderer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avlt/freelance"
)

// Stats renders the aggregate figures as a markdown summary.
func Stats(s freelance.Stats) string {
	var t table
	t.WriteString("# Statistics\n\n")
	t.Header("Metric", "Value")
	t.Row("Total Earnings", s.TotalEarnings.String())
	t.Row("Projects Completed", strconv.Itoa(s.ProjectsCompleted))
	t.Row("Total Clients", strconv.Itoa(s.Clients))
	t.Row("Active Clients", strconv.Itoa(s.ActiveClients))
	t.Row("Average Project Value", s.AverageProjectValue.String())
	return t.String()
}

// Earnings renders the time-windowed earnings breakdown. Each completed
// project is its own row; periods are not aggregated.
func Earnings(rows []freelance.Earning, w freelance.Window) string {
	var t table
	if w == freelance.AllTime {
		t.WriteString("# Earnings\n\n")
	} else {
		fmt.Fprintf(&t, "# Earnings (%s)\n\n", w)
	}
	if len(rows) == 0 {
		t.WriteString("No completed projects in this period.\n")
		return t.String()
	}
	t.Header("Period", "Earnings")
	for _, row := range rows {
		period := time.Date(row.Year, row.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		t.Row(period, row.Amount.String())
	}
	return t.String()
}
