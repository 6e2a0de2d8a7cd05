package renderer

import (
	"strconv"

	"github.com/avlt/freelance"
)

// Projects renders the project list as a markdown table. clientNames maps
// client ids to display names; a dangling reference renders as an empty
// name.
func Projects(projects []freelance.Project, clientNames map[int]string, currency string) string {
	var t table
	t.WriteString("# Projects\n\n")
	if len(projects) == 0 {
		t.WriteString("No projects yet.\n")
		return t.String()
	}
	t.Header("ID", "Name", "Client", "Status", "Deadline", "Fee")
	for _, p := range projects {
		deadline := ""
		if !p.Deadline.IsZero() {
			deadline = p.Deadline.String()
		}
		t.Row(
			strconv.Itoa(p.ID),
			p.Name,
			clientNames[p.ClientID],
			string(p.Status),
			deadline,
			freelance.M(p.Fee, currency).String(),
		)
	}
	return t.String()
}
