package renderer

import (
	"strconv"

	"github.com/avlt/freelance"
)

// Clients renders the client list as a markdown table.
func Clients(clients []freelance.Client) string {
	var t table
	t.WriteString("# Clients\n\n")
	if len(clients) == 0 {
		t.WriteString("No clients yet.\n")
		return t.String()
	}
	t.Header("ID", "Name", "Email", "Phone", "Lead Source")
	for _, c := range clients {
		t.Row(strconv.Itoa(c.ID), c.Name, c.Email, c.Phone, string(c.Lead))
	}
	return t.String()
}
