package freelance

import (
	"reflect"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBook_AddClient_AssignsIDs(t *testing.T) {
	b := NewBook()
	for i := 1; i <= 5; i++ {
		c := b.AddClient(Client{Name: "client"})
		if c.ID != i {
			t.Fatalf("create #%d: got id %d, want %d", i, c.ID, i)
		}
	}
	// newest first
	ids := make([]int, 0, 5)
	for c := range b.Clients() {
		ids = append(ids, c.ID)
	}
	if want := []int{5, 4, 3, 2, 1}; !reflect.DeepEqual(ids, want) {
		t.Errorf("display order = %v, want %v", ids, want)
	}
}

func TestBook_AddClient_AfterDelete(t *testing.T) {
	b := NewBook()
	b.AddClient(Client{Name: "a"}) // id 1
	b.AddClient(Client{Name: "b"}) // id 2

	// removing a lower id must not cause reuse: the max still rules
	b.RemoveClient(1)
	if c := b.AddClient(Client{Name: "c"}); c.ID != 3 {
		t.Errorf("id after deleting a lower id = %d, want 3", c.ID)
	}
}

func TestBook_UpdateClient_Idempotent(t *testing.T) {
	b := NewBook()
	created := b.AddClient(Client{Name: "Bob", Email: "b@x.com"})

	edit := created
	edit.Name = "Bobby"
	b.UpdateClient(edit)
	first := slices.Collect(b.Clients())
	b.UpdateClient(edit)
	second := slices.Collect(b.Clients())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("update applied twice diverged: %v vs %v", first, second)
	}
	got, ok := b.Client(created.ID)
	if !ok || got.Name != "Bobby" {
		t.Errorf("Client(%d) = %v, want name Bobby", created.ID, got)
	}
}

func TestBook_UpdateClient_UnknownIDIsNoop(t *testing.T) {
	b := NewBook()
	b.AddClient(Client{Name: "a"})
	before := slices.Collect(b.Clients())
	b.UpdateClient(Client{ID: 42, Name: "ghost"})
	after := slices.Collect(b.Clients())
	if !reflect.DeepEqual(before, after) {
		t.Errorf("update of unknown id changed the collection: %v vs %v", before, after)
	}
}

func TestBook_RemoveClient_Idempotent(t *testing.T) {
	b := NewBook()
	c := b.AddClient(Client{Name: "a"})
	b.RemoveClient(c.ID)
	b.RemoveClient(c.ID) // second delete is a no-op
	if got := len(slices.Collect(b.Clients())); got != 0 {
		t.Errorf("clients left after double delete: %d", got)
	}
}

func TestBook_Projects_Filter(t *testing.T) {
	b := NewBook()
	// prepend on create: the last created project shows first
	b.AddProject(Project{Name: "cheap done", Status: Completed, ClientID: 1, Fee: dec("50")})
	b.AddProject(Project{Name: "in range done", Status: Completed, ClientID: 1, Fee: dec("100")})
	b.AddProject(Project{Name: "in range wip", Status: InProgress, ClientID: 2, Fee: dec("300")})
	b.AddProject(Project{Name: "upper bound done", Status: Completed, ClientID: 2, Fee: dec("500")})
	b.AddProject(Project{Name: "expensive done", Status: Completed, ClientID: 1, Fee: dec("800")})

	minFee, maxFee := dec("100"), dec("500")
	filter := ProjectFilter{Status: Completed, MinFee: &minFee, MaxFee: &maxFee}

	var names []string
	for p := range b.Projects(filter) {
		names = append(names, p.Name)
	}
	// insertion (display) order preserved, bounds inclusive, AND semantics
	want := []string{"upper bound done", "in range done"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("filtered projects = %v, want %v", names, want)
	}
}

func TestBook_Projects_FilterByClient(t *testing.T) {
	b := NewBook()
	b.AddProject(Project{Name: "a", ClientID: 1, Status: Planning})
	b.AddProject(Project{Name: "b", ClientID: 2, Status: Planning})
	b.AddProject(Project{Name: "c", ClientID: 1, Status: Completed})

	var names []string
	for p := range b.Projects(ProjectFilter{ClientID: 1}) {
		names = append(names, p.Name)
	}
	if want := []string{"c", "a"}; !reflect.DeepEqual(names, want) {
		t.Errorf("client filter = %v, want %v", names, want)
	}
}

func TestBook_ToggleCompleted(t *testing.T) {
	b := NewBook()
	p := b.AddProject(Project{Name: "site", Status: Planning})

	got, ok := b.ToggleCompleted(p.ID)
	if !ok || got.Status != Completed {
		t.Fatalf("first toggle = %v %v, want Completed", got.Status, ok)
	}
	got, ok = b.ToggleCompleted(p.ID)
	if !ok || got.Status != InProgress {
		t.Fatalf("second toggle = %v %v, want In Progress", got.Status, ok)
	}
	if _, ok := b.ToggleCompleted(99); ok {
		t.Error("toggle of unknown id should report ok=false")
	}
}
