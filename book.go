package freelance

import (
	"iter"
	"slices"
)

// Book holds one user's clients and projects in memory.
//
// Both collections keep insertion order, newest first: a freshly created
// record is prepended. Every mutation happens in memory only; persistence is
// the session's concern.
type Book struct {
	clients  []Client
	projects []Project
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		clients:  make([]Client, 0),
		projects: make([]Project, 0),
	}
}

// clone returns a deep enough copy for rollback: records are values.
func (b *Book) clone() *Book {
	return &Book{
		clients:  slices.Clone(b.clients),
		projects: slices.Clone(b.projects),
	}
}

// Clients returns an iterator over all clients, in display order.
func (b *Book) Clients() iter.Seq[Client] {
	return func(yield func(Client) bool) {
		for _, c := range b.clients {
			if !yield(c) {
				return
			}
		}
	}
}

// Client returns the client with this id, if any.
func (b *Book) Client(id int) (Client, bool) {
	for _, c := range b.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// AddClient assigns the next free id to c, prepends it, and returns the
// stored record. The id is one plus the maximum id present, or 1 when the
// collection is empty.
func (b *Book) AddClient(c Client) Client {
	c.ID = nextID(b.clients, func(x Client) int { return x.ID })
	b.clients = append([]Client{c}, b.clients...)
	return c
}

// UpdateClient replaces the client whose id matches c.ID. Silently a no-op
// when no client has that id.
func (b *Book) UpdateClient(c Client) {
	for i := range b.clients {
		if b.clients[i].ID == c.ID {
			b.clients[i] = c
			return
		}
	}
}

// RemoveClient removes the client with this id, a no-op when absent.
func (b *Book) RemoveClient(id int) {
	b.clients = slices.DeleteFunc(b.clients, func(c Client) bool { return c.ID == id })
}

// Projects returns an iterator over the projects matching the filter, in
// display order.
func (b *Book) Projects(f ProjectFilter) iter.Seq[Project] {
	return func(yield func(Project) bool) {
		for _, p := range b.projects {
			if !f.Match(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Project returns the project with this id, if any.
func (b *Book) Project(id int) (Project, bool) {
	for _, p := range b.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// AddProject assigns the next free id to p, prepends it, and returns the
// stored record. Same id rule as AddClient.
func (b *Book) AddProject(p Project) Project {
	p.ID = nextID(b.projects, func(x Project) int { return x.ID })
	b.projects = append([]Project{p}, b.projects...)
	return p
}

// UpdateProject replaces the project whose id matches p.ID. Silently a no-op
// when no project has that id.
func (b *Book) UpdateProject(p Project) {
	for i := range b.projects {
		if b.projects[i].ID == p.ID {
			b.projects[i] = p
			return
		}
	}
}

// RemoveProject removes the project with this id, a no-op when absent.
func (b *Book) RemoveProject(id int) {
	b.projects = slices.DeleteFunc(b.projects, func(p Project) bool { return p.ID == id })
}

// ToggleCompleted flips a project between Completed and In Progress and
// returns the updated record. ok is false when the id is unknown.
func (b *Book) ToggleCompleted(id int) (Project, bool) {
	for i := range b.projects {
		if b.projects[i].ID != id {
			continue
		}
		if b.projects[i].Status == Completed {
			b.projects[i].Status = InProgress
		} else {
			b.projects[i].Status = Completed
		}
		return b.projects[i], true
	}
	return Project{}, false
}

// nextID computes max(existing ids)+1, or 1 for an empty collection.
func nextID[T any](records []T, id func(T) int) int {
	next := 1
	for _, r := range records {
		if id(r) >= next {
			next = id(r) + 1
		}
	}
	return next
}
