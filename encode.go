package freelance

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists the user data blob: a single JSON object with the two
// collections, rewritten whole on every save. The shape is fixed by the
// storage schema: {"clients": [...], "projects": [...]}.

// jblob is the persisted shape of a book.
type jblob struct {
	Clients  []Client  `json:"clients"`
	Projects []Project `json:"projects"`
}

// EncodeBook serializes the whole book into the user data blob format.
func EncodeBook(b *Book) ([]byte, error) {
	data, err := json.Marshal(jblob{Clients: b.clients, Projects: b.projects})
	if err != nil {
		return nil, fmt.Errorf("cannot encode user data: %w", err)
	}
	return data, nil
}

// DecodeBook parses a user data blob. Missing collections decode as empty.
func DecodeBook(data []byte) (*Book, error) {
	var j jblob
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("cannot decode user data: %w", err)
	}
	b := NewBook()
	if j.Clients != nil {
		b.clients = j.Clients
	}
	if j.Projects != nil {
		b.projects = j.Projects
	}
	return b, nil
}

// Registry maps usernames to their password. Entries are only ever added.
type Registry map[string]string

// EncodeRegistry serializes the user registry.
func EncodeRegistry(r Registry) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("cannot encode user registry: %w", err)
	}
	return data, nil
}

// DecodeRegistry parses the user registry.
func DecodeRegistry(data []byte) (Registry, error) {
	var r Registry
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("cannot decode user registry: %w", err)
	}
	if r == nil {
		r = make(Registry)
	}
	return r, nil
}
