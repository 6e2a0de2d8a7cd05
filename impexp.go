package freelance

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to merge elsewhere.

// ExportBook writes the book to 'w' in the import/export format: a JSONL
// file where each line is one record tagged with its kind.
func ExportBook(w io.Writer, b *Book) error {
	bw := bufio.NewWriter(w)
	for _, c := range b.clients {
		line, err := json.Marshal(struct {
			Kind string `json:"kind"`
			Client
		}{Kind: "client", Client: c})
		if err != nil {
			return fmt.Errorf("cannot export client %d: %w", c.ID, err)
		}
		fmt.Fprintln(bw, string(line))
	}
	for _, p := range b.projects {
		line, err := json.Marshal(struct {
			Kind string `json:"kind"`
			Project
		}{Kind: "project", Project: p})
		if err != nil {
			return fmt.Errorf("cannot export project %d: %w", p.ID, err)
		}
		fmt.Fprintln(bw, string(line))
	}
	return bw.Flush()
}

// ClientImportSpec maps an arbitrary third-party JSON document onto client
// records, using jsonpath selectors. Records selects the array of records;
// the field selectors are evaluated against each record.
type ClientImportSpec struct {
	Records string
	Name    string
	Email   string
	Phone   string
	Lead    string
}

// DefaultClientImportSpec works for a plain array of objects with the
// natural field names.
func DefaultClientImportSpec() ClientImportSpec {
	return ClientImportSpec{
		Records: "$[*]",
		Name:    "$.name",
		Email:   "$.email",
		Phone:   "$.phone",
		Lead:    "$.lead",
	}
}

// ImportClients reads a JSON document from 'r' and plucks client records
// out of it with the given selectors. Returned clients have no id; they are
// expected to go through the normal create path. An unknown lead source
// value imports as Other.
func ImportClients(r io.Reader, spec ClientImportSpec) ([]Client, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	jrecords, err := jsonpath.Get(spec.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select records with %q: %w", spec.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// a selector can legitimately match a single record
		records = []any{jrecords}
	}

	clients := make([]Client, 0, len(records))
	for i, record := range records {
		name, err := pluckString(spec.Name, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		email, err := pluckString(spec.Email, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		phone, err := pluckString(spec.Phone, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		leadText, err := pluckString(spec.Lead, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		lead, err := ParseLeadSource(leadText)
		if err != nil {
			lead = LeadOther
		}
		clients = append(clients, Client{Name: name, Email: email, Phone: phone, Lead: lead})
	}
	return clients, nil
}

// pluckString evaluates a jsonpath selector against a record and coerces the
// result to a string.
func pluckString(path string, record any) (string, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return "", fmt.Errorf("cannot select %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return "", nil
		}
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}
