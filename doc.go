// Package freelance provides the types and functions for managing a personal
// freelancer book: the clients a freelancer works with, the projects billed
// to them, and the earnings statistics derived from both. It is designed to
// be local-first: all data lives in a per-user key-value store on the
// machine, nothing leaves it.
//
// The core functionalities include:
//   - Domain Collections: clients and projects kept in display order, with
//     create/update/delete operations and simple id assignment.
//   - Session Management: resolving the current user, authenticating against
//     a local registry (with open registration), and keeping the in-memory
//     book synchronized with the store on every mutation.
//   - Derived Statistics: a stateless engine recomputing earnings totals,
//     completion counts and time-windowed earnings breakdowns from the
//     collections on every call.
//   - Data Persistence: a small key-value store contract with a plain-file
//     backend and an embedded sqlite backend, plus a human-readable JSONL
//     import/export format.
//
// This package serves as the foundational logic for the `lance` command-line
// tool.
package freelance
