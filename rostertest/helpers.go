// Package rostertest provides test utilities for roster-based code.
//
// It includes a call-tracking greeter wrapper, a fluent roster document
// builder and pre-populated directories to make testing dispatch behavior
// easier.
//
// Example usage:
//
//	func TestMyDispatch(t *testing.T) {
//		dir, members := rostertest.NewTestDirectory(t)
//
//		line, err := dir.Greet(members[1].Name)
//		if err != nil {
//			t.Fatalf("Greet failed: %v", err)
//		}
//		if !strings.Contains(line, "Engineer") {
//			t.Errorf("expected employee greeting, got %q", line)
//		}
//	}
package rostertest

import (
	"sync"
	"testing"

	"roster"
)

// TrackedGreeter wraps a greeter and counts how often each capability is
// invoked. It forwards to the wrapped value, so dispatch behavior is
// unchanged.
type TrackedGreeter struct {
	inner     roster.Greeter
	mu        sync.Mutex
	greets    int
	describes int
}

// Track wraps g with call tracking.
func Track(g roster.Greeter) *TrackedGreeter {
	return &TrackedGreeter{inner: g}
}

// Greet forwards to the wrapped greeter and records the call.
func (t *TrackedGreeter) Greet() string {
	t.mu.Lock()
	t.greets++
	t.mu.Unlock()
	return t.inner.Greet()
}

// Describe forwards to the wrapped greeter and records the call.
func (t *TrackedGreeter) Describe() string {
	t.mu.Lock()
	t.describes++
	t.mu.Unlock()
	return t.inner.Describe()
}

// Greets returns the number of Greet calls observed.
func (t *TrackedGreeter) Greets() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.greets
}

// Describes returns the number of Describe calls observed.
func (t *TrackedGreeter) Describes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.describes
}

// NewTestDirectory returns a directory pre-populated with one person and one
// employee, plus the members it registered for assertions.
func NewTestDirectory(t *testing.T) (*roster.Directory, []roster.Member) {
	t.Helper()

	members := []roster.Member{
		{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
		{Name: "Wang Wu", Greeter: roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)},
	}

	dir := roster.NewDirectory()
	dir.Add(members...)
	return dir, members
}

// RosterBuilder assembles roster documents for tests.
//
//	doc := rostertest.NewRosterBuilder().
//		Version("v1").
//		Person("Li Si", 25).
//		Employee("Wang Wu", 30, "Engineer", 15000.0).
//		Build()
type RosterBuilder struct {
	roster roster.Roster
}

// NewRosterBuilder creates an empty builder.
func NewRosterBuilder() *RosterBuilder {
	return &RosterBuilder{}
}

// Version sets the roster version.
func (b *RosterBuilder) Version(v string) *RosterBuilder {
	b.roster.Version = v
	return b
}

// Person appends a person entry.
func (b *RosterBuilder) Person(name string, age int) *RosterBuilder {
	b.roster.Entries = append(b.roster.Entries, roster.Entry{
		Kind: roster.KindPerson,
		Name: name,
		Age:  age,
	})
	return b
}

// Employee appends an employee entry.
func (b *RosterBuilder) Employee(name string, age int, role string, salary float64) *RosterBuilder {
	b.roster.Entries = append(b.roster.Entries, roster.Entry{
		Kind:   roster.KindEmployee,
		Name:   name,
		Age:    age,
		Role:   role,
		Salary: salary,
	})
	return b
}

// Entry appends a raw entry, useful for invalid-input tests.
func (b *RosterBuilder) Entry(entry roster.Entry) *RosterBuilder {
	b.roster.Entries = append(b.roster.Entries, entry)
	return b
}

// Build returns the assembled roster.
func (b *RosterBuilder) Build() roster.Roster {
	return b.roster
}

// SampleRoster returns a valid two-entry roster matching NewTestDirectory.
func SampleRoster() roster.Roster {
	return NewRosterBuilder().
		Person("Li Si", 25).
		Employee("Wang Wu", 30, "Engineer", 15000.0).
		Build()
}
