// Package roster models immutable people records and a small polymorphic
// greeter hierarchy behind a name-keyed directory.
//
// The library has three layers. Record is a fixed-schema immutable value
// built by a total factory. Greeter is the dispatch contract, with Person as
// the base variant and Employee as the derived one; calls through a
// Greeter-typed handle resolve by the runtime type of the bound value.
// Directory is a dispatch table over registered greeters, built either
// imperatively or from a declarative tagged roster (YAML, JSON or msgpack).
//
// Basic usage:
//
//	dir := roster.NewDirectory()
//	dir.Add(
//	    roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
//	    roster.Member{Name: "Wang Wu", Greeter: roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)},
//	)
//
//	line, err := dir.Greet("Wang Wu") // Employee greeting, role included
//
// Declarative construction:
//
//	doc := `
//	entries:
//	  - kind: person
//	    name: Li Si
//	    age: 25
//	  - kind: employee
//	    name: Wang Wu
//	    age: 30
//	    role: Engineer
//	    salary: 15000
//	`
//	err := dir.BuildRosterFromYAML(doc)
package roster

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
)

// Member combines a name with a greeter for batch registration.
type Member struct {
	Name    string
	Greeter Greeter
}

// Directory is a name-keyed dispatch table of greeters.
//
// Lookup finds the registered value by name; greeting behavior then resolves
// by the runtime type of that value, never by the handle it is called
// through. The zero Directory is not usable, use NewDirectory.
type Directory struct {
	members map[string]Greeter
	mu      sync.RWMutex
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	d := &Directory{
		members: make(map[string]Greeter),
	}

	capitan.Emit(context.Background(), DirectoryCreated)

	return d
}

// Add registers one or more members. Names are bounded the same way record
// names are; a later registration under the same name replaces the earlier
// one.
func (d *Directory) Add(members ...Member) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, m := range members {
		name := boundName(m.Name)
		d.members[name] = m.Greeter

		capitan.Emit(context.Background(), MemberRegistered,
			KeyName.Field(name),
			KeyKind.Field(kindOf(m.Greeter)))
	}
}

// Get returns the greeter registered under name.
func (d *Directory) Get(name string) (Greeter, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	g, exists := d.members[name]
	return g, exists
}

// Has checks if a member is registered.
func (d *Directory) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, exists := d.members[name]
	return exists
}

// List returns all registered member names, sorted.
func (d *Directory) List() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.members))
	for name := range d.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove removes one or more members from the directory.
// Returns the number of members actually removed.
func (d *Directory) Remove(names ...string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for _, name := range names {
		if _, exists := d.members[name]; exists {
			delete(d.members, name)
			removed++

			capitan.Emit(context.Background(), MemberRemoved,
				KeyName.Field(name))
		}
	}
	return removed
}

// Len returns the number of registered members.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.members)
}

// Greet dispatches a greeting through the member registered under name.
// The greeting produced is the one of the member's runtime type: a directory
// holding an Employee under name greets as an Employee even though the
// directory only knows it as a Greeter.
func (d *Directory) Greet(name string) (string, error) {
	d.mu.RLock()
	g, exists := d.members[name]
	d.mu.RUnlock()

	if !exists {
		capitan.Emit(context.Background(), DispatchFailed,
			KeyName.Field(name),
			KeyFound.Field(false))
		return "", fmt.Errorf("greet %q: %w", name, ErrMemberNotFound)
	}

	capitan.Emit(context.Background(), GreetingDispatched,
		KeyName.Field(name),
		KeyKind.Field(kindOf(g)))
	return g.Greet(), nil
}

// BuildRoster validates a roster and registers one greeter per entry.
// Validation failures are returned as ValidationErrors and nothing is
// registered.
func (d *Directory) BuildRoster(roster Roster) error {
	start := time.Now()

	startFields := []capitan.Field{}
	if roster.Version != "" {
		startFields = append(startFields, KeyVersion.Field(roster.Version))
	}
	capitan.Emit(context.Background(), RosterBuildStarted, startFields...)

	if err := ValidateRoster(roster); err != nil {
		failFields := []capitan.Field{
			KeyError.Field(err.Error()),
			KeyDuration.Field(time.Since(start)),
		}
		if roster.Version != "" {
			failFields = append(failFields, KeyVersion.Field(roster.Version))
		}
		capitan.Emit(context.Background(), RosterBuildFailed, failFields...)
		return err
	}

	members := make([]Member, 0, len(roster.Entries))
	for _, entry := range roster.Entries {
		members = append(members, Member{
			Name:    boundName(entry.Name),
			Greeter: buildEntry(entry),
		})
	}
	d.Add(members...)

	completeFields := []capitan.Field{
		KeyCount.Field(len(members)),
		KeyDuration.Field(time.Since(start)),
	}
	if roster.Version != "" {
		completeFields = append(completeFields, KeyVersion.Field(roster.Version))
	}
	capitan.Emit(context.Background(), RosterBuildCompleted, completeFields...)
	return nil
}

// buildEntry constructs the greeter variant an entry's kind selects.
// ValidateRoster has already rejected unknown kinds.
func buildEntry(entry Entry) Greeter {
	if entry.Kind == KindEmployee {
		return NewEmployee(entry.Name, entry.Age, entry.Role, entry.Salary)
	}
	return NewPerson(entry.Name, entry.Age)
}

// kindOf reports the schema kind of a greeter's runtime type.
func kindOf(g Greeter) string {
	if _, ok := g.(Worker); ok {
		return KindEmployee
	}
	return KindPerson
}
