package roster

import (
	"encoding/json"
	"sort"
)

// DirectorySpec provides a complete description of a directory's members
// for introspection and documentation.
type DirectorySpec struct {
	Members []MemberSpec `json:"members"`
}

// MemberSpec describes a registered member.
type MemberSpec struct {
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// Spec returns a description of every registered member, sorted by name.
func (d *Directory) Spec() DirectorySpec {
	d.mu.RLock()
	defer d.mu.RUnlock()

	members := make([]MemberSpec, 0, len(d.members))
	for name, g := range d.members {
		members = append(members, MemberSpec{
			Name:         name,
			Kind:         kindOf(g),
			Capabilities: capabilitiesOf(g),
		})
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	return DirectorySpec{Members: members}
}

// JSON renders the spec as indented JSON.
func (s DirectorySpec) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// capabilitiesOf lists the operations a greeter's runtime type exposes.
func capabilitiesOf(g Greeter) []string {
	caps := []string{"greet", "describe"}
	if _, ok := g.(Worker); ok {
		caps = append(caps, "work")
	}
	return caps
}
