package roster

// Kind tags selecting the greeter variant a roster entry builds.
const (
	KindPerson   = "person"
	KindEmployee = "employee"
)

// Roster defines a set of greeters that can be built declaratively.
type Roster struct {
	// Version tracks the roster version for change management
	Version string `json:"version,omitempty" yaml:"version,omitempty" msgpack:"version,omitempty"`

	Entries []Entry `json:"entries" yaml:"entries" msgpack:"entries"`
}

// Entry is one tagged roster element. Kind selects the variant: person
// entries use Name and Age, employee entries additionally carry Role and
// Salary.
type Entry struct {
	Kind   string  `json:"kind" yaml:"kind" msgpack:"kind"`
	Name   string  `json:"name" yaml:"name" msgpack:"name"`
	Age    int     `json:"age" yaml:"age" msgpack:"age"`
	Role   string  `json:"role,omitempty" yaml:"role,omitempty" msgpack:"role,omitempty"`
	Salary float64 `json:"salary,omitempty" yaml:"salary,omitempty" msgpack:"salary,omitempty"`
}
