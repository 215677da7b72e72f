package roster_test

import (
	"strings"
	"testing"

	"roster"
)

func TestPersonGreet(t *testing.T) {
	p := roster.NewPerson("Li Si", 25)

	greeting := p.Greet()
	if !strings.Contains(greeting, "Li Si") {
		t.Errorf("Greet() = %q, missing name", greeting)
	}
	if strings.Contains(greeting, "Engineer") {
		t.Errorf("Greet() = %q, base greeting must not mention a role", greeting)
	}
}

func TestEmployeeGreetOverride(t *testing.T) {
	e := roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)

	greeting := e.Greet()
	if !strings.Contains(greeting, "Wang Wu") {
		t.Errorf("Greet() = %q, missing name", greeting)
	}
	if !strings.Contains(greeting, "Engineer") {
		t.Errorf("Greet() = %q, missing role", greeting)
	}
}

// The one algorithmic contract: a Greeter-typed handle bound to an Employee
// must produce the Employee greeting, never the Person one.
func TestDispatchThroughBaseHandle(t *testing.T) {
	var handle roster.Greeter = roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)

	greeting := handle.Greet()
	if !strings.Contains(greeting, "Engineer") {
		t.Fatalf("Greet() through base handle = %q, want derived output", greeting)
	}

	base := roster.NewPerson("Wang Wu", 30).Greet()
	if greeting == base {
		t.Errorf("derived greeting %q equals base greeting", greeting)
	}
}

func TestEmployeeWork(t *testing.T) {
	e := roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)

	work := e.Work()
	if !strings.Contains(work, "Wang Wu") || !strings.Contains(work, "Engineer") {
		t.Errorf("Work() = %q, want name and role", work)
	}
}

func TestWorkerCapabilitySet(t *testing.T) {
	var employee roster.Greeter = roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)
	if _, ok := employee.(roster.Worker); !ok {
		t.Error("Employee does not satisfy Worker")
	}

	var person roster.Greeter = roster.NewPerson("Li Si", 25)
	if _, ok := person.(roster.Worker); ok {
		t.Error("Person must not satisfy Worker")
	}
}

func TestEmployeeAccessors(t *testing.T) {
	e := roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)

	if e.Name() != "Wang Wu" {
		t.Errorf("Name() = %q", e.Name())
	}
	if e.Age() != 30 {
		t.Errorf("Age() = %d", e.Age())
	}
	if e.Role() != "Engineer" {
		t.Errorf("Role() = %q", e.Role())
	}
	if e.Salary() != 15000.0 {
		t.Errorf("Salary() = %g", e.Salary())
	}
}

func TestGreeterNameBounds(t *testing.T) {
	p := roster.NewPerson(strings.Repeat("a", 60), -1)
	if len(p.Name()) != roster.MaxNameLength {
		t.Errorf("Name() is %d bytes, want %d", len(p.Name()), roster.MaxNameLength)
	}
	if p.Age() != 0 {
		t.Errorf("Age() = %d, want 0", p.Age())
	}

	q := roster.NewPerson("", 5)
	if q.Name() == "" {
		t.Error("Name() is empty after construction")
	}
}
