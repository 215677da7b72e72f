package roster

import "fmt"

// Greeter is the base capability set: anything that can introduce and
// describe itself. Calls through a Greeter handle dispatch on the runtime
// type of the bound value, so a handle holding an Employee always produces
// the Employee behavior.
type Greeter interface {
	Greet() string
	Describe() string
}

// Worker is the extended capability set: greeters that also perform work.
// Only the derived variant satisfies it.
type Worker interface {
	Greeter
	Work() string
}

// Person is the base variant: a name and an age.
type Person struct {
	name string
	age  int
}

// NewPerson builds a Person. Total, with the same name and age bounds as
// NewRecord.
func NewPerson(name string, age int) Person {
	return Person{
		name: boundName(name),
		age:  max(age, 0),
	}
}

// Greet emits the generic greeting.
func (p Person) Greet() string {
	return fmt.Sprintf("Hello, I am %s", p.name)
}

// Describe renders the person as a human-readable line.
func (p Person) Describe() string {
	return fmt.Sprintf("Person [name=%s, age=%d]", p.name, p.age)
}

// Name returns the bounded name.
func (p Person) Name() string { return p.name }

// Age returns the age, never negative.
func (p Person) Age() int { return p.age }

// Employee is the derived variant: a Person with a role and a salary.
type Employee struct {
	Person
	role   string
	salary float64
}

// NewEmployee builds an Employee. Total, same bounds as NewPerson.
func NewEmployee(name string, age int, role string, salary float64) Employee {
	return Employee{
		Person: NewPerson(name, age),
		role:   role,
		salary: salary,
	}
}

// Greet overrides the generic greeting with the role attached.
func (e Employee) Greet() string {
	return fmt.Sprintf("Hello, I am %s, working as %s", e.name, e.role)
}

// Describe renders the employee as a human-readable line.
func (e Employee) Describe() string {
	return fmt.Sprintf("Employee [name=%s, age=%d, role=%s, salary=%g]", e.name, e.age, e.role, e.salary)
}

// Work reports what the employee is doing. This capability exists only on
// the derived variant.
func (e Employee) Work() string {
	return fmt.Sprintf("%s is working as %s", e.name, e.role)
}

// Role returns the employee's role.
func (e Employee) Role() string { return e.role }

// Salary returns the employee's salary.
func (e Employee) Salary() float64 { return e.salary }
