// Command rosterdemo runs a fixed demonstration of the roster library:
// records, polymorphic greetings, generic containers and declaratively built
// rosters. It takes no flags and exits 0 on success.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"roster"
)

const demoRoster = `
version: v1
entries:
  - kind: person
    name: Li Si
    age: 25
  - kind: employee
    name: Wang Wu
    age: 30
    role: Engineer
    salary: 15000
  - kind: employee
    name: Zhao Liu
    age: 28
    role: Product Manager
    salary: 18000
`

func main() {
	fmt.Println("=== roster demo ===")
	fmt.Println()

	demoRecords()
	demoGreeters()
	demoContainers()
	demoAllocation()

	if err := demoDirectory(); err != nil {
		fmt.Fprintf(os.Stderr, "roster build failed: %v\n", err)
		os.Exit(1)
	}
}

func demoRecords() {
	fmt.Println("Records:")
	r := roster.NewRecord("Li Si", 25, 175.5)
	fmt.Println(r.Describe())
	fmt.Printf("name=%s age=%d metric=%g\n", r.Name(), r.Age(), r.Metric())
	fmt.Println()
}

func demoGreeters() {
	fmt.Println("Greeters:")
	person := roster.NewPerson("Li Si", 25)
	fmt.Println(person.Describe())
	fmt.Println(person.Greet())

	employee := roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)
	fmt.Println(employee.Describe())
	fmt.Println(employee.Greet())
	fmt.Println(employee.Work())

	// Dispatch through the base-typed handle still yields the employee
	// behavior.
	var handle roster.Greeter = roster.NewEmployee("Zhao Liu", 28, "Product Manager", 18000.0)
	fmt.Println(handle.Greet())
	fmt.Println()
}

func demoContainers() {
	fmt.Println("Containers:")
	ints := roster.NewContainer[int]()
	_ = ints.Add(10, 20, 30)
	fmt.Printf("ints (%d): %s\n", ints.Len(), ints)

	words := roster.NewContainer[string]()
	_ = words.Add("apple", "banana", "orange")
	fmt.Printf("words (%d): %s\n", words.Len(), words)

	numbers := roster.NewContainer[int]()
	_ = numbers.Add(1, 2, 3, 4, 5)
	fmt.Printf("evens: %v\n", numbers.Keep(func(n int) bool { return n%2 == 0 }))

	fmt.Printf("Max(5, 9) = %d\n", roster.Max(5, 9))
	fmt.Printf("Max(3.14, 2.71) = %g\n", roster.Max(3.14, 2.71))
	fmt.Printf("Max(apple, banana) = %s\n", roster.Max("apple", "banana"))
	fmt.Println()
}

func demoAllocation() {
	fmt.Println("Bounded container:")
	bounded := roster.NewContainer(roster.WithCapacity[int](5))
	if err := bounded.Add(0, 10, 20, 30, 40); err == nil {
		fmt.Printf("allocated (%d): %s\n", bounded.Len(), bounded)
	}
	if err := bounded.Add(50); errors.Is(err, roster.ErrAllocation) {
		fmt.Printf("allocation refused: %v\n", err)
	}
	fmt.Println()
}

func demoDirectory() error {
	fmt.Println("Directory:")
	dir := roster.NewDirectory()
	if err := dir.BuildRosterFromYAML(demoRoster); err != nil {
		return err
	}

	for _, name := range dir.List() {
		line, err := dir.Greet(name)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	fmt.Println()

	sequence, err := dir.GreetingSequence("demo", "Li Si", "Wang Wu", "Zhao Liu")
	if err != nil {
		return err
	}
	visit, err := sequence.Process(context.Background(), roster.Visit{})
	if err != nil {
		return err
	}
	fmt.Println("Greeting sequence:")
	for _, line := range visit.Lines {
		fmt.Println(line)
	}
	fmt.Println()

	out, err := dir.Spec().JSON()
	if err != nil {
		return err
	}
	fmt.Println("Directory spec:")
	fmt.Println(string(out))
	return nil
}
