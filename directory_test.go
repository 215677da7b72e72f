package roster_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"roster"
)

func TestDirectoryAddAndGet(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Add(
		roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
		roster.Member{Name: "Wang Wu", Greeter: roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)},
	)

	if dir.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dir.Len())
	}
	if !dir.Has("Li Si") {
		t.Error("Has(Li Si) = false")
	}
	if dir.Has("nobody") {
		t.Error("Has(nobody) = true")
	}

	g, exists := dir.Get("Wang Wu")
	if !exists {
		t.Fatal("Get(Wang Wu) not found")
	}
	if _, ok := g.(roster.Worker); !ok {
		t.Error("registered employee lost its Worker capability")
	}
}

func TestDirectoryListSorted(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Add(
		roster.Member{Name: "Wang Wu", Greeter: roster.NewPerson("Wang Wu", 30)},
		roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
		roster.Member{Name: "Zhao Liu", Greeter: roster.NewPerson("Zhao Liu", 28)},
	)

	want := []string{"Li Si", "Wang Wu", "Zhao Liu"}
	if diff := cmp.Diff(want, dir.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectoryRemove(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Add(
		roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
		roster.Member{Name: "Wang Wu", Greeter: roster.NewPerson("Wang Wu", 30)},
	)

	if removed := dir.Remove("Li Si", "nobody"); removed != 1 {
		t.Errorf("Remove() = %d, want 1", removed)
	}
	if dir.Has("Li Si") {
		t.Error("Has(Li Si) = true after Remove")
	}
}

func TestDirectoryReplaceOnSameName(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Add(roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)})
	dir.Add(roster.Member{Name: "Li Si", Greeter: roster.NewEmployee("Li Si", 26, "Engineer", 12000.0)})

	if dir.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", dir.Len())
	}
	line, err := dir.Greet("Li Si")
	if err != nil {
		t.Fatalf("Greet failed: %v", err)
	}
	if !strings.Contains(line, "Engineer") {
		t.Errorf("Greet() = %q, want the replacing employee's greeting", line)
	}
}

// Dispatch through the directory resolves by the runtime type of the
// registered value, even though the directory holds it as a Greeter.
func TestDirectoryGreetDispatch(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Add(
		roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
		roster.Member{Name: "Wang Wu", Greeter: roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)},
	)

	personLine, err := dir.Greet("Li Si")
	if err != nil {
		t.Fatalf("Greet(Li Si) failed: %v", err)
	}
	if strings.Contains(personLine, "Engineer") {
		t.Errorf("Greet(Li Si) = %q, base greeting mentions a role", personLine)
	}

	employeeLine, err := dir.Greet("Wang Wu")
	if err != nil {
		t.Fatalf("Greet(Wang Wu) failed: %v", err)
	}
	if !strings.Contains(employeeLine, "Engineer") {
		t.Errorf("Greet(Wang Wu) = %q, want derived greeting", employeeLine)
	}
}

func TestDirectoryGreetUnknown(t *testing.T) {
	dir := roster.NewDirectory()

	_, err := dir.Greet("nobody")
	if !errors.Is(err, roster.ErrMemberNotFound) {
		t.Errorf("Greet(nobody) = %v, want ErrMemberNotFound", err)
	}
}

func TestDirectoryNameBound(t *testing.T) {
	dir := roster.NewDirectory()
	long := strings.Repeat("a", 60)
	dir.Add(roster.Member{Name: long, Greeter: roster.NewPerson(long, 25)})

	bounded := strings.Repeat("a", 50)
	if !dir.Has(bounded) {
		t.Errorf("member not registered under the bounded name %q", bounded)
	}
}

func TestDirectoryBuildRoster(t *testing.T) {
	dir := roster.NewDirectory()
	err := dir.BuildRoster(roster.Roster{
		Version: "v1",
		Entries: []roster.Entry{
			{Kind: roster.KindPerson, Name: "Li Si", Age: 25},
			{Kind: roster.KindEmployee, Name: "Wang Wu", Age: 30, Role: "Engineer", Salary: 15000.0},
		},
	})
	if err != nil {
		t.Fatalf("BuildRoster failed: %v", err)
	}

	line, err := dir.Greet("Wang Wu")
	if err != nil {
		t.Fatalf("Greet failed: %v", err)
	}
	if !strings.Contains(line, "Engineer") {
		t.Errorf("Greet() = %q, want employee greeting from roster entry", line)
	}
}

func TestDirectoryBuildRosterInvalid(t *testing.T) {
	dir := roster.NewDirectory()
	err := dir.BuildRoster(roster.Roster{
		Entries: []roster.Entry{
			{Kind: "robot", Name: "R2", Age: 4},
		},
	})

	var verrs roster.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("BuildRoster = %v, want ValidationErrors", err)
	}
	if dir.Len() != 0 {
		t.Errorf("Len() = %d after failed build, want 0", dir.Len())
	}
}

func TestDirectorySpec(t *testing.T) {
	dir := roster.NewDirectory()
	dir.Add(
		roster.Member{Name: "Wang Wu", Greeter: roster.NewEmployee("Wang Wu", 30, "Engineer", 15000.0)},
		roster.Member{Name: "Li Si", Greeter: roster.NewPerson("Li Si", 25)},
	)

	want := roster.DirectorySpec{
		Members: []roster.MemberSpec{
			{Name: "Li Si", Kind: roster.KindPerson, Capabilities: []string{"greet", "describe"}},
			{Name: "Wang Wu", Kind: roster.KindEmployee, Capabilities: []string{"greet", "describe", "work"}},
		},
	}
	if diff := cmp.Diff(want, dir.Spec()); diff != "" {
		t.Errorf("Spec() mismatch (-want +got):\n%s", diff)
	}

	out, err := dir.Spec().JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !strings.Contains(string(out), `"kind": "employee"`) {
		t.Errorf("JSON output missing employee kind:\n%s", out)
	}
}
