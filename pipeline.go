package roster

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"
)

// Visit accumulates greeting lines as it flows through a greeting sequence.
// It implements pipz.Cloner so a sequence can be reused without inputs
// sharing state.
type Visit struct {
	Lines []string
}

// Clone implements pipz.Cloner for Visit.
func (v Visit) Clone() Visit {
	lines := make([]string, len(v.Lines))
	copy(lines, v.Lines)
	return Visit{Lines: lines}
}

// GreetingSequence builds a pipz sequence that greets the named members in
// order, appending one line per member to the Visit flowing through it.
// Every name must be registered; dispatch inside the sequence resolves by
// each member's runtime type, exactly as Directory.Greet does.
func (d *Directory) GreetingSequence(name string, names ...string) (pipz.Chainable[Visit], error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	children := make([]pipz.Chainable[Visit], 0, len(names))
	for _, n := range names {
		g, exists := d.members[n]
		if !exists {
			return nil, fmt.Errorf("sequence %s: %w: %s", name, ErrMemberNotFound, n)
		}
		children = append(children, pipz.Apply(pipz.Name("greet:"+n), func(_ context.Context, v Visit) (Visit, error) {
			v.Lines = append(v.Lines, g.Greet())
			return v, nil
		}))
	}

	capitan.Emit(context.Background(), SequenceBuilt,
		KeyName.Field(name),
		KeyCount.Field(len(children)))

	return pipz.NewSequence(pipz.Name(name), children...), nil
}
