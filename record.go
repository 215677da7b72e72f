package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/zoobzio/capitan"
)

// MaxNameLength is the byte bound applied to record and member names.
// Longer names are truncated on a rune boundary.
const MaxNameLength = 50

// Record is an immutable fixed-schema value: a name, an age and one numeric
// metric (a height, a salary, whatever the caller measures).
type Record struct {
	name   string
	age    int
	metric float64
}

// NewRecord builds a Record from raw inputs. It is total: over-long names
// are truncated to MaxNameLength bytes, an empty name becomes "unnamed" and
// a negative age is clamped to zero.
func NewRecord(name string, age int, metric float64) Record {
	r := Record{
		name:   boundName(name),
		age:    max(age, 0),
		metric: metric,
	}

	capitan.Emit(context.Background(), RecordCreated,
		KeyName.Field(r.name))

	return r
}

// Name returns the bounded name.
func (r Record) Name() string { return r.name }

// Age returns the age, never negative.
func (r Record) Age() int { return r.age }

// Metric returns the numeric attribute.
func (r Record) Metric() float64 { return r.metric }

// Describe renders the record as a human-readable line. It is pure and
// deterministic: the same record describes identically every time.
func (r Record) Describe() string {
	return fmt.Sprintf("Record [name=%s, age=%d, metric=%g]", r.name, r.age, r.metric)
}

// boundName enforces the name invariants: never empty, at most MaxNameLength
// bytes, truncated on a rune boundary.
func boundName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unnamed"
	}
	if len(name) <= MaxNameLength {
		return name
	}

	cut := 0
	for i := range name {
		if i > MaxNameLength {
			break
		}
		cut = i
	}
	return name[:cut]
}
