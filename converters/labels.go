package converters

import "fmt"

// Labels is a bijection between vertex names and indices 0..n-1.
type Labels struct {
	names []string
	index map[string]int
}

// NewLabels assigns index i to names[i].
// Names must be non-empty and unique.
func NewLabels(names ...string) (*Labels, error) {
	l := &Labels{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("label %d: %w", i, ErrEmptyLabel)
		}
		if j, dup := l.index[name]; dup {
			return nil, fmt.Errorf("%q at %d and %d: %w", name, j, i, ErrDuplicateLabel)
		}
		l.names[i] = name
		l.index[name] = i
	}

	return l, nil
}

// Len returns the number of labels.
func (l *Labels) Len() int { return len(l.names) }

// Name returns the label of index i, or "-" when i is out of range.
func (l *Labels) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return "-"
	}

	return l.names[i]
}

// Index returns the index of name.
func (l *Labels) Index(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// Names returns a copy of the labels in index order.
func (l *Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)

	return out
}
