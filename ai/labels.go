package ai

import "sentiment-lab/errors"

// Labels is the bijection between label strings and dense class keys 0..C-1,
// keys being assigned in first-seen order.
type Labels struct {
	names []string
	keys  map[string]int
}

func NewLabels(observed []string) (Labels, error) {
	l := Labels{keys: make(map[string]int)}
	for _, name := range observed {
		if _, ok := l.keys[name]; ok {
			continue
		}
		l.keys[name] = len(l.names)
		l.names = append(l.names, name)
	}
	if len(l.names) == 0 {
		return Labels{}, errors.ErrNoLabels
	}
	return l, nil
}

func (l Labels) Len() int {
	return len(l.names)
}

func (l Labels) Key(name string) (int, bool) {
	k, ok := l.keys[name]
	return k, ok
}

func (l Labels) Name(key int) string {
	return l.names[key]
}

// Names returns a copy of the labels in key order.
func (l Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}
