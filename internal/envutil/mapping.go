package envutil

// Mapping is an insertion-ordered string map.
// Setting an existing key replaces its value but keeps its original position.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set stores value under key.
func (m *Mapping) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	c.Merge(m)
	return c
}

// Merge copies every entry of other into m, overwriting existing values.
// New keys are appended in other's order.
func (m *Mapping) Merge(other *Mapping) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		m.Set(k, other.values[k])
	}
}

// Each calls fn for every entry in order.
func (m *Mapping) Each(fn func(key, value string)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
