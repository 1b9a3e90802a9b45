// Package answers models the values typed into a mirrored form. Answers is
// an immutable value: Apply returns a new map and leaves the original alone,
// so hosts own the state and the core stays pure.
package answers

// Answers maps field keys to their current value, remembering the order in
// which keys were first set. The zero value is empty and ready to use.
type Answers struct {
	keys   []string
	values map[string]string
}

// Entry is one key/value pair.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// New builds Answers from entries, applied in order.
func New(entries ...Entry) Answers {
	var out Answers
	for _, entry := range entries {
		out = Apply(out, entry.Key, entry.Value)
	}
	return out
}

// Apply sets key to value. Existing keys are overwritten in place; all other
// keys are preserved. Keys need not belong to any field set.
func Apply(a Answers, key, value string) Answers {
	out := Answers{
		keys:   make([]string, len(a.keys), len(a.keys)+1),
		values: make(map[string]string, len(a.values)+1),
	}
	copy(out.keys, a.keys)
	for k, v := range a.values {
		out.values[k] = v
	}
	if _, exists := out.values[key]; !exists {
		out.keys = append(out.keys, key)
	}
	out.values[key] = value
	return out
}

// Get returns the value stored for key.
func (a Answers) Get(key string) (string, bool) {
	value, ok := a.values[key]
	return value, ok
}

// Len reports the number of stored keys.
func (a Answers) Len() int {
	return len(a.keys)
}

// Entries lists the answers in first-set order.
func (a Answers) Entries() []Entry {
	if len(a.keys) == 0 {
		return nil
	}
	out := make([]Entry, len(a.keys))
	for i, key := range a.keys {
		out[i] = Entry{Key: key, Value: a.values[key]}
	}
	return out
}

// Map returns a plain copy of the answers.
func (a Answers) Map() map[string]string {
	if len(a.keys) == 0 {
		return nil
	}
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}
