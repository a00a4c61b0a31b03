package credential

// Memory is an ephemeral in-process store. Useful for tests and for callers
// that manage persistence themselves.
type Memory struct {
	token string
	set   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored token, or ErrNotFound when never paired.
func (m *Memory) Get() (string, error) {
	if !m.set {
		return "", ErrNotFound
	}
	return m.token, nil
}

// Set replaces the token.
func (m *Memory) Set(token string) error {
	m.token = token
	m.set = true
	return nil
}

// Clear removes the stored token.
func (m *Memory) Clear() error {
	m.token = ""
	m.set = false
	return nil
}
