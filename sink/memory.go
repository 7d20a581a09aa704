package sink

import "bytes"

// Memory records everything written to it. It is mostly useful in tests.
//
// When FailAt is positive, the FailAt-th call to WriteBytes and every call
// after it fail without recording anything.
type Memory struct {
	FailAt int

	buf    bytes.Buffer
	chunks []int
	calls  int
}

// WriteBytes appends p to the recorded output.
func (m *Memory) WriteBytes(p []byte) bool {
	m.calls++
	if m.FailAt > 0 && m.calls >= m.FailAt {
		return false
	}
	m.buf.Write(p)
	m.chunks = append(m.chunks, len(p))
	return true
}

// Bytes returns the accepted output.
func (m *Memory) Bytes() []byte { return m.buf.Bytes() }

// String returns the accepted output as a string.
func (m *Memory) String() string { return m.buf.String() }

// Calls reports how many times WriteBytes was called, failed calls included.
func (m *Memory) Calls() int { return m.calls }

// Chunks returns the length of every accepted write, in order.
func (m *Memory) Chunks() []int { return m.chunks }

// Reset forgets recorded output and call counts. FailAt is kept.
func (m *Memory) Reset() {
	m.buf.Reset()
	m.chunks = nil
	m.calls = 0
}
