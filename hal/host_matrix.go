//go:build !tinygo

package hal

import "sync"

// hostMatrix simulates the shared row bus: the display digits and the keypad
// rows are selected by the same lines, so reading a row blanks the display.
type hostMatrix struct {
	mu sync.Mutex

	row     int
	port    uint8
	latched [Rows]uint8

	keyRow  int
	keyMask uint8
	down    bool
	bounce  int
	chatter int
}

func newHostMatrix(bounce int) *hostMatrix {
	m := &hostMatrix{port: 0xFF, bounce: bounce, keyRow: -1}
	for i := range m.latched {
		m.latched[i] = 0xFF
	}
	return m
}

func (m *hostMatrix) Blank() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.port = 0xFF
}

func (m *hostMatrix) SelectRow(k int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectRow(k)
}

func (m *hostMatrix) selectRow(k int) {
	if k < 0 || k >= Rows {
		return
	}
	m.row = k
}

func (m *hostMatrix) WriteSegments(pattern uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.port = pattern
	m.latched[m.row] = pattern
}

func (m *hostMatrix) ReadColumns(row int) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.port = 0xFF
	m.selectRow(row)
	if row != m.keyRow {
		return 0
	}
	closed := m.down
	if m.chatter > 0 {
		m.chatter--
		if m.chatter%2 == 1 {
			closed = !closed
		}
	}
	if !closed {
		return 0
	}
	return m.keyMask & 0x0F
}

// Press closes the contact at (row, mask) until Release.
func (m *hostMatrix) Press(row int, mask uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row < 0 || row >= Rows {
		return
	}
	m.keyRow = row
	m.keyMask = mask
	m.down = true
	m.chatter = m.bounce
}

func (m *hostMatrix) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.down {
		return
	}
	m.down = false
	m.chatter = m.bounce
}

// snapshot returns the last pattern shown on every digit.
func (m *hostMatrix) snapshot() [Rows]uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latched
}
