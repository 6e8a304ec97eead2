package hal

import "testing"

func newTestPort(t *testing.T, prefix string, n int) (*pinPort, []*virtualPin) {
	t.Helper()
	caps := GPIOCapInput | GPIOCapOutput | GPIOCapPullDown | GPIOCapPullUp
	var vp []*virtualPin
	var pins []GPIOPin
	for i := 0; i < n; i++ {
		p := newVirtualPin(prefix, caps)
		vp = append(vp, p)
		pins = append(pins, p)
	}
	return newPinPort(pins...), vp
}

func TestPortMatrix(t *testing.T) {
	seg, _ := newTestPort(t, "SEG", 8)
	rows, _ := newTestPort(t, "ROW", Rows)
	cols, colPins := newTestPort(t, "COL", 4)

	m, err := newPortMatrix(seg, rows, cols)
	if err != nil {
		t.Fatalf("newPortMatrix: %v", err)
	}
	if v, _ := seg.read(); v != 0xFF {
		t.Fatalf("segments after init = %#x, want blank", v)
	}

	m.SelectRow(2)
	if v, _ := rows.read(); v != 0x0B {
		t.Fatalf("rows = %#x, want 0x0b", v)
	}
	m.WriteSegments(0xA4)
	if v, _ := seg.read(); v != 0xA4 {
		t.Fatalf("segments = %#x, want 0xa4", v)
	}

	// Columns are inputs; close column 2 from outside.
	colPins[2].mu.Lock()
	colPins[2].level = true
	colPins[2].mu.Unlock()
	if got := m.ReadColumns(1); got != 4 {
		t.Fatalf("ReadColumns(1) = %d, want 4", got)
	}
	if v, _ := seg.read(); v != 0xFF {
		t.Fatalf("segments during read = %#x, want blank", v)
	}
	if v, _ := rows.read(); v != 0x0D {
		t.Fatalf("rows = %#x, want 0x0d", v)
	}
}

func TestPortMatrixPinCount(t *testing.T) {
	seg, _ := newTestPort(t, "SEG", 7)
	rows, _ := newTestPort(t, "ROW", Rows)
	cols, _ := newTestPort(t, "COL", 4)
	if _, err := newPortMatrix(seg, rows, cols); err == nil {
		t.Fatal("expected error for 7 segment pins")
	}
}

func TestPinSolenoidPolarity(t *testing.T) {
	pin := newVirtualPin("SOL", GPIOCapOutput)
	s, err := newPinSolenoid(pin, true)
	if err != nil {
		t.Fatalf("newPinSolenoid: %v", err)
	}
	if level, _ := pin.Read(); !level {
		t.Fatal("active-low solenoid should idle high")
	}
	s.Energize()
	if level, _ := pin.Read(); level {
		t.Fatal("active-low solenoid should energize low")
	}
}

func TestVirtualPinRejectsUnsupported(t *testing.T) {
	pin := newVirtualPin("OUT", GPIOCapOutput)
	if err := pin.Configure(GPIOModeInput, GPIOPullNone); err == nil {
		t.Fatal("expected input to be rejected")
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("expected write before configure to fail")
	}
}
