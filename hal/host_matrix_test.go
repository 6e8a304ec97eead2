//go:build !tinygo

package hal

import "testing"

func TestHostMatrixPressRelease(t *testing.T) {
	m := newHostMatrix(0)

	if got := m.ReadColumns(0); got != 0 {
		t.Fatalf("ReadColumns(0) = %d, want 0", got)
	}
	m.Press(2, 4)
	if got := m.ReadColumns(2); got != 4 {
		t.Fatalf("ReadColumns(2) = %d, want 4", got)
	}
	if got := m.ReadColumns(1); got != 0 {
		t.Fatalf("ReadColumns(1) = %d, want 0", got)
	}
	m.Release()
	if got := m.ReadColumns(2); got != 0 {
		t.Fatalf("ReadColumns(2) after release = %d, want 0", got)
	}
}

func TestHostMatrixBounce(t *testing.T) {
	m := newHostMatrix(4)
	m.Press(0, 8)

	var reads []uint8
	for i := 0; i < 6; i++ {
		reads = append(reads, m.ReadColumns(0))
	}
	want := []uint8{0, 8, 0, 8, 8, 8}
	for i := range want {
		if reads[i] != want[i] {
			t.Fatalf("read %d = %d, want %d (all %v)", i, reads[i], want[i], reads)
		}
	}
}

func TestHostMatrixLatchesSegments(t *testing.T) {
	m := newHostMatrix(0)
	m.Blank()
	m.SelectRow(1)
	m.WriteSegments(0xC0)
	m.ReadColumns(3)

	got := m.snapshot()
	if got[1] != 0xC0 {
		t.Fatalf("snapshot()[1] = %#x, want 0xc0", got[1])
	}
	if got[0] != 0xFF || got[3] != 0xFF {
		t.Fatalf("untouched digits = %#x %#x, want blank", got[0], got[3])
	}
}

func TestHostSolenoidActiveLow(t *testing.T) {
	h := newHost(HostConfig{Quiet: true})
	if h.solenoid.energized() {
		t.Fatal("solenoid energized at boot")
	}
	h.Solenoid().Energize()
	level, _ := h.solenoid.pin.Read()
	if level || !h.solenoid.energized() {
		t.Fatalf("energized: pin level %v, want low", level)
	}
	h.Solenoid().Deenergize()
	if h.solenoid.energized() {
		t.Fatal("solenoid still energized")
	}
}
