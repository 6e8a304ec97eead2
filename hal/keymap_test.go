package hal

import "testing"

func TestKeyAt(t *testing.T) {
	tests := []struct {
		row  int
		mask uint8
		want uint8
	}{
		{0, 8, 1},
		{0, 4, 2},
		{0, 2, 3},
		{0, 1, KeyOpen},
		{1, 8, 4},
		{1, 1, KeyLock},
		{2, 2, 9},
		{3, 8, KeyStar},
		{3, 4, 0},
		{3, 2, KeyHash},
		{3, 1, KeyD},
		{0, 3, KeyBlank},
		{0, 0, KeyBlank},
		{0, 9, KeyBlank},
		{4, 1, KeyBlank},
		{-1, 1, KeyBlank},
	}
	for _, tt := range tests {
		if got := KeyAt(tt.row, tt.mask); got != tt.want {
			t.Fatalf("KeyAt(%d, %d) = %d, want %d", tt.row, tt.mask, got, tt.want)
		}
	}
}

func TestLocateRoundTrip(t *testing.T) {
	for code := uint8(0); code < KeyBlank; code++ {
		row, mask, ok := Locate(code)
		if !ok {
			t.Fatalf("Locate(%d) not found", code)
		}
		if got := KeyAt(row, mask); got != code {
			t.Fatalf("KeyAt(Locate(%d)) = %d", code, got)
		}
	}
	if _, _, ok := Locate(KeyBlank); ok {
		t.Fatal("Locate(KeyBlank) should fail")
	}
}

func TestSegmentLit(t *testing.T) {
	// "1" lights b and c only.
	const one = 0b11111001
	for seg := SegA; seg <= SegDP; seg++ {
		want := seg == SegB || seg == SegC
		if got := SegmentLit(one, seg); got != want {
			t.Fatalf("SegmentLit(one, %d) = %v, want %v", seg, got, want)
		}
	}
}
