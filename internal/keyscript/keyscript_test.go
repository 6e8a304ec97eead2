package keyscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockbox/hal"
)

func TestParse(t *testing.T) {
	steps, err := Parse("12 3,4o.L*#cd")
	require.NoError(t, err)

	want := []Step{
		{Code: 1}, {Code: 2}, {Code: 3}, {Code: 4},
		{Code: hal.KeyOpen}, {Pause: true}, {Code: hal.KeyLock},
		{Code: hal.KeyStar}, {Code: hal.KeyHash},
		{Code: hal.KeyC}, {Code: hal.KeyD},
	}
	assert.Equal(t, want, steps)
	assert.Equal(t, "1234O.L*#CD", Format(steps))
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("12x4")
	assert.ErrorContains(t, err, "offset 2")
}

type event struct {
	tick  int
	press bool
	row   int
	mask  uint8
}

type fakeKeys struct {
	tick   int
	events []event
}

func (f *fakeKeys) Press(row int, mask uint8) {
	f.events = append(f.events, event{tick: f.tick, press: true, row: row, mask: mask})
}

func (f *fakeKeys) Release() {
	f.events = append(f.events, event{tick: f.tick})
}

func TestPlayer(t *testing.T) {
	steps, err := Parse("1.O")
	require.NoError(t, err)

	kb := &fakeKeys{}
	p := NewPlayer(kb, steps, Timing{Hold: 3, Gap: 2})
	assert.Equal(t, 15, p.Remaining())

	for !p.Done() {
		kb.tick++
		p.Tick()
	}

	assert.Equal(t, 15, kb.tick)
	assert.Equal(t, []event{
		{tick: 1, press: true, row: 0, mask: 8},
		{tick: 4},
		{tick: 11, press: true, row: 0, mask: 1},
		{tick: 14},
	}, kb.events)
	assert.Equal(t, 0, p.Remaining())
}

func TestDefaultTimingCoversDebounce(t *testing.T) {
	tm := DefaultTiming(100, 0)
	assert.Greater(t, tm.Hold, 100+hal.Rows)
	assert.Greater(t, tm.Gap, 100)
	assert.Equal(t, tm.Hold+tm.Gap, tm.Slot())
}
