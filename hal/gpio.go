package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

type virtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	level bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
		p.level = true
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
		p.level = false
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// pinPort drives or samples a group of pins as one bit mask; pins[0] is bit 0.
type pinPort struct {
	pins []GPIOPin
}

func newPinPort(pins ...GPIOPin) *pinPort {
	return &pinPort{pins: pins}
}

func (p *pinPort) configure(mode GPIOMode, pull GPIOPull) error {
	for _, pin := range p.pins {
		if err := pin.Configure(mode, pull); err != nil {
			return err
		}
	}
	return nil
}

func (p *pinPort) write(v uint8) error {
	for i, pin := range p.pins {
		if err := pin.Write(v&(1<<i) != 0); err != nil {
			return err
		}
	}
	return nil
}

func (p *pinPort) read() (uint8, error) {
	var v uint8
	for i, pin := range p.pins {
		level, err := pin.Read()
		if err != nil {
			return 0, err
		}
		if level {
			v |= 1 << i
		}
	}
	return v, nil
}

// pinSolenoid drives the solenoid driver transistor from one pin.
// Boards with a PNP driver stage energize on a low level.
type pinSolenoid struct {
	pin       GPIOPin
	activeLow bool
}

func newPinSolenoid(pin GPIOPin, activeLow bool) (*pinSolenoid, error) {
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, err
	}
	s := &pinSolenoid{pin: pin, activeLow: activeLow}
	s.Deenergize()
	return s, nil
}

func (s *pinSolenoid) Energize()   { _ = s.pin.Write(!s.activeLow) }
func (s *pinSolenoid) Deenergize() { _ = s.pin.Write(s.activeLow) }

type pinLED struct {
	pin GPIOPin
}

func newPinLED(pin GPIOPin) (*pinLED, error) {
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, err
	}
	return &pinLED{pin: pin}, nil
}

func (l *pinLED) High() { _ = l.pin.Write(true) }
func (l *pinLED) Low()  { _ = l.pin.Write(false) }

// portMatrix is the lockbox wiring: one 8-bit segment port, a
// 4-bit active-low row select shared by digits and keypad, and a 4-bit column
// input port.
type portMatrix struct {
	segments *pinPort
	rows     *pinPort
	columns  *pinPort
}

func newPortMatrix(segments, rows, columns *pinPort) (*portMatrix, error) {
	if len(segments.pins) != 8 {
		return nil, fmt.Errorf("matrix: want 8 segment pins, got %d", len(segments.pins))
	}
	if len(rows.pins) != Rows {
		return nil, fmt.Errorf("matrix: want %d row pins, got %d", Rows, len(rows.pins))
	}
	if len(columns.pins) != 4 {
		return nil, fmt.Errorf("matrix: want 4 column pins, got %d", len(columns.pins))
	}
	if err := segments.configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, fmt.Errorf("matrix: segments: %w", err)
	}
	if err := rows.configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, fmt.Errorf("matrix: rows: %w", err)
	}
	if err := columns.configure(GPIOModeInput, GPIOPullDown); err != nil {
		return nil, fmt.Errorf("matrix: columns: %w", err)
	}
	m := &portMatrix{segments: segments, rows: rows, columns: columns}
	m.Blank()
	return m, nil
}

func (m *portMatrix) Blank() { _ = m.segments.write(0xFF) }

func (m *portMatrix) SelectRow(k int) {
	if k < 0 || k >= Rows {
		return
	}
	_ = m.rows.write(0x0F &^ (1 << k))
}

func (m *portMatrix) WriteSegments(pattern uint8) { _ = m.segments.write(pattern) }

func (m *portMatrix) ReadColumns(row int) uint8 {
	m.Blank()
	m.SelectRow(row)
	v, err := m.columns.read()
	if err != nil {
		return 0
	}
	return v & 0x0F
}
