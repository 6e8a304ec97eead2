package lockctl

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"lockbox/firmware/display"
	"lockbox/firmware/keypad"
)

type ledLog struct {
	calls []string
}

func (l *ledLog) High() { l.calls = append(l.calls, "H") }
func (l *ledLog) Low()  { l.calls = append(l.calls, "L") }

var _ = Describe("Controller", func() {
	var (
		mockCtrl *gomock.Controller
		led      *MockLED
		sol      *MockSolenoid
		buf      *display.Buffer
		c        *Controller
		seen     []Transition
	)

	cfg := Config{FiveSec: 10, BlinkEvery: 2, MaxFailures: 5, LockoutFactor: 3}

	// typeKeys does what the scanner does for a digit: append, then report.
	typeKeys := func(codes ...uint8) {
		for _, d := range codes {
			buf.Append(d)
			c.Tick(keypad.Digit(d))
		}
	}
	idle := func(n int) {
		for i := 0; i < n; i++ {
			c.Tick(keypad.None)
		}
	}
	start := func() {
		c = New(led, sol, buf, cfg)
		c.SetObserver(ObserverFunc(func(t Transition) { seen = append(seen, t) }))
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		led = NewMockLED(mockCtrl)
		sol = NewMockSolenoid(mockCtrl)
		buf = display.New(display.BannerLocked)
		seen = nil
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should boot locked with the LED on", func() {
		led.EXPECT().High()

		start()

		Expect(c.Phase()).To(Equal(PhaseLock))
		Expect(buf.Slots()).To(Equal(display.BannerLocked))
		Expect(c.Frozen()).To(BeFalse())
		Expect(c.Passcode()).To(Equal(DefaultPasscode))
	})

	It("should boot with a configured passcode", func() {
		led.EXPECT().High()
		pc := Passcode{4, 3, 2, 1}
		c = New(led, sol, buf, Config{Passcode: &pc})

		Expect(c.Passcode()).To(Equal(pc))
	})

	Context("with the LED unchecked", func() {
		BeforeEach(func() {
			led.EXPECT().High().AnyTimes()
			led.EXPECT().Low().AnyTimes()
			start()
		})

		It("should release the bolt for FiveSec ticks on the right code", func() {
			gomock.InOrder(
				sol.EXPECT().Energize(),
				sol.EXPECT().Deenergize(),
			)

			typeKeys(1, 2, 3, 4)
			c.Tick(keypad.Open)
			Expect(c.Phase()).To(Equal(PhaseSolenoid))

			idle(10)
			Expect(c.Phase()).To(Equal(PhaseSolenoid))
			Expect(c.Wait()).To(Equal(10))

			idle(1)
			Expect(c.Phase()).To(Equal(PhaseNormal))
			Expect(buf.Slots()).To(Equal(display.BannerZero))
			Expect(buf.Index()).To(Equal(0))
			Expect(seen).To(Equal([]Transition{
				{From: PhaseLock, To: PhaseSolenoid},
				{From: PhaseSolenoid, To: PhaseNormal},
			}))
		})

		It("should count a wrong code and stay locked", func() {
			typeKeys(9, 9, 9, 9)
			c.Tick(keypad.Open)

			Expect(c.Phase()).To(Equal(PhaseLock))
			Expect(c.Failures()).To(Equal(1))
			Expect(buf.Index()).To(Equal(0))
			Expect(seen).To(BeEmpty())
		})

		It("should treat a short entry as wrong", func() {
			typeKeys(1, 2)
			Expect(buf.Index()).To(Equal(2))

			c.Tick(keypad.Open)

			Expect(c.Phase()).To(Equal(PhaseLock))
			Expect(c.Failures()).To(Equal(1))
			Expect(buf.Index()).To(Equal(0))
		})

		It("should open on the four most recent digits", func() {
			sol.EXPECT().Energize()

			typeKeys(9, 1, 2, 3, 4)
			Expect(buf.Slots()).To(Equal([display.Size]uint8{4, 1, 2, 3}))
			Expect(buf.Index()).To(Equal(1))

			c.Tick(keypad.Open)

			Expect(c.Phase()).To(Equal(PhaseSolenoid))
			Expect(c.Failures()).To(Equal(0))
			Expect(buf.Index()).To(Equal(0))
		})

		It("should ignore digits and the lock key while locked", func() {
			typeKeys(1, 2, 3, 4)
			c.Tick(keypad.Lock)

			Expect(c.Phase()).To(Equal(PhaseLock))
			Expect(c.Failures()).To(Equal(0))
		})

		It("should lock out on the fifth wrong code, not the fourth", func() {
			for i := 0; i < 4; i++ {
				typeKeys(9, 9, 9, 9)
				c.Tick(keypad.Open)
			}
			Expect(c.Phase()).To(Equal(PhaseLock))
			Expect(c.Failures()).To(Equal(4))
			Expect(c.Frozen()).To(BeFalse())

			typeKeys(9, 9, 9, 9)
			c.Tick(keypad.Open)
			Expect(c.Phase()).To(Equal(PhaseDown))
			Expect(c.Frozen()).To(BeTrue())
			Expect(buf.Slots()).To(Equal(display.BannerLockout))
			Expect(seen).To(Equal([]Transition{
				{From: PhaseLock, To: PhaseDown, Failures: 5},
			}))

			c.Tick(keypad.Open)
			idle(29)
			Expect(c.Phase()).To(Equal(PhaseDown))

			idle(1)
			Expect(c.Phase()).To(Equal(PhaseLock))
			Expect(c.Frozen()).To(BeFalse())
			Expect(c.Failures()).To(Equal(0))
			Expect(buf.Slots()).To(Equal(display.BannerLocked))
		})

		Context("when unlocked", func() {
			BeforeEach(func() {
				sol.EXPECT().Energize()
				sol.EXPECT().Deenergize()
				typeKeys(1, 2, 3, 4)
				c.Tick(keypad.Open)
				idle(11)
				Expect(c.Phase()).To(Equal(PhaseNormal))
				seen = nil
			})

			It("should open again without a code", func() {
				sol.EXPECT().Energize()

				c.Tick(keypad.Open)

				Expect(c.Phase()).To(Equal(PhaseSolenoid))
			})

			It("should ignore the open key while the bolt is released", func() {
				sol.EXPECT().Energize()

				c.Tick(keypad.Open)
				c.Tick(keypad.Open)

				Expect(c.Phase()).To(Equal(PhaseSolenoid))
				Expect(c.Wait()).To(Equal(1))
			})

			It("should commit the displayed digits after the grace period", func() {
				typeKeys(5, 6, 7, 8)
				c.Tick(keypad.Lock)
				Expect(c.Phase()).To(Equal(PhasePrelock))
				pending, ok := c.Pending()
				Expect(ok).To(BeTrue())
				Expect(pending).To(Equal(Passcode{5, 6, 7, 8}))

				idle(9)
				Expect(c.Phase()).To(Equal(PhasePrelock))
				Expect(c.Passcode()).To(Equal(DefaultPasscode))

				idle(1)
				Expect(c.Phase()).To(Equal(PhaseLock))
				Expect(c.Passcode()).To(Equal(Passcode{5, 6, 7, 8}))
				Expect(buf.Slots()).To(Equal(display.BannerLocked))

				sol.EXPECT().Energize()
				typeKeys(5, 6, 7, 8)
				c.Tick(keypad.Open)
				Expect(c.Phase()).To(Equal(PhaseSolenoid))
			})

			It("should abort locking when a digit is typed", func() {
				typeKeys(5, 6, 7, 8)
				c.Tick(keypad.Lock)
				idle(3)

				typeKeys(1)

				Expect(c.Phase()).To(Equal(PhaseNormal))
				Expect(c.Passcode()).To(Equal(DefaultPasscode))
				Expect(buf.Slots()).To(Equal([display.Size]uint8{1, 6, 7, 8}))
				Expect(buf.Index()).To(Equal(0))
				Expect(seen).To(Equal([]Transition{
					{From: PhaseNormal, To: PhasePrelock},
					{From: PhasePrelock, To: PhaseNormal},
				}))
			})

			It("should commit a leftover display verbatim", func() {
				buf.Set([display.Size]uint8{5, 5, 5, 5})

				c.Tick(keypad.Lock)
				pending, _ := c.Pending()
				Expect(pending).To(Equal(Passcode{5, 5, 5, 5}))

				idle(10)
				Expect(c.Phase()).To(Equal(PhaseLock))
				Expect(c.Passcode()).To(Equal(Passcode{5, 5, 5, 5}))
			})

			It("should capture a short entry as shown", func() {
				typeKeys(5, 6, 7)
				Expect(buf.Index()).To(Equal(3))

				c.Tick(keypad.Lock)
				pending, ok := c.Pending()
				Expect(ok).To(BeTrue())
				Expect(pending).To(Equal(Passcode{5, 6, 7, 0}))
				Expect(buf.Index()).To(Equal(0))

				idle(10)
				Expect(c.Phase()).To(Equal(PhaseLock))
				Expect(c.Passcode()).To(Equal(Passcode{5, 6, 7, 0}))

				sol.EXPECT().Energize()
				typeKeys(5, 6, 7, 0)
				c.Tick(keypad.Open)
				Expect(c.Phase()).To(Equal(PhaseSolenoid))
			})

			It("should capture the display even if nothing was typed", func() {
				c.Tick(keypad.Lock)
				idle(10)

				Expect(c.Phase()).To(Equal(PhaseLock))
				Expect(c.Passcode()).To(Equal(Passcode{0, 0, 0, 0}))
			})
		})
	})

	Context("while locking", func() {
		It("should blink the LED every BlinkEvery ticks", func() {
			sol.EXPECT().Energize()
			sol.EXPECT().Deenergize()
			leds := &ledLog{}
			c = New(leds, sol, buf, cfg)

			typeKeys(1, 2, 3, 4)
			c.Tick(keypad.Open)
			idle(11)
			c.Tick(keypad.Lock)
			Expect(leds.calls).To(Equal([]string{"H", "L"}))

			leds.calls = nil
			idle(10)
			Expect(c.Phase()).To(Equal(PhaseLock))
			Expect(leds.calls).To(Equal([]string{"H", "L", "H", "L", "H", "H"}))
		})
	})
})
