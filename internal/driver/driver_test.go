package driver_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/typist/internal/driver"
	"github.com/san-kum/typist/internal/typing"
)

const ms = time.Millisecond

type harness struct {
	clk       *clock.Mock
	scheduled chan time.Duration
	drv       *driver.Driver
}

func startHarness(ctx context.Context, phrases []string, tm typing.Timing, opts ...driver.Option) *harness {
	h := &harness{
		clk:       clock.NewMock(),
		scheduled: make(chan time.Duration, 64),
	}
	opts = append([]driver.Option{
		driver.WithClock(h.clk),
		driver.WithOnSchedule(func(d time.Duration) {
			select {
			case h.scheduled <- d:
			default:
			}
		}),
	}, opts...)

	drv, err := driver.Start(ctx, phrases, tm, opts...)
	Expect(err).NotTo(HaveOccurred())
	h.drv = drv
	return h
}

// nextDelay waits until the driver arms its next timer.
func (h *harness) nextDelay() time.Duration {
	var d time.Duration
	Eventually(h.scheduled).Should(Receive(&d))
	return d
}

func scenarioTiming() typing.Timing {
	return typing.Timing{
		TypingInterval:     10 * ms,
		DeletingInterval:   5 * ms,
		PauseAfterComplete: 100 * ms,
		PauseAfterEmpty:    50 * ms,
	}
}

var _ = Describe("Driver", func() {
	var h *harness

	AfterEach(func() {
		if h != nil {
			h.drv.Stop()
			h = nil
		}
	})

	Describe("Start", func() {
		It("rejects an empty phrase list before scheduling anything", func() {
			drv, err := driver.Start(context.Background(), nil, scenarioTiming())
			Expect(drv).To(BeNil())
			Expect(errors.Is(err, typing.ErrNoPhrases)).To(BeTrue())

			var cfgErr *driver.ConfigError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
			Expect(cfgErr.Field).To(Equal("phrases"))
		})

		It("rejects negative durations", func() {
			tm := scenarioTiming()
			tm.DeletingInterval = -ms
			_, err := driver.Start(context.Background(), []string{"ab"}, tm)
			Expect(errors.Is(err, typing.ErrNegativeDuration)).To(BeTrue())
		})

		It("begins at the initial state", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())
			Expect(h.drv.Snapshot()).To(Equal(typing.Initial()))
			Expect(h.drv.Running()).To(BeTrue())
			Eventually(h.drv.Updates()).Should(Receive(Equal(typing.Initial())))
		})
	})

	Describe("ticking", func() {
		It("follows the type, pause, delete, pause sequence", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())

			expected := []struct {
				text  string
				delay time.Duration
			}{
				{"a", 10 * ms},
				{"ab", 10 * ms},
				{"ab", 100 * ms},
				{"a", 5 * ms},
				{"", 5 * ms},
				{"", 50 * ms},
				{"a", 10 * ms},
			}

			d := h.nextDelay()
			for _, want := range expected {
				Expect(d).To(Equal(want.delay))
				h.clk.Add(d)
				d = h.nextDelay()
				Expect(h.drv.Text()).To(Equal(want.text))
			}
		})

		It("does not fire before the delay has elapsed", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())
			h.nextDelay()

			h.clk.Add(9 * ms)
			Consistently(h.drv.Text, 20*ms).Should(BeEmpty())

			h.clk.Add(ms)
			Eventually(h.drv.Text).Should(Equal("a"))
		})

		It("keeps exactly one timer pending", func() {
			var ticks atomic.Int32
			h = startHarness(context.Background(), []string{"abc"}, scenarioTiming(),
				driver.WithOnTick(func(typing.State) { ticks.Add(1) }))
			h.nextDelay()

			h.clk.Add(10 * ms)
			h.nextDelay()
			Expect(ticks.Load()).To(Equal(int32(1)))
			Expect(h.drv.Text()).To(Equal("a"))
		})

		It("advances past empty phrases", func() {
			h = startHarness(context.Background(), []string{"", "x"}, scenarioTiming())

			// an empty phrase is complete as soon as it is shown
			Expect(h.nextDelay()).To(Equal(100 * ms))
			h.clk.Add(100 * ms)
			Expect(h.nextDelay()).To(Equal(50 * ms))
			Expect(h.drv.Snapshot().Mode).To(Equal(typing.Deleting))

			h.clk.Add(50 * ms)
			h.nextDelay()
			Expect(h.drv.Snapshot().PhraseIndex).To(Equal(1))
		})

		It("runs with zero durations on the wall clock", func() {
			var ticks atomic.Int32
			drv, err := driver.Start(context.Background(), []string{"ab", ""}, typing.Timing{},
				driver.WithOnTick(func(typing.State) { ticks.Add(1) }))
			Expect(err).NotTo(HaveOccurred())
			defer drv.Stop()

			Eventually(ticks.Load).Should(BeNumerically(">", 20))
		})

		It("publishes settled states on Updates", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())
			Eventually(h.drv.Updates()).Should(Receive())

			h.nextDelay()
			h.clk.Add(10 * ms)
			Eventually(h.drv.Updates()).Should(Receive(HaveField("Text", "a")))
		})
	})

	Describe("Stop", func() {
		It("freezes the displayed text", func() {
			h = startHarness(context.Background(), []string{"abc"}, scenarioTiming())
			h.nextDelay()
			h.clk.Add(10 * ms)
			h.nextDelay()
			h.clk.Add(10 * ms)
			h.nextDelay()
			Expect(h.drv.Text()).To(Equal("ab"))

			h.drv.Stop()
			h.clk.Add(time.Hour)
			Consistently(h.drv.Text, 30*ms).Should(Equal("ab"))
			Expect(h.drv.Running()).To(BeFalse())
		})

		It("is idempotent and closes Updates", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())
			h.drv.Stop()
			h.drv.Stop()

			Eventually(h.drv.Done()).Should(BeClosed())
			Eventually(h.drv.Updates()).Should(BeClosed())
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			h = startHarness(ctx, []string{"ab"}, scenarioTiming())
			h.nextDelay()

			cancel()
			Eventually(h.drv.Done()).Should(BeClosed())
			h.clk.Add(time.Second)
			Expect(h.drv.Text()).To(BeEmpty())
		})
	})

	Describe("Reconfigure", func() {
		It("keeps progress and adopts new timing when phrases are unchanged", func() {
			h = startHarness(context.Background(), []string{"abc"}, scenarioTiming())
			h.nextDelay()
			h.clk.Add(10 * ms)
			h.nextDelay()
			h.clk.Add(10 * ms)
			h.nextDelay()

			slower := scenarioTiming()
			slower.TypingInterval = 20 * ms
			Expect(h.drv.Reconfigure([]string{"abc"}, slower)).To(Succeed())
			Expect(h.nextDelay()).To(Equal(20 * ms))
			Expect(h.drv.Snapshot().CharCount).To(Equal(2))
			Expect(h.drv.Timing()).To(Equal(slower))

			h.clk.Add(10 * ms)
			Consistently(h.drv.Text, 20*ms).Should(Equal("ab"))
			h.clk.Add(10 * ms)
			Eventually(h.drv.Text).Should(Equal("abc"))
		})

		It("restarts from the first phrase when phrases change", func() {
			h = startHarness(context.Background(), []string{"abc"}, scenarioTiming())
			h.nextDelay()
			h.clk.Add(10 * ms)
			h.nextDelay()

			Expect(h.drv.Reconfigure([]string{"xyz", "w"}, scenarioTiming())).To(Succeed())
			Expect(h.drv.Snapshot()).To(Equal(typing.Initial()))

			h.clk.Add(h.nextDelay())
			h.nextDelay()
			Expect(h.drv.Text()).To(Equal("x"))
		})

		It("rejects invalid configuration and keeps running", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())
			err := h.drv.Reconfigure(nil, scenarioTiming())
			Expect(errors.Is(err, typing.ErrNoPhrases)).To(BeTrue())
			Expect(h.drv.Running()).To(BeTrue())
		})

		It("fails once stopped", func() {
			h = startHarness(context.Background(), []string{"ab"}, scenarioTiming())
			h.drv.Stop()
			Expect(h.drv.Reconfigure([]string{"ab"}, scenarioTiming())).To(MatchError(driver.ErrStopped))
		})
	})
})
