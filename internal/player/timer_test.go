package player

import (
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/sorting"
)

var _ = Describe("Player timer", func() {
	var p *Player

	BeforeEach(func() {
		p = New(WithSpeed(MinSpeed))
		p.Load("timer", sorting.Bubble([]float64{5, 3, 8, 1}))
	})

	AfterEach(func() {
		p.Close()
	})

	It("plays through to the last step and pauses there", func() {
		p.TogglePlay()
		Expect(p.IsPlaying()).To(BeTrue())

		Eventually(p.Step, time.Second, 5*time.Millisecond).Should(Equal(15))
		Eventually(p.IsPlaying, time.Second).Should(BeFalse())
		Consistently(p.Step, 50*time.Millisecond).Should(Equal(15))
	})

	It("stops advancing once paused", func() {
		p.TogglePlay()
		Eventually(p.Step, time.Second, time.Millisecond).Should(BeNumerically(">=", 2))
		p.TogglePlay()

		frozen := p.Step()
		Consistently(p.Step, 60*time.Millisecond, 5*time.Millisecond).Should(Equal(frozen))
	})

	It("never advances a replaced trace with the old timer", func() {
		p.TogglePlay()
		Eventually(p.Step, time.Second, time.Millisecond).Should(BeNumerically(">=", 1))

		p.Load("other", sorting.Quick([]float64{3, 2, 1}))
		Consistently(p.Step, 60*time.Millisecond, 5*time.Millisecond).Should(Equal(0))
		Expect(p.IsPlaying()).To(BeFalse())
	})

	It("keeps a single timer across speed changes", func() {
		var ticks atomic.Int32
		p.Subscribe(func(s State) {
			if s.IsPlaying {
				ticks.Add(1)
			}
		})
		p.SetSpeed(50 * time.Millisecond)
		p.TogglePlay()
		p.SetSpeed(40 * time.Millisecond)
		p.SetSpeed(50 * time.Millisecond)

		start := ticks.Load()
		time.Sleep(170 * time.Millisecond)
		p.TogglePlay()
		// three or four ticks at 50ms; duplicated timers would double that
		Expect(ticks.Load() - start).To(BeNumerically("<=", 5))
	})

	It("ignores toggling at the end", func() {
		p.JumpTo(15)
		p.TogglePlay()
		Expect(p.IsPlaying()).To(BeFalse())
		Expect(p.Step()).To(Equal(15))
	})
})
