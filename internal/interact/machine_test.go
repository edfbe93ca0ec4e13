package interact_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenz/internal/interact"
)

var _ = Describe("State", func() {
	var st *interact.State

	BeforeEach(func() {
		st = interact.New()
	})

	It("starts at the documented defaults", func() {
		Expect(st.View).To(Equal(interact.View{Th: 0, Ph: 0, W: 1}))
		Expect(st.Params.S).To(Equal(10.0))
		Expect(st.Params.B).To(Equal(2.6666))
		Expect(st.Params.R).To(Equal(28.0))
		Expect(st.Animating).To(BeFalse())
	})

	DescribeTable("character key events",
		func(ev interact.Event, check func(s *interact.State)) {
			st.Animating = true
			Expect(st.Apply(ev)).To(Equal(interact.OutcomeRedraw))
			check(st)
			Expect(st.Animating).To(BeFalse())
		},
		Entry("reset", interact.EventReset, func(s *interact.State) {
			Expect(s.View.Th).To(Equal(0))
			Expect(s.View.Ph).To(Equal(0))
		}),
		Entry("zoom out", interact.EventZoomOut, func(s *interact.State) {
			Expect(s.View.W).To(BeNumerically("~", 1.01, 1e-12))
		}),
		Entry("zoom in", interact.EventZoomIn, func(s *interact.State) {
			Expect(s.View.W).To(BeNumerically("~", 0.99, 1e-12))
		}),
		Entry("s up", interact.EventSInc, func(s *interact.State) {
			Expect(s.Params.S).To(BeNumerically("~", 10.2, 1e-12))
		}),
		Entry("s down", interact.EventSDec, func(s *interact.State) {
			Expect(s.Params.S).To(BeNumerically("~", 9.8, 1e-12))
		}),
		Entry("b up", interact.EventBInc, func(s *interact.State) {
			Expect(s.Params.B).To(BeNumerically("~", 2.7666, 1e-12))
		}),
		Entry("b down", interact.EventBDec, func(s *interact.State) {
			Expect(s.Params.B).To(BeNumerically("~", 2.5666, 1e-12))
		}),
		Entry("r up", interact.EventRInc, func(s *interact.State) {
			Expect(s.Params.R).To(Equal(28.5))
		}),
		Entry("r down", interact.EventRDec, func(s *interact.State) {
			Expect(s.Params.R).To(Equal(27.5))
		}),
		Entry("view along x", interact.EventViewX, func(s *interact.State) {
			Expect(s.View.Th).To(Equal(90))
			Expect(s.View.Ph).To(Equal(0))
		}),
		Entry("view along y", interact.EventViewY, func(s *interact.State) {
			Expect(s.View.Th).To(Equal(0))
			Expect(s.View.Ph).To(Equal(-90))
		}),
		Entry("view along z", interact.EventViewZ, func(s *interact.State) {
			Expect(s.View.Th).To(Equal(0))
			Expect(s.View.Ph).To(Equal(0))
		}),
	)

	DescribeTable("arrow keys keep animation running",
		func(ev interact.Event, th, ph int) {
			st.Animating = true
			Expect(st.Apply(ev)).To(Equal(interact.OutcomeRedraw))
			Expect(st.View.Th).To(Equal(th))
			Expect(st.View.Ph).To(Equal(ph))
			Expect(st.Animating).To(BeTrue())
		},
		Entry("right", interact.EventRight, 5, 0),
		Entry("left", interact.EventLeft, -5, 0),
		Entry("up", interact.EventUp, 0, 5),
		Entry("down", interact.EventDown, 0, -5),
	)

	It("wraps angles with a truncated remainder", func() {
		st.View.Th = 355
		st.Apply(interact.EventRight)
		Expect(st.View.Th).To(Equal(0))

		st.View.Ph = -355
		st.Apply(interact.EventDown)
		Expect(st.View.Ph).To(Equal(0))

		st.View.Th = 0
		st.Apply(interact.EventLeft)
		Expect(st.View.Th).To(Equal(-5))
	})

	It("does not wrap direct view assignments", func() {
		st.Apply(interact.EventViewY)
		Expect(st.View.Ph).To(Equal(-90))
	})

	It("reports quit without touching state", func() {
		before := *st
		Expect(st.Apply(interact.EventQuit)).To(Equal(interact.OutcomeQuit))
		Expect(*st).To(Equal(before))
	})

	It("redraws on unbound keys without touching state", func() {
		st.Animating = true
		before := *st
		Expect(st.Apply(interact.EventNone)).To(Equal(interact.OutcomeRedraw))
		Expect(*st).To(Equal(before))
	})

	It("leaves s, b and r alone on reset", func() {
		st.Apply(interact.EventSInc)
		st.Apply(interact.EventBDec)
		st.Apply(interact.EventRInc)
		st.Apply(interact.EventRight)
		st.Apply(interact.EventUp)
		params := st.Params

		st.Apply(interact.EventReset)
		Expect(st.View.Th).To(Equal(0))
		Expect(st.View.Ph).To(Equal(0))
		Expect(st.Animating).To(BeFalse())
		Expect(st.Params).To(Equal(params))
	})

	It("never clamps parameters", func() {
		for i := 0; i < 200; i++ {
			st.Apply(interact.EventBDec)
		}
		Expect(st.Params.B).To(BeNumerically("<", -17))
	})

	Describe("animation", func() {
		It("is a no-op while disabled", func() {
			st.View.Th, st.View.Ph = 12, 34
			Expect(st.Animate(3 * time.Second)).To(BeFalse())
			Expect(st.View.Th).To(Equal(12))
			Expect(st.View.Ph).To(Equal(34))
		})

		It("couples th and ph to elapsed time", func() {
			st.Apply(interact.EventToggleAnimation)
			Expect(st.Animate(1500 * time.Millisecond)).To(BeTrue())
			Expect(st.View.Th).To(Equal(135))
			Expect(st.View.Ph).To(Equal(135))

			Expect(st.Animate(5 * time.Second)).To(BeTrue())
			Expect(st.View.Th).To(Equal(90))
			Expect(st.View.Ph).To(Equal(90))
		})

		It("truncates fractional degrees", func() {
			st.Animating = true
			st.Animate(1011 * time.Millisecond)
			Expect(st.View.Th).To(Equal(90))
		})

		It("keeps the animated angles when toggled twice", func() {
			st.Apply(interact.EventToggleAnimation)
			st.Animate(2 * time.Second)
			Expect(st.View.Th).To(Equal(180))

			st.Apply(interact.EventToggleAnimation)
			st.Apply(interact.EventToggleAnimation)
			Expect(st.Animating).To(BeTrue())
			Expect(st.View.Th).To(Equal(180))
			Expect(st.View.Ph).To(Equal(180))
		})
	})

	It("runs the documented end-to-end scenario", func() {
		for i := 0; i < 3; i++ {
			st.Apply(interact.EventSInc)
		}
		Expect(st.Params.S).To(BeNumerically("~", 10.6, 1e-9))

		st.Apply(interact.EventViewX)
		Expect(st.View.Th).To(Equal(90))
		Expect(st.View.Ph).To(Equal(0))
		Expect(st.Animating).To(BeFalse())

		st.Apply(interact.EventToggleAnimation)
		Expect(st.Animate(4 * time.Second)).To(BeTrue())
		Expect(st.View.Th).To(Equal(0))
		Expect(st.View.Ph).To(Equal(0))
	})
})
