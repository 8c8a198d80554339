package chart_test

import (
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/oscplot/internal/chart"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var _ = Describe("AngleChart", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("writes a PNG for a well-formed series", func() {
		c, err := chart.New(
			[]float64{0.0, 0.1, 0.2, 0.3},
			[]float64{0.10, 0.08, 0.05, 0.01},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(Equal(4))

		out := filepath.Join(dir, "angle_vs_time.png")
		Expect(c.SavePNG(out)).To(Succeed())

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(data)).To(BeNumerically(">", len(pngMagic)))
		Expect(data[:len(pngMagic)]).To(Equal(pngMagic))
	})

	It("renders a valid empty chart when the series are empty", func() {
		c, err := chart.New(nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(BeZero())

		out := filepath.Join(dir, "empty.png")
		Expect(c.SavePNG(out)).To(Succeed())

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(data[:len(pngMagic)]).To(Equal(pngMagic))
	})

	It("leaves a gap where samples are not finite", func() {
		c, err := chart.New(
			[]float64{0.0, 0.1, 0.2, 0.3, 0.4},
			[]float64{0.10, math.NaN(), math.Inf(1), 0.05, 0.01},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(Equal(5))

		out := filepath.Join(dir, "gapped.png")
		Expect(c.SavePNG(out)).To(Succeed())

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(data[:len(pngMagic)]).To(Equal(pngMagic))
	})

	It("renders a valid chart when no sample is finite", func() {
		c, err := chart.New(
			[]float64{math.NaN(), 0.1},
			[]float64{0.10, math.Inf(-1)},
		)
		Expect(err).NotTo(HaveOccurred())

		out := filepath.Join(dir, "nonfinite.png")
		Expect(c.SavePNG(out)).To(Succeed())

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(data[:len(pngMagic)]).To(Equal(pngMagic))
	})

	It("rejects series of different lengths", func() {
		_, err := chart.New([]float64{0.0, 0.1}, []float64{0.10})
		Expect(err).To(MatchError(chart.ErrLengthMismatch))
	})

	It("does not create missing output directories", func() {
		c, err := chart.New([]float64{0.0}, []float64{0.1})
		Expect(err).NotTo(HaveOccurred())

		out := filepath.Join(dir, "missing", "angle_vs_time.png")
		Expect(c.SavePNG(out)).To(MatchError(chart.ErrWrite))
		Expect(filepath.Dir(out)).NotTo(BeADirectory())
	})

	It("overwrites an existing file in place", func() {
		out := filepath.Join(dir, "angle_vs_time.png")
		Expect(os.WriteFile(out, []byte("stale"), 0644)).To(Succeed())

		c, err := chart.New([]float64{0.0, 0.1}, []float64{0.10, 0.08})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.SavePNG(out)).To(Succeed())

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(data[:len(pngMagic)]).To(Equal(pngMagic))
	})

	It("produces identical bytes across repeated saves", func() {
		c, err := chart.New(
			[]float64{0.0, 0.1, 0.2},
			[]float64{0.10, 0.08, 0.05},
		)
		Expect(err).NotTo(HaveOccurred())

		first := filepath.Join(dir, "first.png")
		second := filepath.Join(dir, "second.png")
		Expect(c.SavePNG(first)).To(Succeed())
		Expect(c.SavePNG(second)).To(Succeed())

		a, err := os.ReadFile(first)
		Expect(err).NotTo(HaveOccurred())
		b, err := os.ReadFile(second)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})
})
