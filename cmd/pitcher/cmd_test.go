package pitcher

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPitcherInput(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pitcher Input Suite")
}

var _ = Describe("parseInput", func() {
	It("should parse capacities and target", func() {
		capacities, target, err := parseInput(strings.NewReader("2,5,6,72\n143\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(capacities).To(Equal([]int{2, 5, 6, 72}))
		Expect(target).To(Equal(143))
	})
	It("should tolerate whitespace around values", func() {
		capacities, target, err := parseInput(strings.NewReader(" 3 , 5 \n 4 \n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(capacities).To(Equal([]int{3, 5}))
		Expect(target).To(Equal(4))
	})
	It("should fail on a missing target line", func() {
		_, _, err := parseInput(strings.NewReader("2,5\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on a non-numeric capacity", func() {
		_, _, err := parseInput(strings.NewReader("2,five\n10\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on a non-positive capacity", func() {
		_, _, err := parseInput(strings.NewReader("2,0\n10\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on a negative target", func() {
		_, _, err := parseInput(strings.NewReader("2,5\n-1\n"))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on empty input", func() {
		_, _, err := parseInput(strings.NewReader(""))
		Expect(err).To(HaveOccurred())
	})
})
