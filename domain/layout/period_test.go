package layout_test

import (
	"planboard/bizerror"
	"planboard/domain/layout"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildPeriodUnits", func() {
	Context("with a week long window", func() {
		It("should build one ordered unit per calendar day", func() {
			period, err := layout.BuildPeriodUnits("2024-03-04", "2024-03-10")
			Expect(err).To(BeNil())
			Expect(len(period)).To(Equal(7))

			Expect(period[0].Key).To(Equal("2024-03-04"))
			Expect(period[0].Label).To(Equal("Mon"))
			Expect(period[0].SubLabel).To(Equal("Mar 04"))
			Expect(period[0].IsWeekend).To(BeFalse())

			Expect(period[5].Key).To(Equal("2024-03-09"))
			Expect(period[5].IsWeekend).To(BeTrue())
			Expect(period[6].Key).To(Equal("2024-03-10"))
			Expect(period[6].IsWeekend).To(BeTrue())
		})

		It("should support a single day window", func() {
			period, err := layout.BuildPeriodUnits("2024-03-04", "2024-03-04")
			Expect(err).To(BeNil())
			Expect(len(period)).To(Equal(1))
		})
	})

	Context("with invalid bounds", func() {
		It("should reject a reversed window", func() {
			_, err := layout.BuildPeriodUnits("2024-03-10", "2024-03-04")
			Expect(err).ToNot(BeNil())
			_, badParam := err.(*bizerror.ErrBadParam)
			Expect(badParam).To(BeTrue())
		})

		It("should reject malformed dates", func() {
			_, err := layout.BuildPeriodUnits("03/04/2024", "2024-03-10")
			Expect(err).ToNot(BeNil())
		})
	})
})
