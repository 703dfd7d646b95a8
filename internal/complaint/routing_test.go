package complaint_test

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/complaint-redressal/internal/complaint"
	"github.com/frahmantamala/complaint-redressal/internal/department"
)

var _ = ginkgo.Describe("DepartmentFor", func() {
	ginkgo.DescribeTable("routes each category to its department",
		func(category complaint.Category, expected string) {
			gomega.Expect(complaint.DepartmentFor(category)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("road", complaint.CategoryRoad, "Roads"),
		ginkgo.Entry("garbage", complaint.CategoryGarbage, "Sanitation"),
		ginkgo.Entry("water", complaint.CategoryWater, "Water"),
		ginkgo.Entry("electricity", complaint.CategoryElectricity, "Electricity"),
		ginkgo.Entry("empty category", complaint.Category(""), "General"),
		ginkgo.Entry("unknown category", complaint.Category("NOISE"), "General"),
		ginkgo.Entry("lower-case name", complaint.Category("water"), "General"),
	)

	ginkgo.It("only routes to departments that are seeded by default", func() {
		for _, c := range append(complaint.Categories, complaint.Category("")) {
			gomega.Expect(department.DefaultNames).To(gomega.ContainElement(complaint.DepartmentFor(c)))
		}
	})
})

var _ = ginkgo.Describe("Parsing", func() {
	ginkgo.It("accepts the four statuses by exact name", func() {
		for _, s := range []string{"PENDING", "IN_PROGRESS", "COMPLETED", "REJECTED"} {
			parsed, err := complaint.ParseStatus(s)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(parsed)).To(gomega.Equal(s))
		}
	})

	ginkgo.It("rejects unknown or differently cased statuses", func() {
		for _, s := range []string{"BOGUS", "pending", ""} {
			_, err := complaint.ParseStatus(s)
			gomega.Expect(err).To(gomega.HaveOccurred())
		}
	})

	ginkgo.It("rejects unknown categories", func() {
		_, err := complaint.ParseCategory("NOISE")
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
