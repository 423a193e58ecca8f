package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"glucolog/models"
	"glucolog/services"
)

var _ = Describe("GenerateRecommendations", func() {
	It("returns an empty slice, not nil, when no rule fires", func() {
		analysis := models.NutritionAnalysis{TotalFiber: 5, AverageGlycemicIndex: 70, TotalProtein: 10}
		prediction := models.GlucosePrediction{RiskLevel: models.RiskLow}

		recs := services.GenerateRecommendations(analysis, prediction)
		Expect(recs).NotTo(BeNil())
		Expect(recs).To(BeEmpty())
	})

	It("suggests eating fiber first for high-fiber meals", func() {
		recs := services.GenerateRecommendations(
			models.NutritionAnalysis{TotalFiber: 6, TotalProtein: 20},
			models.GlucosePrediction{RiskLevel: models.RiskLow},
		)
		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Type).To(Equal(models.RecConsumptionOrder))
		Expect(recs[0].Message).To(Equal("Eat fiber-rich foods first to slow glucose absorption"))
	})

	It("suggests post-activity timing for high-GI meals", func() {
		recs := services.GenerateRecommendations(
			models.NutritionAnalysis{AverageGlycemicIndex: 71, TotalProtein: 20},
			models.GlucosePrediction{RiskLevel: models.RiskLow},
		)
		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Type).To(Equal(models.RecTiming))
	})

	It("suggests a smaller portion on a high-risk prediction", func() {
		recs := services.GenerateRecommendations(
			models.NutritionAnalysis{TotalProtein: 20},
			models.GlucosePrediction{RiskLevel: models.RiskHigh},
		)
		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Type).To(Equal(models.RecPortionAdjustment))
		Expect(recs[0].Message).To(Equal("Consider reducing portion size by 25-30%"))
	})

	It("suggests pairing protein for low-protein meals at medium priority", func() {
		recs := services.GenerateRecommendations(
			models.NutritionAnalysis{TotalProtein: 9},
			models.GlucosePrediction{RiskLevel: models.RiskLow},
		)
		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Type).To(Equal(models.RecPairing))
		Expect(recs[0].Priority).To(Equal(models.PriorityMedium))
	})

	It("emits independent rules in declaration order when several fire", func() {
		recs := services.GenerateRecommendations(
			models.NutritionAnalysis{TotalFiber: 8, AverageGlycemicIndex: 80, TotalProtein: 2},
			models.GlucosePrediction{RiskLevel: models.RiskHigh},
		)
		Expect(recs).To(HaveLen(4))
		Expect(recs[0].Type).To(Equal(models.RecConsumptionOrder))
		Expect(recs[1].Type).To(Equal(models.RecTiming))
		Expect(recs[2].Type).To(Equal(models.RecPortionAdjustment))
		Expect(recs[3].Type).To(Equal(models.RecPairing))
	})

	It("does not fire boundary values", func() {
		recs := services.GenerateRecommendations(
			models.NutritionAnalysis{TotalFiber: 5, AverageGlycemicIndex: 70, TotalProtein: 10},
			models.GlucosePrediction{RiskLevel: models.RiskMedium},
		)
		Expect(recs).To(BeEmpty())
	})
})
