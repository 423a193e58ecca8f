package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"glucolog/models"
	"glucolog/services"
)

var _ = Describe("ScaleNutrition", func() {
	avocado := &models.Food{
		Name:             "Avocado",
		Carbohydrates:    9,
		Protein:          2,
		Fat:              15,
		Fiber:            7,
		Calories:         179,
		GlycemicIndex:    15,
		GlycemicLoad:     1,
		DigestionTimeMin: 180,
	}

	It("scales each field by portion/100 and rounds independently", func() {
		n := services.ScaleNutrition(avocado, 150)
		Expect(n.Carbohydrates).To(Equal(14)) // 13.5 rounds up
		Expect(n.Protein).To(Equal(3))
		Expect(n.Fat).To(Equal(23)) // 22.5 rounds up
		Expect(n.Fiber).To(Equal(11))
		Expect(n.Calories).To(Equal(269)) // 268.5
	})

	It("keeps the glycemic index unscaled", func() {
		n := services.ScaleNutrition(avocado, 250)
		Expect(n.GlycemicIndex).To(Equal(15.0))
	})

	It("is the identity at a 100g portion", func() {
		n := services.ScaleNutrition(avocado, 100)
		Expect(n.Carbohydrates).To(Equal(9))
		Expect(n.Fat).To(Equal(15))
		Expect(n.Calories).To(Equal(179))
	})
})

var _ = Describe("Aggregate", func() {
	item := func(n *models.NutritionalData) models.DetectedFood {
		return models.DetectedFood{Name: "item", NutritionalData: n}
	}

	It("sums per-field-rounded contributions, not raw values", func() {
		// Two items whose carbs each rounded to 0: the total stays 0 even
		// though the unrounded sum would have been 1.
		small := &models.Food{Carbohydrates: 0.4}
		a := services.ScaleNutrition(small, 100)
		b := services.ScaleNutrition(small, 100)

		out := services.Aggregate([]models.DetectedFood{item(a), item(b)})
		Expect(out.TotalCarbs).To(Equal(0))
	})

	It("weights the average glycemic index by carbohydrate contribution", func() {
		out := services.Aggregate([]models.DetectedFood{
			item(&models.NutritionalData{GlycemicIndex: 50, Carbohydrates: 10}),
			item(&models.NutritionalData{GlycemicIndex: 100, Carbohydrates: 30}),
		})
		// (50*10 + 100*30) / 40 = 87.5, rounded
		Expect(out.AverageGlycemicIndex).To(Equal(88.0))
	})

	It("defines the average glycemic index as 0 when the meal has no carbs", func() {
		out := services.Aggregate([]models.DetectedFood{
			item(&models.NutritionalData{GlycemicIndex: 90, Carbohydrates: 0, Fat: 20}),
		})
		Expect(out.AverageGlycemicIndex).To(Equal(0.0))
	})

	It("skips unmatched items but keeps matched ones", func() {
		out := services.Aggregate([]models.DetectedFood{
			item(nil),
			item(&models.NutritionalData{Calories: 100, Carbohydrates: 20}),
		})
		Expect(out.TotalCalories).To(Equal(100))
		Expect(out.TotalCarbs).To(Equal(20))
	})

	It("computes digestion time from the base plus macro factors", func() {
		out := services.Aggregate([]models.DetectedFood{
			item(&models.NutritionalData{Carbohydrates: 9, Protein: 2, Fat: 15, Fiber: 7, GlycemicIndex: 15, GlycemicLoad: 1}),
		})
		// 60 + 15*2 + 2*1.5 + 7*3
		Expect(out.EstimatedDigestionTime).To(Equal(114))
	})

	It("returns all-zero totals for an empty or fully-unmatched meal", func() {
		out := services.Aggregate([]models.DetectedFood{item(nil)})
		Expect(out.TotalCalories).To(BeZero())
		Expect(out.TotalGlycemicLoad).To(BeZero())
		Expect(out.AverageGlycemicIndex).To(BeZero())
		Expect(out.EstimatedDigestionTime).To(Equal(60))
	})

	It("is deterministic for the same input", func() {
		items := []models.DetectedFood{
			item(&models.NutritionalData{Calories: 200, Carbohydrates: 30, GlycemicIndex: 60, GlycemicLoad: 12}),
		}
		Expect(services.Aggregate(items)).To(Equal(services.Aggregate(items)))
	})
})
