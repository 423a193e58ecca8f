package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"glucolog/models"
	"glucolog/services"
)

var _ = Describe("MatchDetectedFoods", func() {
	var (
		catalog *mockCatalog
		matcher *services.FoodMatcher
		ctx     context.Context
	)

	avocado := &models.Food{
		Name:          "Avocado",
		Carbohydrates: 9,
		Protein:       2,
		Fat:           15,
		Fiber:         7,
		Calories:      179,
		GlycemicIndex: 15,
		GlycemicLoad:  1,
	}
	avocado.ID = 42

	BeforeEach(func() {
		catalog = &mockCatalog{}
		matcher = services.NewFoodMatcher(catalog)
		ctx = context.Background()
	})

	It("attaches scaled nutrition and the catalog link to matched items", func() {
		catalog.findFn = func(_ context.Context, _ string) (*models.Food, error) {
			return avocado, nil
		}

		out := services.MatchDetectedFoods(ctx, matcher, []services.DetectedFoodInput{
			{Name: "avocado", Confidence: 92, Portion: 150},
		})

		Expect(out).To(HaveLen(1))
		Expect(out[0].MatchedFoodID).To(HaveValue(Equal(uint(42))))
		Expect(out[0].Portion.EstimatedGrams).To(Equal(150.0))
		Expect(out[0].NutritionalData.Fat).To(Equal(23))
		Expect(out[0].NutritionalData.Fiber).To(Equal(11))
	})

	It("defaults the portion to 100 grams", func() {
		catalog.findFn = func(_ context.Context, _ string) (*models.Food, error) {
			return avocado, nil
		}

		out := services.MatchDetectedFoods(ctx, matcher, []services.DetectedFoodInput{
			{Name: "avocado"},
		})
		Expect(out[0].Portion.EstimatedGrams).To(Equal(100.0))
		Expect(out[0].NutritionalData.Carbohydrates).To(Equal(9))
	})

	It("keeps unmatched items in the list with nil nutrition", func() {
		out := services.MatchDetectedFoods(ctx, matcher, []services.DetectedFoodInput{
			{Name: "xyzzyfood", Confidence: 40},
		})

		Expect(out).To(HaveLen(1))
		Expect(out[0].Name).To(Equal("xyzzyfood"))
		Expect(out[0].MatchedFoodID).To(BeNil())
		Expect(out[0].NutritionalData).To(BeNil())
	})

	It("degrades a store failure to an unmatched item instead of aborting", func() {
		catalog.findFn = func(_ context.Context, _ string) (*models.Food, error) {
			return nil, errors.New("connection refused")
		}

		out := services.MatchDetectedFoods(ctx, matcher, []services.DetectedFoodInput{
			{Name: "avocado"},
			{Name: "toast"},
		})

		Expect(out).To(HaveLen(2))
		Expect(out[0].NutritionalData).To(BeNil())
		Expect(out[1].NutritionalData).To(BeNil())
	})
})

var _ = Describe("Pipeline end to end", func() {
	avocado := &models.Food{
		Name:          "Avocado",
		Carbohydrates: 9,
		Protein:       2,
		Fat:           15,
		Fiber:         7,
		Calories:      179,
		GlycemicIndex: 15,
		GlycemicLoad:  1,
	}

	It("produces a coherent analysis for a single avocado", func() {
		catalog := &mockCatalog{
			findFn: func(_ context.Context, _ string) (*models.Food, error) {
				return avocado, nil
			},
		}
		matcher := services.NewFoodMatcher(catalog)

		matched := services.MatchDetectedFoods(context.Background(), matcher,
			[]services.DetectedFoodInput{{Name: "avocado", Portion: 100}})
		analysis := services.Aggregate(matched)
		prediction := services.PredictGlucose(analysis, 100, models.DiabetesType2)
		recs := services.GenerateRecommendations(analysis, prediction)

		Expect(analysis.TotalCalories).To(Equal(179))
		Expect(analysis.AverageGlycemicIndex).To(Equal(15.0))
		Expect(analysis.EstimatedDigestionTime).To(Equal(114))

		// GL 1 lands in the lowest bucket: 100 + 20 + 2
		Expect(prediction.PeakValue).To(Equal(122))
		Expect(prediction.RiskLevel).To(Equal(models.RiskLow))
		Expect(prediction.Confidence).To(Equal(75.0))

		// fiber 7 > 5 and protein 2 < 10, in that order
		Expect(recs).To(HaveLen(2))
		Expect(recs[0].Type).To(Equal(models.RecConsumptionOrder))
		Expect(recs[1].Type).To(Equal(models.RecPairing))
	})

	It("still yields a full result when nothing matches", func() {
		matcher := services.NewFoodMatcher(&mockCatalog{})

		matched := services.MatchDetectedFoods(context.Background(), matcher,
			[]services.DetectedFoodInput{{Name: "mystery stew", Portion: 200}})
		analysis := services.Aggregate(matched)
		prediction := services.PredictGlucose(analysis, 100, models.DiabetesType2)

		Expect(matched[0].NutritionalData).To(BeNil())
		Expect(analysis.TotalCalories).To(BeZero())
		Expect(prediction.PeakValue).To(Equal(120))
		Expect(prediction.RiskLevel).To(Equal(models.RiskLow))
	})
})
