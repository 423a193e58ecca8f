package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"glucolog/models"
	"glucolog/services"
)

var _ = Describe("FoodMatcher", func() {
	var (
		catalog *mockCatalog
		matcher *services.FoodMatcher
		ctx     context.Context
	)

	brownRice := &models.Food{Name: "Brown rice", GlycemicIndex: 50}

	BeforeEach(func() {
		catalog = &mockCatalog{}
		matcher = services.NewFoodMatcher(catalog)
		ctx = context.Background()
	})

	It("returns a substring match without touching the term search", func() {
		catalog.findFn = func(_ context.Context, name string) (*models.Food, error) {
			Expect(name).To(Equal("brown rice"))
			return brownRice, nil
		}

		food, err := matcher.Match(ctx, "brown rice")
		Expect(err).NotTo(HaveOccurred())
		Expect(food).To(Equal(brownRice))
		Expect(catalog.searchedTerms).To(BeEmpty())
	})

	It("falls back to per-term search in word order, skipping short terms", func() {
		catalog.searchFn = func(_ context.Context, term string) (*models.Food, error) {
			if term == "rice" {
				return brownRice, nil
			}
			return nil, nil
		}

		food, err := matcher.Match(ctx, "big bowl of steamed rice")
		Expect(err).NotTo(HaveOccurred())
		Expect(food).To(Equal(brownRice))
		// "big", "of" are three characters or fewer and never reach the store
		Expect(catalog.searchedTerms).To(Equal([]string{"bowl", "steamed", "rice"}))
	})

	It("stops at the first term that hits", func() {
		catalog.searchFn = func(_ context.Context, term string) (*models.Food, error) {
			return brownRice, nil
		}

		_, err := matcher.Match(ctx, "steamed rice plate")
		Expect(err).NotTo(HaveOccurred())
		Expect(catalog.searchedTerms).To(Equal([]string{"steamed"}))
	})

	It("returns nil, nil when nothing matches", func() {
		food, err := matcher.Match(ctx, "xyzzyfood")
		Expect(err).NotTo(HaveOccurred())
		Expect(food).To(BeNil())
	})

	It("propagates store failures instead of reporting no match", func() {
		boom := errors.New("connection refused")
		catalog.findFn = func(_ context.Context, _ string) (*models.Food, error) {
			return nil, boom
		}

		food, err := matcher.Match(ctx, "brown rice")
		Expect(err).To(MatchError(boom))
		Expect(food).To(BeNil())
	})

	It("propagates term-search failures too", func() {
		boom := errors.New("connection reset")
		catalog.searchFn = func(_ context.Context, _ string) (*models.Food, error) {
			return nil, boom
		}

		_, err := matcher.Match(ctx, "steamed rice")
		Expect(err).To(MatchError(boom))
	})
})
