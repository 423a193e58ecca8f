package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"glucolog/models"
	"glucolog/services"
)

var _ = Describe("PredictGlucose", func() {
	withGL := func(gl int) models.NutritionAnalysis {
		return models.NutritionAnalysis{TotalGlycemicLoad: gl}
	}

	Describe("glycemic load buckets", func() {
		It("uses the low curve for GL <= 10", func() {
			p := services.PredictGlucose(withGL(10), 100, models.DiabetesType2)
			Expect(p.PeakValue).To(Equal(140)) // 100 + 20 + 10*2
			Expect(p.PeakTime).To(Equal(45))
			Expect(p.Duration).To(Equal(90))
		})

		It("uses the medium curve for 10 < GL <= 20", func() {
			p := services.PredictGlucose(withGL(20), 100, models.DiabetesType2)
			Expect(p.PeakValue).To(Equal(200)) // 100 + 40 + 20*3
			Expect(p.PeakTime).To(Equal(60))
			Expect(p.Duration).To(Equal(120))
		})

		It("uses the high curve above GL 20", func() {
			p := services.PredictGlucose(withGL(21), 100, models.DiabetesType2)
			Expect(p.PeakValue).To(Equal(222)) // 100 + 80 + 21*2
			Expect(p.PeakTime).To(Equal(75))
			Expect(p.Duration).To(Equal(180))
		})

		It("treats an empty meal as the lowest bucket, not an error", func() {
			p := services.PredictGlucose(withGL(0), 100, models.DiabetesType2)
			Expect(p.PeakValue).To(Equal(120))
			Expect(p.Duration).To(Equal(90))
			Expect(p.RiskLevel).To(Equal(models.RiskLow))
		})
	})

	Describe("diabetes-type adjustment", func() {
		It("raises the spike and stretches the duration for type 1", func() {
			p := services.PredictGlucose(withGL(15), 100, models.DiabetesType1)
			// increase 40+45 = 85, *1.2 = 102
			Expect(p.PeakValue).To(Equal(202))
			// 120 * 1.1
			Expect(p.Duration).To(Equal(132))
		})

		It("dampens the spike for prediabetes without touching the duration", func() {
			p := services.PredictGlucose(withGL(15), 100, models.DiabetesPrediabets)
			// increase 85 * 0.8 = 68
			Expect(p.PeakValue).To(Equal(168))
			Expect(p.Duration).To(Equal(120))
		})

		It("applies no adjustment for type 2", func() {
			p := services.PredictGlucose(withGL(15), 100, models.DiabetesType2)
			Expect(p.PeakValue).To(Equal(185))
			Expect(p.Duration).To(Equal(120))
		})
	})

	Describe("risk rules", func() {
		It("flags high risk from the peak alone, even at low GL", func() {
			p := services.PredictGlucose(withGL(5), 160, models.DiabetesType2)
			// peak 160+30 = 190 > 180
			Expect(p.RiskLevel).To(Equal(models.RiskHigh))
		})

		It("flags high risk from GL alone", func() {
			p := services.PredictGlucose(withGL(21), 0, models.DiabetesType2)
			Expect(p.RiskLevel).To(Equal(models.RiskHigh))
		})

		It("flags medium risk when only the medium thresholds trip", func() {
			p := services.PredictGlucose(withGL(15), 80, models.DiabetesType2)
			// peak 165, GL 15
			Expect(p.RiskLevel).To(Equal(models.RiskMedium))
		})

		It("stays low when neither threshold trips", func() {
			p := services.PredictGlucose(withGL(5), 90, models.DiabetesType2)
			// peak 120, GL 5
			Expect(p.RiskLevel).To(Equal(models.RiskLow))
		})
	})

	It("clamps the predicted peak into the plausible band", func() {
		p := services.PredictGlucose(withGL(40), 580, models.DiabetesType1)
		Expect(p.PeakValue).To(Equal(600))

		p = services.PredictGlucose(withGL(0), 20, models.DiabetesType2)
		Expect(p.PeakValue).To(Equal(50))
	})

	It("always reports the fixed confidence", func() {
		for _, gl := range []int{0, 10, 20, 40} {
			p := services.PredictGlucose(withGL(gl), 100, models.DiabetesType1)
			Expect(p.Confidence).To(Equal(75.0))
		}
	})
})
