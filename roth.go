package finguide

// RothComparison compares the after-tax value of a Roth and a Traditional
// account, rounded to the unit.
type RothComparison struct {
	RothFinal        float64 `json:"rothFinal"`
	TraditionalFinal float64 `json:"traditionalFinal"` // after paying futureTaxRate on withdrawal
	RothAdvantage    float64 `json:"rothAdvantage"`    // negative when Traditional wins
}

// RothVsTraditional invests annualContribution at the start of each of the
// 'years' years and grows it at annualReturn.
//
// The Roth account is funded with what is left of the contribution after
// currentTaxRate and grows tax free. The Traditional account is funded with
// the whole contribution, grows tax deferred and the final balance is taxed
// once at futureTaxRate.
func RothVsTraditional(annualContribution, currentTaxRate, futureTaxRate, annualReturn float64, years int) RothComparison {
	rothContribution := annualContribution * (1 - currentTaxRate)
	var rothBalance float64
	for y := 0; y < years; y++ {
		rothBalance = (rothBalance + rothContribution) * (1 + annualReturn)
	}

	var tradBalance float64
	for y := 0; y < years; y++ {
		tradBalance = (tradBalance + annualContribution) * (1 + annualReturn)
	}
	tradAfterTax := tradBalance * (1 - futureTaxRate)

	return RothComparison{
		RothFinal:        round(rothBalance),
		TraditionalFinal: round(tradAfterTax),
		RothAdvantage:    round(rothBalance - tradAfterTax),
	}
}
