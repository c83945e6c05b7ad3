package finance

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func baseInputs() FinancingInputs {
	return FinancingInputs{
		AdjustedEbitda:     500000,
		PurchasePrice:      2000000,
		DownPaymentPercent: 10,
		SellerNotePercent:  0,
		InterestRate:       10.5,
		AmortizationYears:  10,
	}
}

func TestPurchasePrice(t *testing.T) {
	assert.Equal(t, 2000000.0, PurchasePrice(500000, 4))
	assert.Equal(t, 0.0, PurchasePrice(500000, 0))
	assert.Equal(t, -1000000.0, PurchasePrice(500000, -2))
}

func TestAnnualPayment(t *testing.T) {
	assert.Equal(t, 20000.0, AnnualPayment(100000, 0, 5))
	assert.Equal(t, 20000.0, AnnualPayment(100000, -0.05, 5))
	assert.Equal(t, 0.0, AnnualPayment(100000, 0.10, 0))
	assert.Equal(t, 0.0, AnnualPayment(100000, 0.10, -3))
	assert.InDelta(t, 16274.54, AnnualPayment(100000, 0.10, 10), 0.01)
	assert.InDelta(t, 299263.18, AnnualPayment(1800000, 0.105, 10), 0.01)

	// One-year loan repays principal plus one year of interest.
	assert.InDelta(t, 110000, AnnualPayment(100000, 0.10, 1), 1e-6)

	// A vanishing rate converges to straight-line instead of blowing up.
	assert.InDelta(t, 10000, AnnualPayment(100000, 1e-20, 10), 1e-6)

	// Non-positive principal never produces a positive payment.
	assert.LessOrEqual(t, AnnualPayment(-100000, 0.10, 10), 0.0)
	assert.Equal(t, 0.0, AnnualPayment(0, 0.10, 10))
}

func TestClassifyDSCR(t *testing.T) {
	assert.Equal(t, FinanceabilityGreen, ClassifyDSCR(1.25))
	assert.Equal(t, FinanceabilityGreen, ClassifyDSCR(3))
	assert.Equal(t, FinanceabilityYellow, ClassifyDSCR(1.2499))
	assert.Equal(t, FinanceabilityYellow, ClassifyDSCR(1.15))
	assert.Equal(t, FinanceabilityRed, ClassifyDSCR(1.1499))
	assert.Equal(t, FinanceabilityRed, ClassifyDSCR(0))

	assert.Equal(t, "Financeable", FinanceabilityGreen.Label())
	assert.Equal(t, "Marginal", FinanceabilityYellow.Label())
	assert.Equal(t, "Not financeable", FinanceabilityRed.Label())
}

func TestComputeFinancing_ReferenceDeal(t *testing.T) {
	res := ComputeFinancing(baseInputs())

	assert.Equal(t, 2000000.0, res.PurchasePrice)
	assert.Equal(t, 200000.0, res.EquityAmount)
	assert.Equal(t, 0.0, res.SellerNoteAmount)
	assert.Equal(t, 1800000.0, res.SBAAmount)
	assert.Equal(t, 0.0, res.REAmount)
	assert.InDelta(t, AnnualPayment(1800000, 0.105, 10), res.TotalAnnualDebtService, 1e-6)
	assert.InDelta(t, 500000/res.TotalAnnualDebtService, res.DSCR, 1e-12)
	assert.Equal(t, ClassifyDSCR(res.DSCR), res.Financeability)
	assert.Equal(t, FinanceabilityGreen, res.Financeability)
}

// dscrInputs builds a zero-rate, one-year, all-debt deal whose debt service
// equals the price, so DSCR is exactly ebitda / price.
func dscrInputs(ebitda float64) FinancingInputs {
	return FinancingInputs{
		AdjustedEbitda:    ebitda,
		PurchasePrice:     1000,
		InterestRate:      0,
		AmortizationYears: 1,
	}
}

func TestComputeFinancing_TierBoundaries(t *testing.T) {
	cases := []struct {
		ebitda float64
		dscr   float64
		tier   Financeability
	}{
		{ebitda: 1250, dscr: 1.25, tier: FinanceabilityGreen},
		{ebitda: 1249.9, dscr: 1.2499, tier: FinanceabilityYellow},
		{ebitda: 1150, dscr: 1.15, tier: FinanceabilityYellow},
		{ebitda: 1149.9, dscr: 1.1499, tier: FinanceabilityRed},
	}
	for _, tc := range cases {
		res := ComputeFinancing(dscrInputs(tc.ebitda))
		assert.InDelta(t, tc.dscr, res.DSCR, 1e-12)
		assert.Equal(t, tc.tier, res.Financeability, "dscr %v", res.DSCR)
	}
}

func TestComputeFinancing_SellerNote(t *testing.T) {
	in := baseInputs()
	in.SellerNotePercent = 10
	res := ComputeFinancing(in)

	assert.Equal(t, 200000.0, res.SellerNoteAmount)
	assert.Equal(t, 1600000.0, res.SBAAmount)
	want := AnnualPayment(1600000, 0.105, 10) + AnnualPayment(200000, 0.105, 10)
	assert.InDelta(t, want, res.TotalAnnualDebtService, 1e-6)
	// Same rate and term, so splitting the debt does not change service.
	assert.InDelta(t, AnnualPayment(1800000, 0.105, 10), res.TotalAnnualDebtService, 1e-6)
}

func TestComputeFinancing_RealEstateTranche(t *testing.T) {
	in := baseInputs()
	in.RealEstateIncluded = true
	in.RePrice = ptr(500000)
	res := ComputeFinancing(in)

	assert.Equal(t, 500000.0, res.REAmount)
	assert.Equal(t, 1800000.0, res.SBAAmount, "real estate sits outside the purchase price")
	want := AnnualPayment(1800000, 0.105, 10) + AnnualPayment(500000, 0.08, 25)
	assert.InDelta(t, want, res.TotalAnnualDebtService, 1e-6)

	in.ReRate = ptr(6)
	in.ReTermYears = ptr(20)
	res = ComputeFinancing(in)
	want = AnnualPayment(1800000, 0.105, 10) + AnnualPayment(500000, 0.06, 20)
	assert.InDelta(t, want, res.TotalAnnualDebtService, 1e-6)

	in.RealEstateIncluded = false
	res = ComputeFinancing(in)
	assert.Equal(t, 0.0, res.REAmount, "price is ignored when real estate is excluded")
}

func TestComputeFinancing_OverAllocatedStack(t *testing.T) {
	in := baseInputs()
	in.DownPaymentPercent = 80
	in.SellerNotePercent = 40
	res := ComputeFinancing(in)

	assert.Equal(t, 1600000.0, res.EquityAmount)
	assert.Equal(t, 800000.0, res.SellerNoteAmount)
	assert.Equal(t, -400000.0, res.SBAAmount)
	assert.InDelta(t, AnnualPayment(800000, 0.105, 10), res.TotalAnnualDebtService, 1e-6,
		"negative senior debt contributes no payment")
}

func TestComputeFinancing_AllEquity(t *testing.T) {
	in := baseInputs()
	in.DownPaymentPercent = 100
	res := ComputeFinancing(in)

	assert.Equal(t, 0.0, res.TotalAnnualDebtService)
	assert.Equal(t, 0.0, res.DSCR)
	assert.Equal(t, FinanceabilityRed, res.Financeability)
}

func TestComputeFinancing_OwnerCompFloor(t *testing.T) {
	in := baseInputs()
	in.OwnerCompAdjustment = 100000
	res := ComputeFinancing(in)
	assert.InDelta(t, 400000/res.TotalAnnualDebtService, res.DSCR, 1e-12)

	in.OwnerCompAdjustment = 900000
	res = ComputeFinancing(in)
	assert.Equal(t, 0.0, res.DSCR, "cash flow is floored at zero")
	assert.Equal(t, FinanceabilityRed, res.Financeability)
}

func TestComputeFinancing_NegativePrice(t *testing.T) {
	in := baseInputs()
	in.PurchasePrice = PurchasePrice(500000, -1)
	res := ComputeFinancing(in)

	assert.Equal(t, 0.0, res.TotalAnnualDebtService)
	assert.Equal(t, 0.0, res.DSCR)
	assert.False(t, math.IsNaN(res.SBAAmount))
}

type fuzzInputs struct {
	Ebitda, Price, Down, Seller, Rate, Years, RePrice, ReTerm, ReRate, OwnerComp float64
	RE                                                                           bool
}

func (f fuzzInputs) inputs() FinancingInputs {
	return FinancingInputs{
		AdjustedEbitda:      bounded(f.Ebitda, 1e8),
		PurchasePrice:       bounded(f.Price, 1e9),
		DownPaymentPercent:  bounded(f.Down, 200),
		SellerNotePercent:   bounded(f.Seller, 200),
		InterestRate:        bounded(f.Rate, 40),
		AmortizationYears:   bounded(f.Years, 40),
		RealEstateIncluded:  f.RE,
		RePrice:             ptr(bounded(f.RePrice, 1e8)),
		ReTermYears:         ptr(bounded(f.ReTerm, 40)),
		ReRate:              ptr(bounded(f.ReRate, 40)),
		OwnerCompAdjustment: bounded(f.OwnerComp, 1e7),
	}
}

func TestComputeFinancing_Properties(t *testing.T) {
	prop := func(f fuzzInputs) bool {
		in := f.inputs()
		a := ComputeFinancing(in)
		b := ComputeFinancing(in)
		if a != b {
			return false
		}
		for _, v := range []float64{a.EquityAmount, a.SellerNoteAmount, a.SBAAmount, a.REAmount, a.TotalAnnualDebtService, a.DSCR} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		if a.DSCR < 0 || a.TotalAnnualDebtService < 0 {
			return false
		}
		if a.Financeability != ClassifyDSCR(a.DSCR) {
			return false
		}
		if a.TotalAnnualDebtService == 0 && a.DSCR != 0 {
			return false
		}
		return math.Abs(a.EquityAmount+a.SellerNoteAmount+a.SBAAmount-in.PurchasePrice) <= 1e-6*math.Max(1, math.Abs(in.PurchasePrice))
	}
	require.NoError(t, quick.Check(prop, &quick.Config{MaxCount: 2000}))
}
