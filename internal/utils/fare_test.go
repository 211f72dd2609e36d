package utils

import "testing"

func TestEstimateFare(t *testing.T) {
	// 150 km in a sedan at 12/km quotes 1800.00.
	if got := EstimateFare(150, 12); got != 1800.00 {
		t.Fatalf("expected 1800.00, got %v", got)
	}
	if got := EstimateFare(123.456, 14); got != 1728.38 {
		t.Fatalf("expected 1728.38, got %v", got)
	}
	if got := EstimateFare(0, 30); got != 0 {
		t.Fatalf("zero distance should quote 0, got %v", got)
	}
}

func TestComputeBillingSumsExactly(t *testing.T) {
	rates := BillingRates{TaxRate: 0.18, LuggageRatePerUnit: 5}
	b := ComputeBilling(150, 14, 3, rates)

	if b.Basefare != 2100.00 {
		t.Fatalf("basefare: expected 2100.00, got %v", b.Basefare)
	}
	if b.LuggageCharge != 15.00 {
		t.Fatalf("luggageCharge: expected 15.00, got %v", b.LuggageCharge)
	}
	if b.Taxes != Round2(0.18*(b.Basefare+b.LuggageCharge)) {
		t.Fatalf("taxes: expected %v, got %v", Round2(0.18*(b.Basefare+b.LuggageCharge)), b.Taxes)
	}
	if b.TotalAmount != Round2(b.Basefare+b.LuggageCharge+b.Taxes) {
		t.Fatalf("totalAmount must equal the sum of its components, got %v", b.TotalAmount)
	}
}

func TestComputeBillingZeroLuggage(t *testing.T) {
	rates := BillingRates{TaxRate: 0.18, LuggageRatePerUnit: 5}
	b := ComputeBilling(80, 19, 0, rates)
	if b.LuggageCharge != 0 {
		t.Fatalf("expected zero luggage charge, got %v", b.LuggageCharge)
	}
	if b.TotalAmount != Round2(b.Basefare+b.Taxes) {
		t.Fatalf("total should be basefare plus taxes, got %v", b.TotalAmount)
	}
}

func TestComputeBillingConfiguredRates(t *testing.T) {
	// Rates come from configuration; nothing in the math may assume 18%.
	rates := BillingRates{TaxRate: 0.05, LuggageRatePerUnit: 10}
	b := ComputeBilling(100, 10, 2, rates)
	if b.LuggageCharge != 20.00 {
		t.Fatalf("expected 20.00 luggage charge, got %v", b.LuggageCharge)
	}
	if b.Taxes != 51.00 {
		t.Fatalf("expected 51.00 taxes at 5%%, got %v", b.Taxes)
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1.005:    1.0,  // float64 has 1.005 just under the midpoint
		1.015:    1.01, // same, binary representation lands below .015
		2.675:    2.67,
		1800.0:   1800.0,
		1728.384: 1728.38,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v): expected %v, got %v", in, want, got)
		}
	}
}
