package valuation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/khata-ledger/backend/internal/domain/entity"
	domainerror "github.com/khata-ledger/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseWeightExpression(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"10 + 20.5 + ", "30.5"},
		{"", "0"},
		{"abc", "0"},
		{"10 + abc + 5", "15"},
		{"50.5", "50.5"},
		{"50.5 + 51.2", "101.7"},
		{" + + ", "0"},
		{"1+2+3+4", "10"},
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got := ParseWeightExpression(tc.expr)
			if !got.Equal(dec(tc.want)) {
				t.Errorf("ParseWeightExpression(%q) = %s, want %s", tc.expr, got, tc.want)
			}
		})
	}
}

func TestValuateCrops(t *testing.T) {
	t.Run("crop_sell due is total minus paid", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			CropType:    "Rice(धान)",
			WeightInput: "50",
			Rate:        dec("30"),
			AmountPaid:  dec("500"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.TotalAmount.Equal(dec("1500")) {
			t.Errorf("total = %s, want 1500", res.TotalAmount)
		}
		if !res.DueAmount.Equal(dec("1000")) {
			t.Errorf("due = %s, want 1000", res.DueAmount)
		}
		if res.Details != "Sold 50.0kg Rice(धान)" {
			t.Errorf("details = %q", res.Details)
		}
	})

	t.Run("crop_buy due is paid minus total", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropBuy,
			CropType:    "Wheat(गहुँ)",
			WeightInput: "100 + 20",
			Rate:        dec("25"),
			AmountPaid:  dec("1000"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 120kg * 25 = 3000 total; business owes 2000.
		if !res.DueAmount.Equal(dec("-2000")) {
			t.Errorf("due = %s, want -2000", res.DueAmount)
		}
		if !res.Weight.Equal(dec("120")) {
			t.Errorf("weight = %s, want 120", res.Weight)
		}
	})

	t.Run("due rounds to one decimal", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			CropType:    "Maize(मकै)",
			WeightInput: "10.33",
			Rate:        dec("33.33"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 10.33 * 33.33 = 344.2989 -> 344.3
		if !res.TotalAmount.Equal(dec("344.3")) {
			t.Errorf("total = %s, want 344.3", res.TotalAmount)
		}
	})

	t.Run("zero weight rejected", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			CropType:    "Rice(धान)",
			WeightInput: "abc",
			Rate:        dec("30"),
		})
		if !errors.Is(err, domainerror.ErrZeroWeight) {
			t.Errorf("want ErrZeroWeight, got %v", err)
		}
	})

	t.Run("zero rate rejected via total", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			CropType:    "Rice(धान)",
			WeightInput: "50",
			Rate:        dec("0"),
		})
		if !errors.Is(err, domainerror.ErrZeroTotalAmount) {
			t.Errorf("want ErrZeroTotalAmount, got %v", err)
		}
	})

	t.Run("unknown crop type rejected", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			CropType:    "Barley",
			WeightInput: "50",
			Rate:        dec("30"),
		})
		if !errors.Is(err, domainerror.ErrInvalidCropType) {
			t.Errorf("want ErrInvalidCropType, got %v", err)
		}
	})

	t.Run("rate out of range names the field", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType:    entity.MainTypeCrops,
			Type:        entity.TradeCropSell,
			CropType:    "Rice(धान)",
			WeightInput: "50",
			Rate:        dec("100000"),
		})
		var txErr *domainerror.TransactionError
		if !errors.As(err, &txErr) {
			t.Fatalf("want TransactionError, got %v", err)
		}
		if txErr.Field != "rate" {
			t.Errorf("field = %q, want rate", txErr.Field)
		}
	})
}

func TestValuateTractor(t *testing.T) {
	t.Run("time based service bills by the hour", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType: entity.MainTypeTractor,
			Type:     entity.ServiceRotavator,
			Hours:    1,
			Minutes:  30,
			Rate:     dec("1500"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.TotalAmount.Equal(dec("2250")) {
			t.Errorf("total = %s, want 2250", res.TotalAmount)
		}
		if !res.DueAmount.Equal(dec("2250")) {
			t.Errorf("due = %s, want 2250", res.DueAmount)
		}
	})

	t.Run("unit based service bills per trolley", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType:    entity.MainTypeTractor,
			Type:        entity.ServiceDhungaTrolly,
			NumTrolleys: 2,
			Rate:        dec("1000"),
			AmountPaid:  dec("500"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.TotalAmount.Equal(dec("2000")) {
			t.Errorf("total = %s, want 2000", res.TotalAmount)
		}
		if !res.DueAmount.Equal(dec("1500")) {
			t.Errorf("due = %s, want 1500", res.DueAmount)
		}
	})

	t.Run("due is always total minus paid", func(t *testing.T) {
		for _, svc := range TractorServices {
			in := Input{
				MainType:   entity.MainTypeTractor,
				Type:       svc,
				Rate:       dec("100"),
				AmountPaid: dec("40"),
			}
			if timeBased(svc) {
				in.Hours = 1
			} else {
				in.NumTrolleys = 1
			}
			res, err := Valuate(in)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", svc, err)
			}
			if !res.DueAmount.Equal(dec("60")) {
				t.Errorf("%s: due = %s, want 60", svc, res.DueAmount)
			}
		}
	})

	t.Run("minutes above 59 rejected", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType: entity.MainTypeTractor,
			Type:     entity.ServiceThreser,
			Hours:    1,
			Minutes:  75,
			Rate:     dec("100"),
		})
		if !errors.Is(err, domainerror.ErrAmountOutOfRange) {
			t.Errorf("want ErrAmountOutOfRange, got %v", err)
		}
	})

	t.Run("empty work rejected", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType: entity.MainTypeTractor,
			Type:     entity.ServiceRotavator,
			Rate:     dec("1500"),
		})
		if !errors.Is(err, domainerror.ErrZeroTotalAmount) {
			t.Errorf("want ErrZeroTotalAmount, got %v", err)
		}
	})
}

func TestValuateCash(t *testing.T) {
	t.Run("cash_taken reduces what the customer owes", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType: entity.MainTypeCash,
			Type:     entity.CashTaken,
			Amount:   dec("400"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.DueAmount.Equal(dec("-400")) {
			t.Errorf("due = %s, want -400", res.DueAmount)
		}
		if !res.AmountSettled.Equal(dec("400")) {
			t.Errorf("settled = %s, want 400", res.AmountSettled)
		}
		if res.Details != "Cash Taken" {
			t.Errorf("details = %q", res.Details)
		}
	})

	t.Run("cash_given increases what the customer owes", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType: entity.MainTypeCash,
			Type:     entity.CashGiven,
			Amount:   dec("5000"),
			Details:  "Advance payment",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.DueAmount.Equal(dec("5000")) {
			t.Errorf("due = %s, want 5000", res.DueAmount)
		}
		if res.Details != "Advance payment" {
			t.Errorf("details = %q", res.Details)
		}
	})

	t.Run("details limit counts characters not bytes", func(t *testing.T) {
		res, err := Valuate(Input{
			MainType: entity.MainTypeCash,
			Type:     entity.CashGiven,
			Amount:   dec("100"),
			Details:  strings.Repeat("ध", MaxDetailsLen),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Details != strings.Repeat("ध", MaxDetailsLen) {
			t.Errorf("details were altered")
		}

		_, err = Valuate(Input{
			MainType: entity.MainTypeCash,
			Type:     entity.CashGiven,
			Amount:   dec("100"),
			Details:  strings.Repeat("ध", MaxDetailsLen+1),
		})
		if !errors.Is(err, domainerror.ErrAmountOutOfRange) {
			t.Errorf("want ErrAmountOutOfRange, got %v", err)
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		_, err := Valuate(Input{
			MainType: entity.MainTypeCash,
			Type:     entity.CashTaken,
			Amount:   dec("0"),
		})
		if !errors.Is(err, domainerror.ErrZeroTotalAmount) {
			t.Errorf("want ErrZeroTotalAmount, got %v", err)
		}
	})
}

func TestValuateUnknownMainType(t *testing.T) {
	_, err := Valuate(Input{MainType: "loans"})
	if !errors.Is(err, domainerror.ErrInvalidMainType) {
		t.Errorf("want ErrInvalidMainType, got %v", err)
	}
}
