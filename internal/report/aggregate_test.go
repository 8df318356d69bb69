package report

import (
	"reflect"
	"testing"

	"tripdesk/internal/models/response_models"
)

func TestMergeAppsDedupsFirstSeen(t *testing.T) {
	entries := []response_models.DestinationTools{
		{
			Destination: "Japan",
			Apps: map[string][]string{
				"transportation": {"Japan Transit Planner", "Uber"},
				"communication":  {"LINE"},
			},
		},
		{
			Destination: "Korea",
			Apps: map[string][]string{
				"transportation": {"Kakao T", "Uber"},
				"navigation":     {"Naver Map"},
			},
		},
	}

	categories, byCategory := MergeApps(entries)

	if want := []string{"communication", "transportation", "navigation"}; !reflect.DeepEqual(categories, want) {
		t.Errorf("categories = %v, want %v", categories, want)
	}
	if want := []string{"Japan Transit Planner", "Uber", "Kakao T"}; !reflect.DeepEqual(byCategory["transportation"], want) {
		t.Errorf("transportation = %v, want %v", byCategory["transportation"], want)
	}
	if want := []string{"Naver Map"}; !reflect.DeepEqual(byCategory["navigation"], want) {
		t.Errorf("navigation = %v, want %v", byCategory["navigation"], want)
	}
}

func TestMergeAppsIsCaseSensitive(t *testing.T) {
	entries := []response_models.DestinationTools{
		{Apps: map[string][]string{"transportation": {"Grab"}}},
		{Apps: map[string][]string{"transportation": {"grab"}}},
	}
	_, byCategory := MergeApps(entries)
	if want := []string{"Grab", "grab"}; !reflect.DeepEqual(byCategory["transportation"], want) {
		t.Errorf("transportation = %v, want %v", byCategory["transportation"], want)
	}
}

func TestMergeESIMs(t *testing.T) {
	entries := []response_models.DestinationTools{
		{ESIM: []string{"Airalo", "Nomad"}},
		{ESIM: []string{"Nomad", "Ubigi"}},
	}
	if got, want := MergeESIMs(entries), []string{"Airalo", "Nomad", "Ubigi"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MergeESIMs = %v, want %v", got, want)
	}
}

func TestBudgetRowsKeepsKnownOrder(t *testing.T) {
	b := response_models.Budget{
		Breakdown: map[string]float64{
			"transportation": 300,
			"accommodation":  800,
			"food":           400,
			"visaFees":       120,
			"activities":     200,
		},
	}
	rows := BudgetRows(b)
	want := []BudgetRow{
		{Label: "Accommodation", USD: 800},
		{Label: "Food", USD: 400},
		{Label: "Transportation", USD: 300},
		{Label: "Activities", USD: 200},
		{Label: "Visa Fees", USD: 120},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("BudgetRows = %v, want %v", rows, want)
	}
}

func TestSingleExchangeRate(t *testing.T) {
	one := []response_models.DestinationCurrency{{LocalCurrency: "JPY", ExchangeRate: 147.5}}
	code, rate, ok := SingleExchangeRate(one)
	if !ok || code != "JPY" || rate != 147.5 {
		t.Errorf("got %q %v %v", code, rate, ok)
	}

	two := []response_models.DestinationCurrency{
		{LocalCurrency: "JPY", ExchangeRate: 147.5},
		{LocalCurrency: "KRW", ExchangeRate: 1390},
	}
	if _, _, ok := SingleExchangeRate(two); ok {
		t.Error("multi-currency trip should not report a single rate")
	}

	zero := []response_models.DestinationCurrency{{LocalCurrency: "JPY"}}
	if _, _, ok := SingleExchangeRate(zero); ok {
		t.Error("zero rate should not be usable")
	}
}

func TestLocalAmount(t *testing.T) {
	if got := LocalAmount(100, 147.5); got != 14750.0 {
		t.Errorf("LocalAmount(100, 147.5) = %v", got)
	}
	// Half values round away from zero.
	if got := LocalAmount(1, 0.125); got != 0.13 {
		t.Errorf("LocalAmount(1, 0.125) = %v", got)
	}
	if got := LocalAmount(2.5, 3); got != 7.5 {
		t.Errorf("LocalAmount(2.5, 3) = %v", got)
	}
}

func TestTitleCaseKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"budgetTravel", "Budget Travel"},
		{"visa_fees", "Visa Fees"},
		{"local-transport", "Local Transport"},
		{"miscellaneous", "Miscellaneous"},
	}
	for _, c := range cases {
		if got := TitleCaseKey(c.in); got != c.want {
			t.Errorf("TitleCaseKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAppCategoryLabel(t *testing.T) {
	if got := AppCategoryLabel("budgetTravel"); got != "Budget Travel" {
		t.Errorf("known key = %q", got)
	}
	if got := AppCategoryLabel("nightLife"); got != "Night Life" {
		t.Errorf("fallback key = %q", got)
	}
}
