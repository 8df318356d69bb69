package report

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"tripdesk/internal/models/response_models"
)

// appCategoryLabels covers the categories the planning API emits
// today; anything new falls back to TitleCaseKey.
var appCategoryLabels = map[string]string{
	"transportation": "Transportation",
	"lodging":        "Lodging",
	"communication":  "Communication",
	"budgetTravel":   "Budget Travel",
	"navigation":     "Navigation",
	"utilities":      "Utilities",
}

// budgetLabels maps known budget categories; the breakdown's last
// category has changed name across API versions, so both appear here.
var budgetLabels = map[string]string{
	"accommodation":  "Accommodation",
	"food":           "Food",
	"transportation": "Transportation",
	"activities":     "Activities",
	"stay":           "Stay",
	"miscellaneous":  "Miscellaneous",
}

var budgetOrder = []string{"accommodation", "food", "transportation", "activities", "stay", "miscellaneous"}

type BudgetRow struct {
	Label string
	USD   float64
}

// BudgetRows flattens the breakdown into display rows: well-known
// categories in their fixed order first, then any additions sorted by
// key so the table stays deterministic.
func BudgetRows(b response_models.Budget) []BudgetRow {
	rows := make([]BudgetRow, 0, len(b.Breakdown))
	seen := make(map[string]bool, len(b.Breakdown))

	for _, key := range budgetOrder {
		if usd, ok := b.Breakdown[key]; ok {
			rows = append(rows, BudgetRow{Label: budgetLabels[key], USD: usd})
			seen[key] = true
		}
	}

	var extra []string
	for key := range b.Breakdown {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		rows = append(rows, BudgetRow{Label: TitleCaseKey(key), USD: b.Breakdown[key]})
	}
	return rows
}

// SingleExchangeRate reports the one usable rate when the trip has
// exactly one destination currency; multi-currency trips render the
// budget table in USD only.
func SingleExchangeRate(currencies []response_models.DestinationCurrency) (code string, rate float64, ok bool) {
	if len(currencies) != 1 || currencies[0].ExchangeRate <= 0 {
		return "", 0, false
	}
	return currencies[0].LocalCurrency, currencies[0].ExchangeRate, true
}

// LocalAmount converts for display only: round(usd * rate, 2). Stored
// USD values are never mutated.
func LocalAmount(usd, rate float64) float64 {
	return math.Round(usd*rate*100) / 100
}

// MergeApps unions the per-category application lists of every
// destination. Dedup is case-sensitive exact match; both category and
// app order is first-seen across the input.
func MergeApps(entries []response_models.DestinationTools) (categories []string, byCategory map[string][]string) {
	byCategory = make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, entry := range entries {
		keys := make([]string, 0, len(entry.Apps))
		for key := range entry.Apps {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if seen[key] == nil {
				seen[key] = make(map[string]bool)
				categories = append(categories, key)
			}
			for _, app := range entry.Apps[key] {
				if !seen[key][app] {
					seen[key][app] = true
					byCategory[key] = append(byCategory[key], app)
				}
			}
		}
	}
	return categories, byCategory
}

// MergeESIMs unions eSIM provider lists with the same set semantics.
func MergeESIMs(entries []response_models.DestinationTools) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, provider := range entry.ESIM {
			if !seen[provider] {
				seen[provider] = true
				merged = append(merged, provider)
			}
		}
	}
	return merged
}

// AppCategoryLabel resolves a category key to its display label.
func AppCategoryLabel(key string) string {
	if label, ok := appCategoryLabels[key]; ok {
		return label
	}
	return TitleCaseKey(key)
}

// TitleCaseKey renders an arbitrary JSON key as a display label:
// camelCase, snake_case and kebab-case all split into spaced words
// with each word capitalised ("budgetTravel" -> "Budget Travel").
func TitleCaseKey(key string) string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for _, r := range key {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && len(current) > 0 && !unicode.IsUpper(current[len(current)-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
