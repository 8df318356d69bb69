package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"tripdesk/internal/models/response_models"
)

// A4 portrait in millimetres. The cursor is managed by hand so that
// the page-break decision happens per wrapped line, never per section:
// a long paragraph is allowed to split mid-paragraph.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 14.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 20.0
	printWidth   = pageWidth - marginLeft - marginRight

	bodyLineHeight    = 8.0
	headingLineHeight = 10.0
	bodyFontSize      = 12.0
	headingFontSize   = 14.0
	titleFontSize     = 18.0
)

type renderer struct {
	pdf *fpdf.Fpdf
	y   float64
}

func newRenderer() *renderer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &renderer{pdf: pdf, y: marginTop}
}

// Render turns a plan into the exported PDF document. It assumes a
// well-formed PlanResult; empty optional slices simply render nothing
// under their headers.
func Render(plan *response_models.PlanResult) ([]byte, error) {
	r := newRenderer()
	r.title("Travel Planner - Results")

	r.heading("Visa & Entry")
	r.paragraph(FlattenHTML(plan.Visa))

	r.budgetSection(plan)
	r.localToolsSection(plan.Local)
	r.currencySection(plan.Currencies)
	r.safetySection(plan.Safety)
	r.miniPlanSection(plan.Mini)

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *renderer) title(text string) {
	r.pdf.SetFont("Arial", "B", titleFontSize)
	r.pdf.Text(marginLeft, r.y, text)
	r.y += headingLineHeight
}

func (r *renderer) heading(text string) {
	r.writeLines(text, "B", headingFontSize, headingLineHeight)
}

func (r *renderer) paragraph(text string) {
	r.writeLines(text, "", bodyFontSize, bodyLineHeight)
}

// writeLines wraps text to the printable width and writes it line by
// line, starting a new page whenever the cursor has run past the
// printable height.
func (r *renderer) writeLines(text, style string, fontSize, lineHeight float64) {
	if text == "" {
		return
	}
	r.pdf.SetFont("Arial", style, fontSize)
	for _, line := range r.pdf.SplitText(text, printWidth) {
		r.breakPageIfNeeded()
		r.pdf.Text(marginLeft, r.y, line)
		r.y += lineHeight
	}
}

func (r *renderer) breakPageIfNeeded() {
	if r.y > pageHeight-marginBottom {
		r.pdf.AddPage()
		r.y = marginTop
	}
}

func (r *renderer) gap(h float64) {
	r.y += h
}

// rule draws the separator between destination blocks.
func (r *renderer) rule() {
	r.breakPageIfNeeded()
	r.pdf.Line(marginLeft, r.y-2, pageWidth-marginRight, r.y-2)
	r.y += bodyLineHeight / 2
}

func (r *renderer) budgetSection(plan *response_models.PlanResult) {
	code, rate, dual := SingleExchangeRate(plan.Currencies)

	rows := BudgetRows(plan.Budget)
	rows = append(rows,
		BudgetRow{Label: "Total / Day", USD: plan.Budget.PerDayUSD},
		BudgetRow{Label: "Total Trip", USD: plan.Budget.TotalUSD},
	)

	r.gap(2)
	r.heading("Budget Breakdown")
	if dual {
		r.tableRow("Category", "USD", code, true)
	} else {
		r.tableRow("Category", "USD", "", true)
	}
	for _, row := range rows {
		usd := strconv.FormatFloat(row.USD, 'f', 2, 64)
		local := ""
		if dual {
			local = strconv.FormatFloat(LocalAmount(row.USD, rate), 'f', 2, 64)
		}
		r.tableRow(row.Label, usd, local, false)
	}
}

// tableRow writes one fixed-column budget line. Column offsets are in
// page coordinates; the local column is skipped when empty.
func (r *renderer) tableRow(category, usd, local string, header bool) {
	style := ""
	if header {
		style = "B"
	}
	r.pdf.SetFont("Arial", style, bodyFontSize)
	r.breakPageIfNeeded()
	r.pdf.Text(marginLeft, r.y, category)
	r.pdf.Text(marginLeft+70, r.y, usd)
	if local != "" {
		r.pdf.Text(marginLeft+110, r.y, local)
	}
	r.y += bodyLineHeight
}

func (r *renderer) localToolsSection(entries []response_models.DestinationTools) {
	r.gap(2)
	r.heading("Local Tools & Connectivity")

	categories, byCategory := MergeApps(entries)
	for _, key := range categories {
		r.paragraph(AppCategoryLabel(key) + ": " + strings.Join(byCategory[key], ", "))
	}
	if esims := MergeESIMs(entries); len(esims) > 0 {
		r.paragraph("eSIMs: " + strings.Join(esims, ", "))
	}
}

func (r *renderer) currencySection(entries []response_models.DestinationCurrency) {
	r.gap(2)
	r.heading("Currency & Exchange Tips")

	for i, cur := range entries {
		if i > 0 {
			r.rule()
		}
		if cur.Destination != "" {
			r.writeLines(cur.Destination, "B", bodyFontSize, bodyLineHeight)
		}
		r.paragraph("Local Currency: " + cur.LocalCurrency)
		r.paragraph(fmt.Sprintf("Exchange Rate (USD -> %s): %g", cur.LocalCurrency, cur.ExchangeRate))
		for _, tip := range cur.ExchangeTips {
			r.paragraph("- " + tip)
		}
	}
}

func (r *renderer) safetySection(entries []response_models.DestinationSafety) {
	r.gap(2)
	r.heading("Safety & Emergency")

	for i, s := range entries {
		if i > 0 {
			r.rule()
		}
		if s.Destination != "" {
			r.writeLines(s.Destination, "B", bodyFontSize, bodyLineHeight)
		}
		r.paragraph("General Safety: " + FlattenHTML(s.GeneralSafety))
		if s.ScamsAndReviews != "" {
			r.paragraph("Scams & Reviews: " + FlattenHTML(s.ScamsAndReviews))
		}
		r.paragraph(fmt.Sprintf("Emergency Numbers: Police - %d, Ambulance/Fire - %d",
			s.EmergencyNumbers.Police, s.EmergencyNumbers.AmbulanceFire))
		if s.TravelInsurance != "" {
			r.paragraph("Travel Insurance: " + FlattenHTML(s.TravelInsurance))
		}
	}
}

func (r *renderer) miniPlanSection(mini []string) {
	r.gap(2)
	r.heading("Mini Plan")
	for _, line := range ItineraryLines(mini) {
		r.paragraph(line)
	}
}

// ItineraryLines numbers the mini itinerary in order: "1. ...".
func ItineraryLines(mini []string) []string {
	lines := make([]string, len(mini))
	for i, item := range mini {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return lines
}
