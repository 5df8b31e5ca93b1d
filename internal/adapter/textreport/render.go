// Package textreport renders a getaway report as human-readable text,
// suitable for terminal display or saving alongside batch output files.
package textreport

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

const bannerWidth = 70

// Render formats a report as readable text: a banner header, the source
// line, the weight mix, then one numbered block per result with its score
// breakdown and any data-quality warnings.
func Render(report domain.Report) string {
	var b strings.Builder

	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(&b, "%s\n", banner)
	fmt.Fprintf(&b, "TOP %d WEEKEND GETAWAYS FROM %s\n", len(report.Results), strings.ToUpper(report.SourceCity))
	fmt.Fprintf(&b, "%s\n\n", banner)
	fmt.Fprintf(&b, "Source: %s, %s\n", report.SourceCity, report.SourceState)
	fmt.Fprintf(&b, "Ranking based on: Rating (%.0f%%), Proximity (%.0f%%), Category (%.0f%%)\n\n",
		report.Weights.Rating*100, report.Weights.Proximity*100, report.Weights.Category*100)

	for _, entry := range report.Results {
		fmt.Fprintf(&b, "%d. %s\n", entry.Rank, entry.Name)
		fmt.Fprintf(&b, "   Location: %s, %s\n", entry.City, entry.State)
		if entry.Category != "" {
			fmt.Fprintf(&b, "   Category: %s\n", entry.Category)
		}
		if entry.Rating != "" {
			fmt.Fprintf(&b, "   Rating: %s\n", entry.Rating)
		}
		fmt.Fprintf(&b, "   Weekend Score: %.3f\n", entry.Breakdown.Composite)
		fmt.Fprintf(&b, "   (Proximity: %.1f [%s], Rating: %.2f, Category: %.2f)\n",
			entry.Breakdown.ProximityScore, entry.Breakdown.Tier,
			entry.Breakdown.RatingScore, entry.Breakdown.CategoryScore)
		for _, w := range entry.Breakdown.Warnings {
			fmt.Fprintf(&b, "   ! %s: %s\n", w.Kind, w.Detail)
		}
		b.WriteString("\n")
	}

	return b.String()
}
