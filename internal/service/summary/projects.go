package summary

import (
	"github.com/shopspring/decimal"
	"github.com/tangiwai/cordis-summary/internal/domain"
)

// AggregateProjects produces one row per distinct project acronym in the
// filtered-joined relation, ordered by first appearance. Country sets come
// from two passes: matched countries over the filtered rows, all countries
// over the full unfiltered relation. Contribution sums count strictly
// positive values only; null must not pass for zero here, it is simply
// skipped.
func AggregateProjects(detail []domain.ParticipationDetail, all []domain.ParticipationRecord) []domain.ProjectSummaryRow {
	firsts := make(map[string]domain.ParticipationDetail, len(detail))
	order := make([]string, 0, len(detail))

	matchedCountries := make(map[string][]string)
	matchedSeen := make(map[string]map[string]struct{})

	matchedSums := make(map[int64]decimal.Decimal)

	for _, d := range detail {
		if _, ok := firsts[d.Acronym]; !ok {
			firsts[d.Acronym] = d
			order = append(order, d.Acronym)
		}

		seen, ok := matchedSeen[d.Acronym]
		if !ok {
			seen = make(map[string]struct{})
			matchedSeen[d.Acronym] = seen
		}
		if _, dup := seen[d.Country]; !dup {
			seen[d.Country] = struct{}{}
			matchedCountries[d.Acronym] = append(matchedCountries[d.Acronym], d.Country)
		}

		if isFunded(d.ECContribution) {
			matchedSums[d.ProjectID] = matchedSums[d.ProjectID].Add(d.ECContribution.Decimal)
		} else if _, ok := matchedSums[d.ProjectID]; !ok {
			matchedSums[d.ProjectID] = decimal.Zero
		}
	}

	// Second pass over the unfiltered relation for the all-countries sets and
	// the all-participants contribution sums.
	allCountries := make(map[string][]string)
	allSeen := make(map[string]map[string]struct{})
	totalSums := make(map[int64]decimal.Decimal)

	for _, r := range all {
		seen, ok := allSeen[r.Acronym]
		if !ok {
			seen = make(map[string]struct{})
			allSeen[r.Acronym] = seen
		}
		if _, dup := seen[r.Country]; !dup {
			seen[r.Country] = struct{}{}
			allCountries[r.Acronym] = append(allCountries[r.Acronym], r.Country)
		}

		if isFunded(r.ECContribution) {
			totalSums[r.ProjectID] = totalSums[r.ProjectID].Add(r.ECContribution.Decimal)
		} else if _, ok := totalSums[r.ProjectID]; !ok {
			totalSums[r.ProjectID] = decimal.Zero
		}
	}

	rows := make([]domain.ProjectSummaryRow, 0, len(order))
	for _, acronym := range order {
		first := firsts[acronym]
		row := domain.ProjectSummaryRow{
			FrameworkProgramme: first.FrameworkProgramme,
			ProjectID:          first.ProjectID,
			Acronym:            acronym,
			Title:              first.Title,
			SignatureDate:      first.SignatureDate,
			StartDate:          first.StartDate,
			EndDate:            first.EndDate,
			TypeOfAction:       first.TypeOfAction,
			SubCall:            first.SubCall,
			MatchedCountries:   matchedCountries[acronym],
			AllCountries:       allCountries[acronym],
		}

		if sum, ok := matchedSums[first.ProjectID]; ok {
			row.MatchedCountryContribution = decimal.NullDecimal{Decimal: sum, Valid: true}
		}
		if sum, ok := totalSums[first.ProjectID]; ok {
			row.TotalContribution = decimal.NullDecimal{Decimal: sum, Valid: true}
		}

		rows = append(rows, row)
	}

	return rows
}
