package summary

import (
	"github.com/shopspring/decimal"
	"github.com/tangiwai/cordis-summary/internal/domain"
)

type countryAcc struct {
	first    domain.ParticipationDetail
	acronyms []string
	acrSeen  map[string]struct{}
	pivot    map[domain.Programme]*progAcc

	// Cross-programme totals, accumulated separately from the pivot.
	totalProjects map[int64]struct{}
	totalFunded   int
	totalFunding  decimal.Decimal
}

// AggregateCountries mirrors the organisation aggregator keyed by country:
// one row per distinct filtered country in first-appearance order, with the
// acronym set, the zero-filled programme triples and the all-programme
// totals.
func (s *Summarizer) AggregateCountries(detail []domain.ParticipationDetail) []domain.CountrySummaryRow {
	accs := make(map[string]*countryAcc, len(detail))
	order := make([]string, 0, len(detail))

	for _, d := range detail {
		acc, ok := accs[d.Country]
		if !ok {
			acc = &countryAcc{
				first:         d,
				acrSeen:       make(map[string]struct{}),
				pivot:         make(map[domain.Programme]*progAcc),
				totalProjects: make(map[int64]struct{}),
			}
			accs[d.Country] = acc
			order = append(order, d.Country)
		}

		if _, dup := acc.acrSeen[d.Acronym]; !dup {
			acc.acrSeen[d.Acronym] = struct{}{}
			acc.acronyms = append(acc.acronyms, d.Acronym)
		}

		cell, ok := acc.pivot[d.FrameworkProgramme]
		if !ok {
			cell = newProgAcc()
			acc.pivot[d.FrameworkProgramme] = cell
		}
		cell.add(d.ProjectID, d.ECContribution)

		acc.totalProjects[d.ProjectID] = struct{}{}
		if isFunded(d.ECContribution) {
			acc.totalFunded++
		}
		acc.totalFunding = acc.totalFunding.Add(amountOrZero(d.ECContribution))
	}

	rows := make([]domain.CountrySummaryRow, 0, len(order))
	for _, country := range order {
		acc := accs[country]
		rows = append(rows, domain.CountrySummaryRow{
			Country:             country,
			CountryName:         acc.first.CountryName,
			ProjectAcronyms:     acc.acronyms,
			FP7:                 acc.pivot[domain.ProgrammeFP7].stats(),
			H2020:               acc.pivot[domain.ProgrammeH2020].stats(),
			Horizon:             acc.pivot[domain.ProgrammeHorizon].stats(),
			TotalProjects:       len(acc.totalProjects),
			TotalFundedProjects: acc.totalFunded,
			TotalFunding:        acc.totalFunding,
		})
	}

	return rows
}
