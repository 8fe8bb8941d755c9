package summary

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tangiwai/cordis-summary/internal/domain"
)

// progAcc accumulates one (key, programme) pivot cell.
type progAcc struct {
	projects map[int64]struct{}
	funded   int
	sum      decimal.Decimal
}

func newProgAcc() *progAcc {
	return &progAcc{projects: make(map[int64]struct{})}
}

func (a *progAcc) add(projectID int64, contribution decimal.NullDecimal) {
	a.projects[projectID] = struct{}{}
	if isFunded(contribution) {
		a.funded++
	}
	a.sum = a.sum.Add(amountOrZero(contribution))
}

func (a *progAcc) stats() domain.ProgrammeStats {
	if a == nil {
		return domain.ProgrammeStats{Contribution: decimal.Zero}
	}
	return domain.ProgrammeStats{
		Projects:       len(a.projects),
		FundedProjects: a.funded,
		Contribution:   a.sum,
	}
}

type orgAcc struct {
	first      domain.ParticipationDetail
	programmes []domain.Programme
	progSeen   map[domain.Programme]struct{}
	total      decimal.Decimal
	projects   map[int64]struct{}
	pivot      map[domain.Programme]*progAcc
}

// AggregateOrganisations produces one row per distinct organisationId in the
// filtered-joined relation, ordered by first appearance. Descriptive fields
// come from the first row seen for the id; rows with an absent id were
// already bucketed under -1 upstream. The per-programme pivot is zero-filled
// for programmes the organisation never joined.
func AggregateOrganisations(detail []domain.ParticipationDetail) []domain.OrganisationSummaryRow {
	accs := make(map[int64]*orgAcc, len(detail))
	order := make([]int64, 0, len(detail))

	for _, d := range detail {
		acc, ok := accs[d.OrganisationID]
		if !ok {
			acc = &orgAcc{
				first:    d,
				progSeen: make(map[domain.Programme]struct{}),
				projects: make(map[int64]struct{}),
				pivot:    make(map[domain.Programme]*progAcc),
			}
			accs[d.OrganisationID] = acc
			order = append(order, d.OrganisationID)
		}

		if _, seen := acc.progSeen[d.FrameworkProgramme]; !seen {
			acc.progSeen[d.FrameworkProgramme] = struct{}{}
			acc.programmes = append(acc.programmes, d.FrameworkProgramme)
		}
		acc.total = acc.total.Add(amountOrZero(d.ECContribution))
		acc.projects[d.ProjectID] = struct{}{}

		cell, ok := acc.pivot[d.FrameworkProgramme]
		if !ok {
			cell = newProgAcc()
			acc.pivot[d.FrameworkProgramme] = cell
		}
		cell.add(d.ProjectID, d.ECContribution)
	}

	rows := make([]domain.OrganisationSummaryRow, 0, len(order))
	for _, id := range order {
		acc := accs[id]
		rows = append(rows, domain.OrganisationSummaryRow{
			OrganisationID:    id,
			OrganisationName:  acc.first.OrganisationName,
			ShortName:         acc.first.ShortName,
			Country:           acc.first.Country,
			CountryName:       acc.first.CountryName,
			ActivityType:      acc.first.ActivityType,
			SME:               acc.first.SME,
			ProjectCount:      len(acc.projects),
			ProgrammesJoined:  strings.Join(acc.programmes, ", "),
			TotalContribution: acc.total,
			FP7:               acc.pivot[domain.ProgrammeFP7].stats(),
			H2020:             acc.pivot[domain.ProgrammeH2020].stats(),
			Horizon:           acc.pivot[domain.ProgrammeHorizon].stats(),
		})
	}

	return rows
}
