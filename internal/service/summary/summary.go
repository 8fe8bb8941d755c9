// Package summary is the aggregation and pivoting engine: it turns raw
// participation-level CORDIS records into organisation-level, project-level
// and country-level summaries broken down by framework programme. Every stage
// is a pure function over in-memory relations; repeated runs over identical
// inputs produce identical output.
package summary

import (
	"context"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
)

// Summarizer holds the injected collaborators: the country-name lookup and
// the hyperlink base URLs used by decoration.
type Summarizer struct {
	countryName    func(code string) string
	orgBaseURL     string
	projectBaseURL string
}

func NewSummarizer(countryName func(code string) string, orgBaseURL, projectBaseURL string) *Summarizer {
	return &Summarizer{
		countryName:    countryName,
		orgBaseURL:     orgBaseURL,
		projectBaseURL: projectBaseURL,
	}
}

// Summarize runs the whole pipeline: filter to the country set, join project
// attributes, aggregate per organisation, project and country, then decorate
// identifiers with hyperlink targets. countrySet must already use the codes
// the data uses (UK, not GB). An empty filter result yields empty relations,
// not an error.
func (s *Summarizer) Summarize(ctx context.Context, participations []domain.ParticipationRecord, projects []domain.ProjectRecord, countrySet []string) *domain.SummaryResult {
	filtered := FilterByCountry(participations, countrySet)
	detail := s.JoinProjects(ctx, filtered, projects)

	res := &domain.SummaryResult{
		Detail:        detail,
		Organisations: AggregateOrganisations(detail),
		Projects:      AggregateProjects(detail, participations),
		Countries:     s.AggregateCountries(detail),
	}

	s.Decorate(res)
	return res
}

// FilterByCountry restricts the participation relation to rows whose country
// is in the set. Rows are copied, never mutated.
func FilterByCountry(rows []domain.ParticipationRecord, countrySet []string) []domain.ParticipationRecord {
	set := make(map[string]struct{}, len(countrySet))
	for _, c := range countrySet {
		set[c] = struct{}{}
	}

	filtered := make([]domain.ParticipationRecord, 0, len(rows))
	for _, r := range rows {
		if _, ok := set[r.Country]; ok {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// JoinProjects left-joins the filtered participation rows onto the project
// relation by projectId and derives countryName. Unmatched projectIds keep
// their participation row with empty joined fields; unknown country codes get
// an empty display name. Neither ever drops a row.
//
// The join is by id alone, as the source does it. CORDIS ids are globally
// unique across the three dumps in practice; if an id ever maps to more than
// one project row the first one wins and the divergence is logged.
func (s *Summarizer) JoinProjects(ctx context.Context, filtered []domain.ParticipationRecord, projects []domain.ProjectRecord) []domain.ParticipationDetail {
	byID := make(map[int64]domain.ProjectRecord, len(projects))
	for _, p := range projects {
		if prev, ok := byID[p.ProjectID]; ok {
			if prev.FrameworkProgramme != p.FrameworkProgramme {
				logger.Debugf(ctx, "projectId %d appears in both %s and %s; keeping %s",
					p.ProjectID, prev.FrameworkProgramme, p.FrameworkProgramme, prev.FrameworkProgramme)
			}
			continue
		}
		byID[p.ProjectID] = p
	}

	detail := make([]domain.ParticipationDetail, 0, len(filtered))
	for _, r := range filtered {
		d := domain.ParticipationDetail{
			FrameworkProgramme: r.FrameworkProgramme,
			ProjectID:          r.ProjectID,
			Acronym:            r.Acronym,
			Country:            r.Country,
			CountryName:        s.countryName(r.Country),
			OrganisationID:     r.OrganisationID,
			OrganisationName:   r.OrganisationName,
			ShortName:          r.ShortName,
			ActivityType:       r.ActivityType,
			SME:                r.SME,
			OrderInProject:     r.OrderInProject,
			Role:               r.Role,
			ECContribution:     r.ECContribution,
			NetECContribution:  r.NetECContribution,
			TotalCost:          r.TotalCost,
		}

		if p, ok := byID[r.ProjectID]; ok {
			d.Title = p.Title
			d.TypeOfAction = p.FundingScheme
			d.SubCall = p.SubCall
			d.SignatureDate = p.SignatureDate
			d.StartDate = p.StartDate
			d.EndDate = p.EndDate
		}

		detail = append(detail, d)
	}

	return detail
}
