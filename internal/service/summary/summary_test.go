package summary

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/countries"
)

func testSummarizer() *Summarizer {
	return NewSummarizer(countries.Name, "https://org.example/", "https://project.example/")
}

func participation(org int64, name, country string, projectID int64, acronym, amount string, programme domain.Programme) domain.ParticipationRecord {
	return domain.ParticipationRecord{
		OrganisationID:     org,
		OrganisationName:   name,
		Country:            country,
		ProjectID:          projectID,
		Acronym:            acronym,
		ECContribution:     CoerceAmount(amount),
		FrameworkProgramme: programme,
	}
}

func TestSummarizeTwoCountryProject(t *testing.T) {
	participations := []domain.ParticipationRecord{
		participation(1, "UniX", "NZ", 100, "ABC", "50000", domain.ProgrammeH2020),
		participation(2, "UniY", "AU", 100, "ABC", "30000", domain.ProgrammeH2020),
	}
	projects := []domain.ProjectRecord{
		{ProjectID: 100, Acronym: "ABC", Title: "Project ABC", FrameworkProgramme: domain.ProgrammeH2020},
	}

	res := testSummarizer().Summarize(context.Background(), participations, projects, []string{"NZ"})

	require.Len(t, res.Detail, 1)
	assert.Equal(t, "UniX", res.Detail[0].OrganisationName)
	assert.Equal(t, "Project ABC", res.Detail[0].Title)
	assert.Equal(t, "New Zealand", res.Detail[0].CountryName)

	require.Len(t, res.Organisations, 1)
	org := res.Organisations[0]
	assert.Equal(t, int64(1), org.OrganisationID)
	assert.Equal(t, 1, org.ProjectCount)
	assert.Equal(t, "H2020", org.ProgrammesJoined)
	assert.Equal(t, "50000", org.H2020.Contribution.String())
	assert.Equal(t, 1, org.H2020.Projects)
	assert.Equal(t, 1, org.H2020.FundedProjects)
	assert.Equal(t, 0, org.FP7.Projects)
	assert.True(t, org.FP7.Contribution.IsZero())

	require.Len(t, res.Projects, 1)
	proj := res.Projects[0]
	assert.Equal(t, "ABC", proj.Acronym)
	require.True(t, proj.MatchedCountryContribution.Valid)
	assert.Equal(t, "50000", proj.MatchedCountryContribution.Decimal.String())
	require.True(t, proj.TotalContribution.Valid)
	assert.Equal(t, "80000", proj.TotalContribution.Decimal.String())
	assert.Equal(t, []string{"NZ"}, proj.MatchedCountries)
	assert.Equal(t, []string{"NZ", "AU"}, proj.AllCountries)

	require.Len(t, res.Countries, 1)
	country := res.Countries[0]
	assert.Equal(t, "NZ", country.Country)
	assert.Equal(t, 1, country.H2020.Projects)
	assert.Equal(t, 1, country.H2020.FundedProjects)
	assert.Equal(t, "50000", country.H2020.Contribution.String())
	assert.Equal(t, 1, country.TotalProjects)
	assert.Equal(t, 1, country.TotalFundedProjects)
	assert.Equal(t, "50000", country.TotalFunding.String())
}

func TestSummarizeNullContribution(t *testing.T) {
	participations := []domain.ParticipationRecord{
		participation(1, "UniX", "NZ", 100, "ABC", "", domain.ProgrammeH2020),
		participation(2, "UniY", "AU", 100, "ABC", "30000", domain.ProgrammeH2020),
	}
	projects := []domain.ProjectRecord{
		{ProjectID: 100, Acronym: "ABC", FrameworkProgramme: domain.ProgrammeH2020},
	}

	res := testSummarizer().Summarize(context.Background(), participations, projects, []string{"NZ"})

	require.Len(t, res.Countries, 1)
	country := res.Countries[0]
	assert.Equal(t, 1, country.H2020.Projects)
	assert.Equal(t, 0, country.H2020.FundedProjects)
	assert.True(t, country.H2020.Contribution.IsZero())

	// The null never passes for zero in the positive-only project sums: the
	// matched side holds an explicit zero, the total side only UniY's share.
	require.Len(t, res.Projects, 1)
	require.True(t, res.Projects[0].MatchedCountryContribution.Valid)
	assert.True(t, res.Projects[0].MatchedCountryContribution.Decimal.IsZero())
	require.True(t, res.Projects[0].TotalContribution.Valid)
	assert.Equal(t, "30000", res.Projects[0].TotalContribution.Decimal.String())
}

func TestSummarizeUnknownCountryKept(t *testing.T) {
	participations := []domain.ParticipationRecord{
		participation(1, "UniX", "XX", 100, "ABC", "1000", domain.ProgrammeHorizon),
	}

	res := testSummarizer().Summarize(context.Background(), participations, nil, []string{"XX"})

	require.Len(t, res.Detail, 1)
	assert.Equal(t, "", res.Detail[0].CountryName)
	require.Len(t, res.Countries, 1)
	assert.Equal(t, "XX", res.Countries[0].Country)
	assert.Equal(t, "", res.Countries[0].CountryName)
}

func TestFilterByCountry(t *testing.T) {
	rows := []domain.ParticipationRecord{
		participation(1, "a", "NZ", 1, "A", "1", domain.ProgrammeFP7),
		participation(2, "b", "DE", 2, "B", "1", domain.ProgrammeFP7),
		participation(3, "c", "AU", 3, "C", "1", domain.ProgrammeFP7),
	}

	filtered := FilterByCountry(rows, []string{"NZ", "AU"})
	require.Len(t, filtered, 2)
	assert.Equal(t, "NZ", filtered[0].Country)
	assert.Equal(t, "AU", filtered[1].Country)

	assert.Empty(t, FilterByCountry(rows, nil))
}

func TestJoinProjectsLeftJoin(t *testing.T) {
	filtered := []domain.ParticipationRecord{
		participation(1, "a", "NZ", 100, "ABC", "1", domain.ProgrammeH2020),
		participation(2, "b", "NZ", 999, "GHOST", "1", domain.ProgrammeH2020),
	}
	projects := []domain.ProjectRecord{
		{
			ProjectID:          100,
			Title:              "Project ABC",
			FundingScheme:      "RIA",
			SubCall:            "H2020-SC1",
			SignatureDate:      "2019-01-01",
			FrameworkProgramme: domain.ProgrammeH2020,
		},
	}

	detail := testSummarizer().JoinProjects(context.Background(), filtered, projects)
	require.Len(t, detail, 2)

	assert.Equal(t, "Project ABC", detail[0].Title)
	assert.Equal(t, "RIA", detail[0].TypeOfAction)
	assert.Equal(t, "H2020-SC1", detail[0].SubCall)
	assert.Equal(t, "2019-01-01", detail[0].SignatureDate)

	// Unmatched projectId keeps its row with empty joined fields.
	assert.Equal(t, "GHOST", detail[1].Acronym)
	assert.Equal(t, "", detail[1].Title)
	assert.Equal(t, "", detail[1].TypeOfAction)
}

func TestJoinProjectsFirstProjectWins(t *testing.T) {
	filtered := []domain.ParticipationRecord{
		participation(1, "a", "NZ", 100, "ABC", "1", domain.ProgrammeFP7),
	}
	projects := []domain.ProjectRecord{
		{ProjectID: 100, Title: "first", FrameworkProgramme: domain.ProgrammeFP7},
		{ProjectID: 100, Title: "second", FrameworkProgramme: domain.ProgrammeHorizon},
	}

	detail := testSummarizer().JoinProjects(context.Background(), filtered, projects)
	require.Len(t, detail, 1)
	assert.Equal(t, "first", detail[0].Title)
}

func TestSummarizeDeterministic(t *testing.T) {
	participations := []domain.ParticipationRecord{
		participation(3, "c", "NZ", 30, "C", "10", domain.ProgrammeFP7),
		participation(1, "a", "NZ", 10, "A", "20", domain.ProgrammeH2020),
		participation(2, "b", "AU", 20, "B", "30", domain.ProgrammeHorizon),
		participation(1, "a", "NZ", 20, "B", "5", domain.ProgrammeHorizon),
	}

	first := testSummarizer().Summarize(context.Background(), participations, nil, []string{"NZ", "AU"})
	for i := 0; i < 10; i++ {
		again := testSummarizer().Summarize(context.Background(), participations, nil, []string{"NZ", "AU"})
		assert.Equal(t, first, again)
	}

	// First-appearance order, not key order.
	require.Len(t, first.Organisations, 3)
	assert.Equal(t, int64(3), first.Organisations[0].OrganisationID)
	assert.Equal(t, int64(1), first.Organisations[1].OrganisationID)
	assert.Equal(t, int64(2), first.Organisations[2].OrganisationID)
	assert.Equal(t, "H2020, HORIZON", first.Organisations[1].ProgrammesJoined)
}

func TestAggregateOrganisationsMissingIDBucket(t *testing.T) {
	detail := []domain.ParticipationDetail{
		{OrganisationID: domain.OrganisationIDMissing, OrganisationName: "anon1", ProjectID: 1,
			ECContribution: CoerceAmount("10"), FrameworkProgramme: domain.ProgrammeH2020},
		{OrganisationID: domain.OrganisationIDMissing, OrganisationName: "anon2", ProjectID: 2,
			ECContribution: CoerceAmount("20"), FrameworkProgramme: domain.ProgrammeH2020},
	}

	rows := AggregateOrganisations(detail)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.OrganisationIDMissing, rows[0].OrganisationID)
	assert.Equal(t, "anon1", rows[0].OrganisationName)
	assert.Equal(t, 2, rows[0].ProjectCount)
	assert.Equal(t, "30", rows[0].TotalContribution.String())
}

func TestPivotReconcilesWithTotals(t *testing.T) {
	detail := []domain.ParticipationDetail{
		{OrganisationID: 1, Country: "NZ", ProjectID: 1, Acronym: "A",
			ECContribution: CoerceAmount("100"), FrameworkProgramme: domain.ProgrammeFP7},
		{OrganisationID: 1, Country: "NZ", ProjectID: 2, Acronym: "B",
			ECContribution: CoerceAmount("200"), FrameworkProgramme: domain.ProgrammeH2020},
		{OrganisationID: 1, Country: "NZ", ProjectID: 3, Acronym: "C",
			ECContribution: decimal.NullDecimal{}, FrameworkProgramme: domain.ProgrammeHorizon},
	}

	orgs := AggregateOrganisations(detail)
	require.Len(t, orgs, 1)
	sum := orgs[0].FP7.Contribution.Add(orgs[0].H2020.Contribution).Add(orgs[0].Horizon.Contribution)
	assert.True(t, sum.Equal(orgs[0].TotalContribution))

	countries := testSummarizer().AggregateCountries(detail)
	require.Len(t, countries, 1)
	c := countries[0]
	sum = c.FP7.Contribution.Add(c.H2020.Contribution).Add(c.Horizon.Contribution)
	assert.True(t, sum.Equal(c.TotalFunding))
	assert.Equal(t, c.TotalProjects, c.FP7.Projects+c.H2020.Projects+c.Horizon.Projects)
	assert.Equal(t, c.TotalFundedProjects, c.FP7.FundedProjects+c.H2020.FundedProjects+c.Horizon.FundedProjects)
}
