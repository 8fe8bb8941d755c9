package cordis

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/xuri/excelize/v2"
)

func writeSheet(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func TestParseOrganisations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "organization.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"projectID", "projectAcronym", "organisationID", "name", "shortName", "country",
			"activityType", "SME", "role", "order", "ecContribution", "netEcContribution", "totalCost"},
		{"101000001", "ABC", "999501234", "University of Example", "UOE", "nz",
			"HES", "false", "participant", "2", "250000.50", "250000.50", "300000"},
		{"101000002", "DEF", "", "Unnamed Org", "", "AU",
			"PRC", "true", "coordinator", "1", "not available", "", "1,5"},
	})

	records, err := parseOrganisations(context.Background(), path, domain.ProgrammeHorizon)
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, int64(999501234), r.OrganisationID)
	assert.Equal(t, "University of Example", r.OrganisationName)
	assert.Equal(t, "NZ", r.Country)
	assert.False(t, r.SME)
	assert.Equal(t, 2, r.OrderInProject)
	assert.Equal(t, int64(101000001), r.ProjectID)
	assert.Equal(t, domain.ProgrammeHorizon, r.FrameworkProgramme)
	require.True(t, r.ECContribution.Valid)
	assert.Equal(t, "250000.5", r.ECContribution.Decimal.String())

	// Missing PIC buckets under -1, unparseable money coerces to null.
	r = records[1]
	assert.Equal(t, domain.OrganisationIDMissing, r.OrganisationID)
	assert.True(t, r.SME)
	assert.False(t, r.ECContribution.Valid)
	assert.False(t, r.NetECContribution.Valid)
	require.True(t, r.TotalCost.Valid)
	assert.Equal(t, "1.5", r.TotalCost.Decimal.String())
}

func TestParseProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"id", "acronym", "title", "fundingScheme", "subCall", "ecSignatureDate", "startDate", "endDate"},
		{"101000001", "ABC", "A project", "RIA", "HORIZON-CL5-2023", "2023-05-01", "2023-06-01", "2026-05-31"},
	})

	records, err := parseProjects(context.Background(), path, domain.ProgrammeHorizon)
	require.NoError(t, err)
	require.Len(t, records, 1)

	p := records[0]
	assert.Equal(t, int64(101000001), p.ProjectID)
	assert.Equal(t, "ABC", p.Acronym)
	assert.Equal(t, "RIA", p.FundingScheme)
	assert.Equal(t, "2023-05-01", p.SignatureDate)
}

func TestParseOrganisationsMissingFile(t *testing.T) {
	_, err := parseOrganisations(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), domain.ProgrammeFP7)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	assert.Equal(t, int64(123), parseID("123", 0))
	assert.Equal(t, int64(123), parseID("123.0", 0))
	assert.Equal(t, int64(-1), parseID("", -1))
	assert.Equal(t, int64(-1), parseID("abc", -1))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("true"))
	assert.True(t, parseBool(" TRUE "))
	assert.True(t, parseBool("1"))
	assert.False(t, parseBool("false"))
	assert.False(t, parseBool(""))
}
