package cordis

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/logger"
	"github.com/tangiwai/cordis-summary/internal/service/summary"
	"github.com/xuri/excelize/v2"
)

// parseDump reads organization.xlsx and project.xlsx from an extracted dump
// directory and tags every row with the programme. Malformed cells never fail
// a row: monetary fields coerce to null, a missing PIC becomes the -1 bucket.
func (s *Service) parseDump(ctx context.Context, dir string, programme domain.Programme) ([]domain.ParticipationRecord, []domain.ProjectRecord, error) {
	participations, err := parseOrganisations(ctx, filepath.Join(dir, "organization.xlsx"), programme)
	if err != nil {
		return nil, nil, fmt.Errorf("parseOrganisations: %w", err)
	}

	projects, err := parseProjects(ctx, filepath.Join(dir, "project.xlsx"), programme)
	if err != nil {
		return nil, nil, fmt.Errorf("parseProjects: %w", err)
	}

	return participations, projects, nil
}

func parseOrganisations(ctx context.Context, path string, programme domain.Programme) ([]domain.ParticipationRecord, error) {
	rows, header, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ParticipationRecord, 0, len(rows))
	for _, row := range rows {
		get := cellGetter(header, row)

		rec := domain.ParticipationRecord{
			OrganisationID:     parseID(get("organisationID"), domain.OrganisationIDMissing),
			OrganisationName:   get("name"),
			ShortName:          get("shortName"),
			Country:            strings.ToUpper(get("country")),
			ActivityType:       get("activityType"),
			SME:                parseBool(get("SME")),
			Role:               get("role"),
			OrderInProject:     int(parseID(get("order"), 0)),
			ECContribution:     summary.CoerceAmount(get("ecContribution")),
			NetECContribution:  summary.CoerceAmount(get("netEcContribution")),
			TotalCost:          summary.CoerceAmount(get("totalCost")),
			ProjectID:          parseID(get("projectID"), 0),
			Acronym:            get("projectAcronym"),
			FrameworkProgramme: programme,
		}
		records = append(records, rec)
	}

	logger.Debugf(ctx, "parsed %d organisation rows from %s", len(records), filepath.Base(path))
	return records, nil
}

func parseProjects(ctx context.Context, path string, programme domain.Programme) ([]domain.ProjectRecord, error) {
	rows, header, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		get := cellGetter(header, row)

		// The project table calls its key "id"; everywhere else it is
		// projectID, so it gets renamed at this boundary.
		records = append(records, domain.ProjectRecord{
			ProjectID:          parseID(get("id"), 0),
			Acronym:            get("acronym"),
			Title:              get("title"),
			FundingScheme:      get("fundingScheme"),
			SubCall:            get("subCall"),
			SignatureDate:      get("ecSignatureDate"),
			StartDate:          get("startDate"),
			EndDate:            get("endDate"),
			FrameworkProgramme: programme,
		})
	}

	logger.Debugf(ctx, "parsed %d project rows from %s", len(records), filepath.Base(path))
	return records, nil
}

// readSheet loads the first sheet of an xlsx file and returns its data rows
// plus a lower-cased header index.
func readSheet(path string) ([][]string, map[string]int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("excelize.OpenFile %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("f.GetRows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return rows[1:], header, nil
}

func cellGetter(header map[string]int, row []string) func(string) string {
	return func(key string) string {
		pos, ok := header[strings.ToLower(key)]
		if !ok || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}
}

func parseID(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	// Excel sometimes hands ids back in float form.
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return id
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
