// Package export renders the summary relations into the four-sheet workbook
// the reporting side consumes. Values arrive fully aggregated and decorated;
// this layer only formats.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetParticipation = "FP_participation"
	sheetOrgs          = "Orgs_summary"
	sheetProjects      = "FP_projects"
	sheetCountries     = "Countries_summary"
	sheetCalls         = "HE_calls"
)

var participationHeader = []string{
	"frameworkProgramme", "projectID", "projectAcronym", "title", "ecSignatureDate",
	"startDate", "endDate", "country", "countryName", "PIC", "Organisation",
	"shortName", "activityType", "SME", "Type of action", "subCall", "order",
	"role", "ecContribution", "netEcContribution", "totalCost",
}

var orgsHeader = []string{
	"PIC", "Organisation", "shortName", "country", "countryName", "activityType",
	"SME", "projectCount", "Framework programmes", "Total EU funding (€)",
	"FP7 projects", "FP7 funded projects", "FP7 total funding (€)",
	"H2020 projects", "H2020 funded projects", "H2020 total funding (€)",
	"HEU projects", "HEU funded projects", "HEU total funding (€)",
}

var projectsHeader = []string{
	"frameworkProgramme", "projectID", "projectAcronym", "title", "ecSignatureDate",
	"startDate", "endDate", "Type of action", "subCall",
	"country_ecContribution", "total_ecContribution", "Matched countries", "All countries",
}

var countriesHeader = []string{
	"country", "countryName", "Project acronyms",
	"FP7 projects", "FP7 funded projects", "FP7 funding (€)",
	"H2020 projects", "H2020 funded projects", "H2020 funding (€)",
	"HEU projects", "HEU funded projects", "HEU funding (€)",
	"Total projects", "Total funded projects", "Total funding (€)",
}

var callsHeader = []string{
	"ccm2Id", "callYear", "clusterCode", "clusterName", "destination", "destCode",
	"pubDate", "openDate", "closeDate", "s2Date", "status", "process",
	"actionType", "callId", "callTitle", "topicId", "topicTitle",
}

// SummaryWorkbook renders the four relations as named sheets with header
// styling, autofilters and hyperlinked identifier cells.
func SummaryWorkbook(res *domain.SummaryResult) (*excelize.File, error) {
	f := excelize.NewFile()

	w := &writer{f: f}
	if err := w.init(); err != nil {
		return nil, err
	}

	if err := w.participationSheet(res.Detail); err != nil {
		return nil, err
	}
	if err := w.orgsSheet(res.Organisations); err != nil {
		return nil, err
	}
	if err := w.projectsSheet(res.Projects); err != nil {
		return nil, err
	}
	if err := w.countriesSheet(res.Countries); err != nil {
		return nil, err
	}

	// The default sheet is replaced by the four real ones.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("f.DeleteSheet: %w", err)
	}

	return f, nil
}

// CallsWorkbook renders the processed calls as a single filterable sheet.
func CallsWorkbook(rows []domain.CallRow) (*excelize.File, error) {
	f := excelize.NewFile()

	w := &writer{f: f}
	if err := w.init(); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetCalls); err != nil {
		return nil, fmt.Errorf("f.NewSheet: %w", err)
	}
	if err := w.writeHeader(sheetCalls, callsHeader); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cells := []interface{}{
			r.CCM2ID, r.CallYear, r.ClusterCode, r.ClusterName, r.Destination, r.DestCode,
			r.PubDate, r.OpenDate, r.CloseDate, r.Stage2Date, r.Status, r.Process,
			r.ActionType, r.CallID, r.CallTitle, nil, r.TopicTitle,
		}
		if err := w.writeRow(sheetCalls, i+2, cells); err != nil {
			return nil, err
		}
		if err := w.writeLink(sheetCalls, 16, i+2, r.TopicLink); err != nil {
			return nil, err
		}
	}

	if err := w.autoFilter(sheetCalls, len(callsHeader), len(rows)); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("f.DeleteSheet: %w", err)
	}

	return f, nil
}

type writer struct {
	f              *excelize.File
	headerStyle    int
	hyperlinkStyle int
	numberStyle    int
}

func (w *writer) init() error {
	var err error

	w.headerStyle, err = w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	w.hyperlinkStyle, err = w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "0000FF", Underline: "single"},
	})
	if err != nil {
		return fmt.Errorf("hyperlink style: %w", err)
	}

	numFmt := "#,##0"
	w.numberStyle, err = w.f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("number style: %w", err)
	}

	return nil
}

func (w *writer) writeHeader(sheet string, header []string) error {
	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("f.SetCellValue: %w", err)
		}
		if err := w.f.SetCellStyle(sheet, cell, cell, w.headerStyle); err != nil {
			return fmt.Errorf("f.SetCellStyle: %w", err)
		}
	}
	return nil
}

func (w *writer) writeRow(sheet string, rowNum int, cells []interface{}) error {
	for i, v := range cells {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("f.SetCellValue: %w", err)
		}
	}
	return nil
}

// writeLink puts a decorated identifier into a cell: label shown, URL behind
// it, styled like the spreadsheets always styled links.
func (w *writer) writeLink(sheet string, col, rowNum int, link domain.Link) error {
	if link.Label == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, rowNum)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(sheet, cell, link.Label); err != nil {
		return fmt.Errorf("f.SetCellValue: %w", err)
	}
	if err := w.f.SetCellHyperLink(sheet, cell, link.URL, "External"); err != nil {
		return fmt.Errorf("f.SetCellHyperLink: %w", err)
	}
	if err := w.f.SetCellStyle(sheet, cell, cell, w.hyperlinkStyle); err != nil {
		return fmt.Errorf("f.SetCellStyle: %w", err)
	}
	return nil
}

func (w *writer) autoFilter(sheet string, cols, rows int) error {
	last, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return err
	}
	if err := w.f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
		return fmt.Errorf("f.AutoFilter: %w", err)
	}
	return nil
}

func (w *writer) participationSheet(detail []domain.ParticipationDetail) error {
	if _, err := w.f.NewSheet(sheetParticipation); err != nil {
		return fmt.Errorf("f.NewSheet: %w", err)
	}
	if err := w.writeHeader(sheetParticipation, participationHeader); err != nil {
		return err
	}

	for i, d := range detail {
		row := i + 2
		cells := []interface{}{
			d.FrameworkProgramme, nil, d.Acronym, d.Title, d.SignatureDate,
			d.StartDate, d.EndDate, d.Country, d.CountryName, nil, d.OrganisationName,
			d.ShortName, d.ActivityType, d.SME, d.TypeOfAction, d.SubCall, d.OrderInProject,
			d.Role, amountCell(d.ECContribution), amountCell(d.NetECContribution), amountCell(d.TotalCost),
		}
		if err := w.writeRow(sheetParticipation, row, cells); err != nil {
			return err
		}
		if err := w.writeLink(sheetParticipation, 2, row, d.ProjectLink); err != nil {
			return err
		}
		if err := w.writeLink(sheetParticipation, 10, row, d.OrganisationLink); err != nil {
			return err
		}
	}

	if err := w.numberColumns(sheetParticipation, len(detail), "S", "T", "U"); err != nil {
		return err
	}
	widths := map[string]float64{"C": 12, "D": 30, "E": 10, "F": 10, "G": 10, "K": 35, "L": 10, "S": 12, "T": 12, "U": 12}
	if err := w.setWidths(sheetParticipation, widths); err != nil {
		return err
	}
	return w.autoFilter(sheetParticipation, len(participationHeader), len(detail))
}

func (w *writer) orgsSheet(rows []domain.OrganisationSummaryRow) error {
	if _, err := w.f.NewSheet(sheetOrgs); err != nil {
		return fmt.Errorf("f.NewSheet: %w", err)
	}
	if err := w.writeHeader(sheetOrgs, orgsHeader); err != nil {
		return err
	}

	for i, o := range rows {
		cells := []interface{}{
			o.OrganisationID, o.OrganisationName, o.ShortName, o.Country, o.CountryName,
			o.ActivityType, o.SME, o.ProjectCount, o.ProgrammesJoined, decCell(o.TotalContribution),
			o.FP7.Projects, o.FP7.FundedProjects, decCell(o.FP7.Contribution),
			o.H2020.Projects, o.H2020.FundedProjects, decCell(o.H2020.Contribution),
			o.Horizon.Projects, o.Horizon.FundedProjects, decCell(o.Horizon.Contribution),
		}
		if err := w.writeRow(sheetOrgs, i+2, cells); err != nil {
			return err
		}
	}

	if err := w.numberColumns(sheetOrgs, len(rows), "J", "M", "P", "S"); err != nil {
		return err
	}
	widths := map[string]float64{"B": 55, "C": 15, "I": 11, "J": 12, "M": 12, "P": 12, "S": 12}
	if err := w.setWidths(sheetOrgs, widths); err != nil {
		return err
	}
	return w.autoFilter(sheetOrgs, len(orgsHeader), len(rows))
}

func (w *writer) projectsSheet(rows []domain.ProjectSummaryRow) error {
	if _, err := w.f.NewSheet(sheetProjects); err != nil {
		return fmt.Errorf("f.NewSheet: %w", err)
	}
	if err := w.writeHeader(sheetProjects, projectsHeader); err != nil {
		return err
	}

	for i, p := range rows {
		row := i + 2
		cells := []interface{}{
			p.FrameworkProgramme, nil, p.Acronym, p.Title, p.SignatureDate,
			p.StartDate, p.EndDate, p.TypeOfAction, p.SubCall,
			amountCell(p.MatchedCountryContribution), amountCell(p.TotalContribution),
			strings.Join(p.MatchedCountries, ", "), strings.Join(p.AllCountries, ", "),
		}
		if err := w.writeRow(sheetProjects, row, cells); err != nil {
			return err
		}
		if err := w.writeLink(sheetProjects, 2, row, p.ProjectLink); err != nil {
			return err
		}
	}

	if err := w.numberColumns(sheetProjects, len(rows), "J", "K"); err != nil {
		return err
	}
	widths := map[string]float64{"C": 12, "D": 25, "J": 12, "K": 12}
	if err := w.setWidths(sheetProjects, widths); err != nil {
		return err
	}
	return w.autoFilter(sheetProjects, len(projectsHeader), len(rows))
}

func (w *writer) countriesSheet(rows []domain.CountrySummaryRow) error {
	if _, err := w.f.NewSheet(sheetCountries); err != nil {
		return fmt.Errorf("f.NewSheet: %w", err)
	}
	if err := w.writeHeader(sheetCountries, countriesHeader); err != nil {
		return err
	}

	for i, c := range rows {
		cells := []interface{}{
			c.Country, c.CountryName, strings.Join(c.ProjectAcronyms, ", "),
			c.FP7.Projects, c.FP7.FundedProjects, decCell(c.FP7.Contribution),
			c.H2020.Projects, c.H2020.FundedProjects, decCell(c.H2020.Contribution),
			c.Horizon.Projects, c.Horizon.FundedProjects, decCell(c.Horizon.Contribution),
			c.TotalProjects, c.TotalFundedProjects, decCell(c.TotalFunding),
		}
		if err := w.writeRow(sheetCountries, i+2, cells); err != nil {
			return err
		}
	}

	if err := w.numberColumns(sheetCountries, len(rows), "F", "I", "L", "O"); err != nil {
		return err
	}
	widths := map[string]float64{"A": 7, "B": 14, "C": 54, "F": 12, "I": 12, "L": 12, "O": 12}
	if err := w.setWidths(sheetCountries, widths); err != nil {
		return err
	}
	return w.autoFilter(sheetCountries, len(countriesHeader), len(rows))
}

func (w *writer) numberColumns(sheet string, rows int, cols ...string) error {
	if rows == 0 {
		return nil
	}
	for _, col := range cols {
		first := fmt.Sprintf("%s2", col)
		last := fmt.Sprintf("%s%d", col, rows+1)
		if err := w.f.SetCellStyle(sheet, first, last, w.numberStyle); err != nil {
			return fmt.Errorf("f.SetCellStyle: %w", err)
		}
	}
	return nil
}

func (w *writer) setWidths(sheet string, widths map[string]float64) error {
	for col, width := range widths {
		if err := w.f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("f.SetColWidth: %w", err)
		}
	}
	return nil
}

func amountCell(a decimal.NullDecimal) interface{} {
	if !a.Valid {
		return nil
	}
	return a.Decimal.InexactFloat64()
}

func decCell(d decimal.Decimal) interface{} {
	return d.InexactFloat64()
}
