package calls

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/config"
)

// grantsFile mirrors the portal's grantsTenders.json envelope. Only the
// fields the pipeline reads are declared; note the portal really does spell
// it "sumbissionProcedure".
type grantsFile struct {
	FundingData struct {
		GrantTenderObj []grantObj `json:"GrantTenderObj"`
	} `json:"fundingData"`
}

type division struct {
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description"`
}

type abbrev struct {
	Abbreviation string `json:"abbreviation"`
}

type grantObj struct {
	CCM2ID                 int64      `json:"ccm2Id"`
	CallIdentifier         string     `json:"callIdentifier"`
	CallTitle              string     `json:"callTitle"`
	Identifier             string     `json:"identifier"`
	Title                  string     `json:"title"`
	ProgrammeDivision      []division `json:"programmeDivision"`
	PlannedOpeningDateLong int64      `json:"plannedOpeningDateLong"`
	PublicationDateLong    int64      `json:"publicationDateLong"`
	DeadlineDatesLong      []int64    `json:"deadlineDatesLong"`
	TopicActions           []abbrev   `json:"topicActions"`
	Status                 abbrev     `json:"status"`
	SubmissionProcedure    abbrev     `json:"sumbissionProcedure"`
}

var (
	clusterCodeRe = regexp.MustCompile(`-[0-9]{4}`)
	callYearRe    = regexp.MustCompile(`[0-9]{4}`)
)

// Process turns raw grant objects into call rows: pillar-2 only, one row per
// ccm2Id (the feed holds some calls twice with slightly different
// descriptions), dates rendered from epoch milliseconds, cluster metadata
// extracted from the call identifier.
func (s *Service) Process(grants []grantObj) []domain.CallRow {
	now := time.Now().UTC()
	seen := make(map[int64]struct{}, len(grants))
	rows := make([]domain.CallRow, 0, len(grants))

	for _, g := range grants {
		if len(g.ProgrammeDivision) == 0 ||
			!strings.Contains(g.ProgrammeDivision[0].Abbreviation, "HORIZON.2") {
			continue
		}
		if _, dup := seen[g.CCM2ID]; dup {
			continue
		}
		seen[g.CCM2ID] = struct{}{}

		row := domain.CallRow{
			CCM2ID:      g.CCM2ID,
			CallID:      g.CallIdentifier,
			CallTitle:   stripHTML(g.CallTitle),
			TopicID:     g.Identifier,
			TopicTitle:  stripHTML(g.Title),
			Destination: stripHTML(destination(g.ProgrammeDivision)),
			PubDate:     msDate(g.PublicationDateLong),
			OpenDate:    msDate(g.PlannedOpeningDateLong),
			Status:      g.Status.Abbreviation,
			Process:     g.SubmissionProcedure.Abbreviation,
			FetchedAt:   now,
		}

		if len(g.DeadlineDatesLong) > 0 {
			row.CloseDate = msDate(g.DeadlineDatesLong[0])
		}
		if len(g.DeadlineDatesLong) > 1 {
			row.Stage2Date = msDate(g.DeadlineDatesLong[1])
		}
		if len(g.TopicActions) > 0 {
			row.ActionType = g.TopicActions[0].Abbreviation
		}

		row.ClusterCode, row.CallYear, row.DestCode = splitCallIdentifier(g.CallIdentifier)
		row.ClusterName = s.clusterNames[row.ClusterCode]
		row.TopicLink = domain.Link{
			Label: g.Identifier,
			URL:   config.TopicBaseURL + strings.ToLower(g.Identifier),
		}

		rows = append(rows, row)
	}

	return rows
}

// splitCallIdentifier takes an identifier like HORIZON-CL5-2023-D2-01 apart
// into cluster code, call year and destination code.
func splitCallIdentifier(id string) (clusterCode string, callYear int, destCode string) {
	parts := clusterCodeRe.Split(id, 2)
	clusterCode = parts[0]

	yearStr := callYearRe.FindString(id)
	if yearStr != "" {
		callYear, _ = strconv.Atoi(yearStr)
	}

	// Whatever follows "<cluster>-<year>-" is the destination code.
	prefix := len(clusterCode) + len(yearStr) + 2
	if prefix < len(id) {
		destCode = id[prefix:]
	}

	return clusterCode, callYear, destCode
}

// destination picks the right programme division description: whichever
// division has the longer abbreviation is the destination-level one.
func destination(divisions []division) string {
	if len(divisions) == 0 {
		return ""
	}
	if len(divisions) == 1 {
		return divisions[0].Description
	}
	if len(divisions[0].Abbreviation) > len(divisions[1].Abbreviation) {
		return divisions[0].Description
	}
	return divisions[1].Description
}

// stripHTML flattens the portal's rich-text fields to plain text.
func stripHTML(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return strings.TrimSpace(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(doc.Text())
}

func msDate(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
