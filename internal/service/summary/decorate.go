package summary

import (
	"strconv"

	"github.com/tangiwai/cordis-summary/internal/domain"
)

// MakeLink builds the (label, url) pair for an identifier. Pure; the raw id
// stays untouched on the row.
func MakeLink(baseURL string, id int64) domain.Link {
	label := strconv.FormatInt(id, 10)
	return domain.Link{Label: label, URL: baseURL + label}
}

// Decorate attaches hyperlink targets to organisation ids in the detail
// relation and project ids in the detail and project relations. Runs only
// after all aggregation is done, so joins never see decorated values.
func (s *Summarizer) Decorate(res *domain.SummaryResult) {
	for i := range res.Detail {
		res.Detail[i].OrganisationLink = MakeLink(s.orgBaseURL, res.Detail[i].OrganisationID)
		res.Detail[i].ProjectLink = MakeLink(s.projectBaseURL, res.Detail[i].ProjectID)
	}
	for i := range res.Projects {
		res.Projects[i].ProjectLink = MakeLink(s.projectBaseURL, res.Projects[i].ProjectID)
	}
}
