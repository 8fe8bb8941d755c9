package domain

import "time"

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DatasetMarker records the publication date of the locally cached dump for
// one framework programme, so refreshes can skip data we already hold.
type DatasetMarker struct {
	Programme Programme `db:"programme"`
	PubDate   time.Time `db:"pub_date"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SummaryRun is the audit record of one summary computation.
type SummaryRun struct {
	ID                string    `db:"id"`
	Countries         string    `db:"countries"`
	DetailRows        int       `db:"detail_rows"`
	OrganisationRows  int       `db:"organisation_rows"`
	ProjectRows       int       `db:"project_rows"`
	CountryRows       int       `db:"country_rows"`
	CreatedAt         time.Time `db:"created_at"`
}
