package domain

import "github.com/shopspring/decimal"

type Programme = string

const (
	ProgrammeFP7     Programme = "FP7"
	ProgrammeH2020   Programme = "H2020"
	ProgrammeHorizon Programme = "HORIZON"
)

// Programmes lists the framework programmes in the order their columns appear
// in every summary output.
var Programmes = []Programme{ProgrammeFP7, ProgrammeH2020, ProgrammeHorizon}

// OrganisationIDMissing is the bucket key for participation rows whose PIC is
// absent in the source data.
const OrganisationIDMissing int64 = -1

// ParticipationRecord is one organisation's role in one funded project, as read
// from a CORDIS organization table. Monetary fields are null when the source
// value did not parse as a number.
type ParticipationRecord struct {
	OrganisationID     int64               `db:"organisation_id" json:"organisationId"`
	OrganisationName   string              `db:"organisation_name" json:"organisationName"`
	ShortName          string              `db:"short_name" json:"shortName"`
	Country            string              `db:"country" json:"country"`
	ActivityType       string              `db:"activity_type" json:"activityType"`
	SME                bool                `db:"sme" json:"isSME"`
	Role               string              `db:"role" json:"role"`
	OrderInProject     int                 `db:"order_in_project" json:"orderInProject"`
	ECContribution     decimal.NullDecimal `db:"ec_contribution" json:"ecContribution"`
	NetECContribution  decimal.NullDecimal `db:"net_ec_contribution" json:"netEcContribution"`
	TotalCost          decimal.NullDecimal `db:"total_cost" json:"totalCost"`
	ProjectID          int64               `db:"project_id" json:"projectId"`
	Acronym            string              `db:"acronym" json:"projectAcronym"`
	FrameworkProgramme Programme           `db:"framework_programme" json:"frameworkProgramme"`
}

// ProjectRecord is one project row from a CORDIS project table. Dates are kept
// as the source's ISO strings; empty means absent.
type ProjectRecord struct {
	ProjectID          int64     `db:"project_id" json:"projectId"`
	Acronym            string    `db:"acronym" json:"acronym"`
	Title              string    `db:"title" json:"title"`
	FundingScheme      string    `db:"funding_scheme" json:"fundingScheme"`
	SubCall            string    `db:"sub_call" json:"subCall"`
	SignatureDate      string    `db:"signature_date" json:"ecSignatureDate"`
	StartDate          string    `db:"start_date" json:"startDate"`
	EndDate            string    `db:"end_date" json:"endDate"`
	FrameworkProgramme Programme `db:"framework_programme" json:"frameworkProgramme"`
}

// Link is a decorated identifier: the display label plus the URL it should
// point at. Decoration never replaces the raw id used for joins.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ParticipationDetail is a filtered participation row extended with the joined
// project attributes and the derived country name. Field order matches the
// FP_participation sheet column order.
type ParticipationDetail struct {
	FrameworkProgramme Programme           `json:"frameworkProgramme"`
	ProjectID          int64               `json:"projectId"`
	Acronym            string              `json:"projectAcronym"`
	Title              string              `json:"title"`
	SignatureDate      string              `json:"ecSignatureDate"`
	StartDate          string              `json:"startDate"`
	EndDate            string              `json:"endDate"`
	Country            string              `json:"country"`
	CountryName        string              `json:"countryName"`
	OrganisationID     int64               `json:"organisationId"`
	OrganisationName   string              `json:"organisationName"`
	ShortName          string              `json:"shortName"`
	ActivityType       string              `json:"activityType"`
	SME                bool                `json:"isSME"`
	TypeOfAction       string              `json:"typeOfAction"`
	SubCall            string              `json:"subCall"`
	OrderInProject     int                 `json:"orderInProject"`
	Role               string              `json:"role"`
	ECContribution     decimal.NullDecimal `json:"ecContribution"`
	NetECContribution  decimal.NullDecimal `json:"netEcContribution"`
	TotalCost          decimal.NullDecimal `json:"totalCost"`

	// Set by link decoration after aggregation.
	OrganisationLink Link `json:"organisationLink,omitempty"`
	ProjectLink      Link `json:"projectLink,omitempty"`
}
