package domain

import "github.com/shopspring/decimal"

// ProgrammeStats is the per-programme triple produced by the pivot: distinct
// project count, count of funded rows (contribution strictly positive) and the
// contribution sum with nulls treated as zero. Absent programme/key
// combinations stay zero-valued rather than being omitted.
type ProgrammeStats struct {
	Projects       int             `json:"projects"`
	FundedProjects int             `json:"fundedProjects"`
	Contribution   decimal.Decimal `json:"contribution"`
}

// OrganisationSummaryRow is one row of the Orgs_summary sheet: one per
// distinct PIC among the filtered participations.
type OrganisationSummaryRow struct {
	OrganisationID    int64           `json:"organisationId"`
	OrganisationName  string          `json:"organisationName"`
	ShortName         string          `json:"shortName"`
	Country           string          `json:"country"`
	CountryName       string          `json:"countryName"`
	ActivityType      string          `json:"activityType"`
	SME               bool            `json:"isSME"`
	ProjectCount      int             `json:"projectCount"`
	ProgrammesJoined  string          `json:"programmesJoined"`
	TotalContribution decimal.Decimal `json:"totalContribution"`
	FP7               ProgrammeStats  `json:"fp7"`
	H2020             ProgrammeStats  `json:"h2020"`
	Horizon           ProgrammeStats  `json:"horizon"`
}

// ProjectSummaryRow is one row of the FP_projects sheet: one per distinct
// project acronym among the filtered participations. The contribution sums
// count positive values only; null when no sum could be attached.
type ProjectSummaryRow struct {
	FrameworkProgramme         Programme           `json:"frameworkProgramme"`
	ProjectID                  int64               `json:"projectId"`
	Acronym                    string              `json:"acronym"`
	Title                      string              `json:"title"`
	SignatureDate              string              `json:"ecSignatureDate"`
	StartDate                  string              `json:"startDate"`
	EndDate                    string              `json:"endDate"`
	TypeOfAction               string              `json:"typeOfAction"`
	SubCall                    string              `json:"subCall"`
	MatchedCountryContribution decimal.NullDecimal `json:"matchedCountryContribution"`
	TotalContribution          decimal.NullDecimal `json:"totalContribution"`
	MatchedCountries           []string            `json:"matchedCountries"`
	AllCountries               []string            `json:"allCountries"`

	ProjectLink Link `json:"projectLink,omitempty"`
}

// CountrySummaryRow is one row of the Countries_summary sheet: one per
// distinct filtered country. Column order is fixed: country, countryName,
// acronyms, the three programme triples, then the cross-programme totals.
type CountrySummaryRow struct {
	Country             string          `json:"country"`
	CountryName         string          `json:"countryName"`
	ProjectAcronyms     []string        `json:"projectAcronyms"`
	FP7                 ProgrammeStats  `json:"fp7"`
	H2020               ProgrammeStats  `json:"h2020"`
	Horizon             ProgrammeStats  `json:"horizon"`
	TotalProjects       int             `json:"totalProjects"`
	TotalFundedProjects int             `json:"totalFundedProjects"`
	TotalFunding        decimal.Decimal `json:"totalFunding"`
}

// SummaryResult bundles the four relations handed to the rendering layer, in
// sheet order.
type SummaryResult struct {
	Detail        []ParticipationDetail    `json:"detail"`
	Organisations []OrganisationSummaryRow `json:"organisations"`
	Projects      []ProjectSummaryRow      `json:"projects"`
	Countries     []CountrySummaryRow      `json:"countries"`
}
