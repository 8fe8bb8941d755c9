// Package config bootstraps viper and exposes the immutable lookup maps the
// services get injected with: per-programme source URLs, country-set presets
// and the Horizon Europe cluster name/colour tables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tangiwai/cordis-summary/internal/domain"
	"github.com/tangiwai/cordis-summary/internal/pkg/constants"
)

// Load reads configuration from an optional yaml file and the environment
// (CORDIS_ prefix). Missing file is fine; defaults cover local use.
func Load(path string) error {
	viper.SetEnvPrefix("cordis")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperPgDSN, "postgres://localhost:5432/cordis?sslmode=disable")
	viper.SetDefault(constants.ViperDataDir, "./data")
	viper.SetDefault(constants.ViperGrantsURL,
		"https://ec.europa.eu/info/funding-tenders/opportunities/data/referenceData/grantsTenders.json")
	viper.SetDefault(constants.ViperCORSOrigins, []string{"http://localhost:3000"})

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	return nil
}

// Source describes where one framework programme's dump comes from.
type Source struct {
	Programme   domain.Programme
	FeedURL     string
	DownloadURL string
	Dir         string
}

// Sources returns the three CORDIS dump locations, keyed in programme order.
func Sources() []Source {
	return []Source{
		{
			Programme:   domain.ProgrammeFP7,
			FeedURL:     "https://data.europa.eu/api/hub/search/en/feeds/datasets/cordisfp7projects.rss",
			DownloadURL: "https://cordis.europa.eu/data/cordis-fp7projects-xlsx.zip",
			Dir:         "cordis-fp7projects-xlsx",
		},
		{
			Programme:   domain.ProgrammeH2020,
			FeedURL:     "https://data.europa.eu/api/hub/search/en/feeds/datasets/cordish2020projects.rss",
			DownloadURL: "https://cordis.europa.eu/data/cordis-h2020projects-xlsx.zip",
			Dir:         "cordis-h2020projects-xlsx",
		},
		{
			Programme:   domain.ProgrammeHorizon,
			FeedURL:     "https://data.europa.eu/api/hub/search/en/feeds/datasets/cordis-eu-research-projects-under-horizon-europe-2021-2027.rss",
			DownloadURL: "https://cordis.europa.eu/data/cordis-HORIZONprojects-xlsx.zip",
			Dir:         "cordis-HORIZONprojects-xlsx",
		},
	}
}

// CountrySets returns the preset country groupings accepted wherever a
// country list is expected. Callers get a fresh copy each time.
func CountrySets() map[string][]string {
	return map[string][]string{
		"pacific":  {"FJ", "KI", "MH", "FM", "NR", "PW", "PG", "WS", "SB", "TO", "TV", "VU"},
		"eu_members": {
			"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR", "GR", "HR",
			"HU", "IE", "IT", "LT", "LU", "LV", "MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK",
		},
		"associated_countries": {
			"AL", "AM", "BA", "FO", "GE", "IS", "IL", "XK", "MD", "ME", "NZ", "MK", "NO",
			"RS", "TN", "TR", "UA", "UK",
		},
		"nordics": {"NO", "SE", "DK", "FI", "IS"},
	}
}

// ClusterNames maps Horizon Europe cluster codes from call identifiers to
// their display names.
func ClusterNames() map[string]string {
	return map[string]string{
		"HORIZON-HLTH":              "1. Health",
		"HORIZON-CL2":               "2. Culture, Creativity and Inclusive Society",
		"HORIZON-CL3":               "3. Civil Security for Society",
		"HORIZON-CL4":               "4. Digital, Industry and Space",
		"HORIZON-CL5":               "5. Climate, Energy and Mobility",
		"HORIZON-CL6":               "6. Food, Bioeconomy, Natural Resources, Agriculture and Environment",
		"HORIZON-MISS":              "Missions",
		"HORIZON-ER-JU":             "Europe's Rail Joint Undertaking",
		"HORIZON-JU-ER":             "Europe's Rail Joint Undertaking",
		"HORIZON-EUROHPC-JU":        "European High Performance Computing Joint Undertaking",
		"HORIZON-EUSPA":             "European Union Agency for the Space Programme",
		"HORIZON-JTI-CLEANH2":       "Clean Hydrogen Joint Technology Initiatives",
		"HORIZON-JU-CBE":            "Circular Bio-based Europe Joint Undertaking",
		"HORIZON-JU-Clean-Aviation": "Clean Aviation Joint Undertaking",
		"HORIZON-JU-GH-EDCTP3":      "Global Health - European and Developing Countries Clinical Trials Partnership Joint Undertaking",
		"HORIZON-JU-IHI":            "Innovative Health Initiative Joint Undertaking",
		"HORIZON-JU-SNS":            "Smart Networks and Services Joint Undertaking",
		"HORIZON-KDT-JU":            "Key Digital Technologies Joint Undertaking",
		"HORIZON-SESAR":             "Single European Sky ATM (Air Traffic Management) Research Joint Undertaking",
		"HORIZON-JU-Chips":          "Chips Joint Undertaking",
	}
}

// ClusterColours maps cluster display names to the calendar bar colour.
func ClusterColours() map[string]string {
	return map[string]string{
		"1. Health": "#ADD8E6",
		"Global Health - European and Developing Countries Clinical Trials Partnership Joint Undertaking": "#87CEFA",
		"Innovative Health Initiative Joint Undertaking":                                                  "#87CEEB",
		"2. Culture, Creativity and Inclusive Society":                                                    "#F4A460",
		"3. Civil Security for Society":                                                                   "#F08080",
		"4. Digital, Industry and Space":                                                                  "#F6851F",
		"European High Performance Computing Joint Undertaking":                                           "#FAA41A",
		"European Union Agency for the Space Programme":                                                   "#F8BF1C",
		"Smart Networks and Services Joint Undertaking":                                                   "#DFC423",
		"Key Digital Technologies Joint Undertaking":                                                      "#F7E542",
		"Chips Joint Undertaking":                                                                         "#F9EC00",
		"5. Climate, Energy and Mobility":                                                                 "#D8BFD8",
		"Clean Hydrogen Joint Technology Initiatives":                                                     "#C591C1",
		"Clean Aviation Joint Undertaking":                                                                "#B972AF",
		"Europe's Rail Joint Undertaking":                                                                 "#A081B5",
		"Single European Sky ATM (Air Traffic Management) Research Joint Undertaking":                     "#C94E9C",
		"6. Food, Bioeconomy, Natural Resources, Agriculture and Environment":                             "#9ACD32",
		"Circular Bio-based Europe Joint Undertaking":                                                     "#7FFF00",
		"Missions":                                                                                        "#FFC0CB",
	}
}

// DefaultCalendarColour is used for clusters missing from the colour map.
const DefaultCalendarColour = "skyblue"

// OrgProfileBaseURL and ProjectBaseURL are the hyperlink targets for
// decorated PICs and project ids.
const (
	OrgProfileBaseURL = "https://ec.europa.eu/info/funding-tenders/opportunities/portal/screen/how-to-participate/org-details/"
	ProjectBaseURL    = "https://cordis.europa.eu/project/id/"
	TopicBaseURL      = "https://ec.europa.eu/info/funding-tenders/opportunities/portal/screen/opportunities/topic-details/"
)
