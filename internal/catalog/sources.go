package catalog

import (
	"net/url"
	"strings"
)

// OfficialSource is a registry entry for a verified official entity. This
// is a factual registry of official bodies, not a reliability rating.
type OfficialSource struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Official source types.
const (
	TypeGovernmentAgency = "Government Agency"
	TypeLegislative      = "Legislative"
	TypeJudicial         = "Judicial"
	TypeAcademic         = "Academic"
	TypeElectoral        = "Electoral"
)

// officialSources lists verified official Philippine government and
// academic entities, used to badge matched sources in verify responses.
var officialSources = []OfficialSource{
	{
		Name:        "Commission on Elections (COMELEC)",
		Domain:      "comelec.gov.ph",
		Type:        TypeElectoral,
		Description: "Official Philippine election authority",
	},
	{
		Name:        "Commission on Audit (COA)",
		Domain:      "coa.gov.ph",
		Type:        TypeGovernmentAgency,
		Description: "Official government auditing body",
	},
	{
		Name:        "Presidential Communications Office (PCO)",
		Domain:      "pco.gov.ph",
		Type:        TypeGovernmentAgency,
		Description: "Official government communications office",
	},
	{
		Name:        "Department of the Interior and Local Government (DILG)",
		Domain:      "dilg.gov.ph",
		Type:        TypeGovernmentAgency,
		Description: "Official local governance authority",
	},
	{
		Name:        "Senate of the Philippines",
		Domain:      "senate.gov.ph",
		Type:        TypeLegislative,
		Description: "Official upper house of Congress",
	},
	{
		Name:        "House of Representatives",
		Domain:      "congress.gov.ph",
		Type:        TypeLegislative,
		Description: "Official lower house of Congress",
	},
	{
		Name:        "Supreme Court of the Philippines",
		Domain:      "sc.judiciary.gov.ph",
		Type:        TypeJudicial,
		Description: "Official highest court of the land",
	},
	{
		Name:        "Office of the Ombudsman",
		Domain:      "ombudsman.gov.ph",
		Type:        TypeJudicial,
		Description: "Official anti-graft investigative body",
	},
	{
		Name:        "University of the Philippines",
		Domain:      "up.edu.ph",
		Type:        TypeAcademic,
		Description: "Official national university system",
	},
}

// LookupOfficial returns the registry entry whose domain matches the host
// of rawURL, or nil when the URL is not an official source. Subdomains of
// a registered domain match.
func LookupOfficial(rawURL string) *OfficialSource {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return nil
	}

	for i := range officialSources {
		domain := officialSources[i].Domain
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return &officialSources[i]
		}
	}
	return nil
}
