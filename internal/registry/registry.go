package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Director is a single officer record. Residence may be reported under
// either country field depending on the source extract; Address is a free
// mapping whose "country" key, when present, holds the stated address
// country alongside arbitrary text fields (street, locality, and so on).
type Director struct {
	CountryOfResidence string         `json:"country_of_residence"`
	ResidenceCountry   string         `json:"residence_country"`
	Address            map[string]any `json:"address"`
}

// Company is one sampled registry record: its directors plus the raw
// company data mapping. CompanyData keys follow the registry export
// verbatim, including dotted names such as "Accounts.NextDueDate".
type Company struct {
	Directors   []Director     `json:"directors"`
	CompanyData map[string]any `json:"company_data"`
}

// ResidenceCountryValue returns the director's stated residence country:
// the first present of country_of_residence and residence_country, or ""
// when neither is set.
func (d Director) ResidenceCountryValue() string {
	if d.CountryOfResidence != "" {
		return d.CountryOfResidence
	}
	return d.ResidenceCountry
}

// AddressCountry returns the country field of the director's address, or ""
// when the address is missing or the field is absent or not a string.
func (d Director) AddressCountry() string {
	if d.Address == nil {
		return ""
	}
	if country, ok := d.Address["country"].(string); ok {
		return country
	}
	return ""
}

// DataString returns a company_data field as a trimmed string. Non-string
// values are stringified first, matching the loose typing of the export.
func (c Company) DataString(key string) string {
	v, ok := c.CompanyData[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

type sampleFile struct {
	SampledCompanies map[string]Company `json:"sampled_companies"`
}

// Load reads the sampled-companies JSON file and returns the records keyed
// by company identifier. A file without a sampled_companies object yields
// an empty map rather than an error.
func Load(path string) (map[string]Company, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample file: %w", err)
	}

	var sample sampleFile
	if err := json.Unmarshal(raw, &sample); err != nil {
		return nil, fmt.Errorf("failed to parse sample file: %w", err)
	}

	if sample.SampledCompanies == nil {
		return map[string]Company{}, nil
	}
	return sample.SampledCompanies, nil
}
