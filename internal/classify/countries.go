package classify

import (
	"sort"
	"strings"

	"regaudit/internal/registry"
	"regaudit/internal/variants"
)

// ExtractDirectorCountries collects every distinct country spelling found
// across directors' residence-country and address-country fields, trimmed.
// A director contributes up to two spellings. Diagnostic only: the result
// feeds the unrecognized-spelling review and never affects classification.
func ExtractDirectorCountries(companies map[string]registry.Company) map[string]struct{} {
	countries := make(map[string]struct{})

	for _, company := range companies {
		for _, director := range company.Directors {
			if c := strings.TrimSpace(director.ResidenceCountryValue()); c != "" {
				countries[c] = struct{}{}
			}
			if c := strings.TrimSpace(director.AddressCountry()); c != "" {
				countries[c] = struct{}{}
			}
		}
	}

	return countries
}

// UnrecognizedCountries returns, sorted, the extracted spellings that the
// variant set does not classify as UK. Any UK spelling appearing here means
// the variant list is incomplete and the audit results are unreliable until
// it is extended.
func UnrecognizedCountries(companies map[string]registry.Company, uk variants.Set) []string {
	var unrecognized []string
	for country := range ExtractDirectorCountries(companies) {
		if !uk.Contains(country) {
			unrecognized = append(unrecognized, country)
		}
	}
	sort.Strings(unrecognized)
	return unrecognized
}
