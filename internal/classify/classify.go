package classify

import (
	"regaudit/internal/registry"
	"regaudit/internal/variants"
)

// ProgressCallback reports companies processed so far out of the total.
type ProgressCallback func(processed, total int)

// DirectorCounts aggregates the full-scan classification pass.
type DirectorCounts struct {
	WithUK                int
	WithoutUK             int
	TotalDirectors        int
	QuestionableResidence int
}

// TotalCompanies is the number of companies classified, always
// WithUK + WithoutUK.
func (c DirectorCounts) TotalCompanies() int {
	return c.WithUK + c.WithoutUK
}

// ukQualifying reports whether the director counts as UK: both the stated
// residence country and the address country must be recognized UK variants.
func ukQualifying(d registry.Director, uk variants.Set) bool {
	return uk.Contains(d.ResidenceCountryValue()) && uk.Contains(d.AddressCountry())
}

// CountByUKDirectorStatus classifies every company by UK-director presence
// in a single pass, visiting every director of every company. A company
// with no qualifying director (including one with no directors at all)
// counts as without-UK.
//
// Directors whose residence country is UK but whose address country is not
// (or is missing) are tallied as questionable residence, once per
// occurrence. This pass deliberately scans all directors rather than
// stopping at the first UK match; AnalyzeCompliance uses a short-circuit
// variant that does not produce this tally, and the two must not be merged
// without changing the reported figure.
func CountByUKDirectorStatus(companies map[string]registry.Company, uk variants.Set, progress ProgressCallback) DirectorCounts {
	var counts DirectorCounts
	processed := 0

	for _, company := range companies {
		hasUK := false

		for _, director := range company.Directors {
			counts.TotalDirectors++

			if !uk.Contains(director.ResidenceCountryValue()) {
				continue
			}
			if uk.Contains(director.AddressCountry()) {
				hasUK = true
			} else {
				counts.QuestionableResidence++
			}
		}

		if hasUK {
			counts.WithUK++
		} else {
			counts.WithoutUK++
		}

		processed++
		if progress != nil {
			progress(processed, len(companies))
		}
	}

	return counts
}
