package classify

import (
	"strings"
	"time"

	"regaudit/internal/registry"
	"regaudit/internal/variants"
)

// Compliance group names.
const (
	GroupWithUK    = "with_uk"
	GroupWithoutUK = "without_uk"
)

// defaultAddressMarker flags placeholder registered or service addresses.
const defaultAddressMarker = "default address"

// dueDateLayout is the dd/mm/yyyy form used by registry due-date fields.
const dueDateLayout = "02/01/2006"

// GroupMetrics holds the compliance red-flag counts for one group.
type GroupMetrics struct {
	LateConfStmt   int
	LateAccounts   int
	DefaultAddress int
}

// ComplianceMetrics maps group name to its red-flag counts.
type ComplianceMetrics map[string]*GroupMetrics

// AnalyzeCompliance tallies compliance red flags per classification group
// in a single pass. Grouping uses a short-circuit classification: directors
// are checked in order and the scan stops at the first UK-qualifying one.
// Unlike CountByUKDirectorStatus this produces no questionable-residence
// tally; the two passes are kept separate on purpose.
//
// Lateness compares the parsed due date against asOf (date precision,
// strictly before). Missing or malformed due dates are treated as not late.
func AnalyzeCompliance(companies map[string]registry.Company, uk variants.Set, asOf time.Time, progress ProgressCallback) ComplianceMetrics {
	metrics := ComplianceMetrics{
		GroupWithUK:    {},
		GroupWithoutUK: {},
	}
	today := asOf.Truncate(24 * time.Hour)
	processed := 0

	for _, company := range companies {
		group := metrics[GroupWithoutUK]
		for _, director := range company.Directors {
			if ukQualifying(director, uk) {
				group = metrics[GroupWithUK]
				break
			}
		}

		if late(company.DataString("ConfStmtNextDueDate"), today) {
			group.LateConfStmt++
		}
		if late(company.DataString("Accounts.NextDueDate"), today) {
			group.LateAccounts++
		}
		if hasDefaultAddress(company) {
			group.DefaultAddress++
		}

		processed++
		if progress != nil {
			progress(processed, len(companies))
		}
	}

	return metrics
}

// late reports whether due parses as dd/mm/yyyy and falls strictly before
// today. Unparseable values are not late.
func late(due string, today time.Time) bool {
	d, err := time.Parse(dueDateLayout, due)
	if err != nil {
		return false
	}
	return d.Before(today)
}

// hasDefaultAddress reports whether the company's registered office first
// line, or failing that any string field of any director's address, carries
// the placeholder-address marker. The director scan stops at the first
// match so a company is flagged at most once.
func hasDefaultAddress(company registry.Company) bool {
	regLine := company.DataString("RegAddress.AddressLine1")
	if strings.Contains(strings.ToLower(regLine), defaultAddressMarker) {
		return true
	}

	for _, director := range company.Directors {
		for _, value := range director.Address {
			s, ok := value.(string)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(s), defaultAddressMarker) {
				return true
			}
		}
	}
	return false
}
