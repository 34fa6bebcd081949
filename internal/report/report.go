package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"regaudit/internal/classify"
	"regaudit/internal/stats"
)

// complianceMetric pairs a GroupMetrics field with its report label.
type complianceMetric struct {
	label string
	count func(classify.GroupMetrics) int
}

var complianceMetrics = []complianceMetric{
	{"Late confirmation statement", func(m classify.GroupMetrics) int { return m.LateConfStmt }},
	{"Late accounts filing", func(m classify.GroupMetrics) int { return m.LateAccounts }},
	{"Default office address", func(m classify.GroupMetrics) int { return m.DefaultAddress }},
}

// Audit holds everything the report renders.
type Audit struct {
	SampleSize   int
	Unrecognized []string
	Counts       classify.DirectorCounts
	Compliance   classify.ComplianceMetrics
	Estimator    stats.Estimator
}

// Write renders the full audit report.
func Write(w io.Writer, a Audit) error {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("Loaded %s sampled companies.\n", humanize.Comma(int64(a.SampleSize))))

	writeCountries(&out, a.Unrecognized)
	writeClassification(&out, a)
	writeCompliance(&out, a)
	writeRatio(&out, a)

	_, err := io.WriteString(w, out.String())
	return err
}

// WriteCountries renders only the unrecognized-spelling diagnostic.
func WriteCountries(w io.Writer, unrecognized []string) error {
	var out strings.Builder
	writeCountries(&out, unrecognized)
	_, err := io.WriteString(w, out.String())
	return err
}

func writeCountries(out *strings.Builder, unrecognized []string) {
	out.WriteString(fmt.Sprintf("\nFound %d unique director countries not identified as UK:\n", len(unrecognized)))
	for _, country := range unrecognized {
		out.WriteString(country + "\n")
	}
	out.WriteString("\nIf any UK variants appear above, add them to the variants list and rerun. Until then the results are unreliable.\n")
}

func writeClassification(out *strings.Builder, a Audit) {
	counts := a.Counts
	total := counts.TotalCompanies()

	foreign := a.Estimator.Proportion(counts.WithoutUK, total)
	questionable := a.Estimator.Proportion(counts.QuestionableResidence, counts.TotalDirectors)

	out.WriteString(fmt.Sprintf("\nTotal: %s, with UK director: %s, without: %s\n",
		humanize.Comma(int64(total)),
		humanize.Comma(int64(counts.WithUK)),
		humanize.Comma(int64(counts.WithoutUK))))
	out.WriteString(fmt.Sprintf("Proportion companies all-foreign: %.1f%% ±%.2f%%\n",
		foreign.P*100, foreign.MOE*100))
	out.WriteString(fmt.Sprintf("%s directors of which %.1f%% ±%.2f%% have questionable residence\n",
		humanize.Comma(int64(counts.TotalDirectors)), questionable.P*100, questionable.MOE*100))
}

func writeCompliance(out *strings.Builder, a Audit) {
	out.WriteString("\nCompliance indicators by group:\n")

	for _, group := range []string{classify.GroupWithUK, classify.GroupWithoutUK} {
		n := a.Counts.WithUK
		if group == classify.GroupWithoutUK {
			n = a.Counts.WithoutUK
		}
		out.WriteString(fmt.Sprintf("\nGroup '%s' (n=%s):\n", group, humanize.Comma(int64(n))))

		metrics := a.Compliance[group]
		if metrics == nil {
			continue
		}
		for _, m := range complianceMetrics {
			p := a.Estimator.Proportion(m.count(*metrics), n)
			out.WriteString(fmt.Sprintf("  %s: %s (%.2f%% ±%.2f%%)\n",
				m.label, humanize.Comma(int64(p.Count)), p.P*100, p.MOE*100))
		}
	}
}

func writeRatio(out *strings.Builder, a Audit) {
	withUK := a.Compliance[classify.GroupWithUK]
	withoutUK := a.Compliance[classify.GroupWithoutUK]
	if withUK == nil || withoutUK == nil {
		return
	}

	pUK := a.Estimator.Proportion(withUK.DefaultAddress, a.Counts.WithUK)
	pForeign := a.Estimator.Proportion(withoutUK.DefaultAddress, a.Counts.WithoutUK)

	ratio, moe, err := stats.Ratio(pForeign, pUK)
	if errors.Is(err, stats.ErrZeroBaseline) {
		out.WriteString("\nRatio of default-address use in foreign vs UK companies: unavailable (no default addresses in the UK group)\n")
		return
	}
	out.WriteString(fmt.Sprintf("\nRatio of default-address use in foreign vs UK companies: %.2f ±%.2f\n", ratio, moe))
}
