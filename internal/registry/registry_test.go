package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSample(t, `{
		"sampled_companies": {
			"01234567": {
				"directors": [
					{
						"country_of_residence": "United Kingdom",
						"address": {"country": "United Kingdom", "address_line_1": "1 High St"}
					}
				],
				"company_data": {
					"ConfStmtNextDueDate": "01/01/2000",
					"Accounts.NextDueDate": "01/01/2099",
					"RegAddress.AddressLine1": "1 High St"
				}
			}
		}
	}`)

	companies, err := Load(path)
	require.NoError(t, err)
	require.Len(t, companies, 1)

	company := companies["01234567"]
	require.Len(t, company.Directors, 1)
	assert.Equal(t, "United Kingdom", company.Directors[0].ResidenceCountryValue())
	assert.Equal(t, "United Kingdom", company.Directors[0].AddressCountry())
	assert.Equal(t, "01/01/2000", company.DataString("ConfStmtNextDueDate"))
	assert.Equal(t, "01/01/2099", company.DataString("Accounts.NextDueDate"))
}

func TestLoadWithoutSampledCompaniesKey(t *testing.T) {
	path := writeSample(t, `{"something_else": 1}`)

	companies, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeSample(t, `{"sampled_companies": `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResidenceCountryValueFallsBack(t *testing.T) {
	d := Director{ResidenceCountry: "France"}
	assert.Equal(t, "France", d.ResidenceCountryValue())

	d.CountryOfResidence = "United Kingdom"
	assert.Equal(t, "United Kingdom", d.ResidenceCountryValue())

	assert.Equal(t, "", Director{}.ResidenceCountryValue())
}

func TestAddressCountryHandlesMissingAndNonString(t *testing.T) {
	assert.Equal(t, "", Director{}.AddressCountry())
	assert.Equal(t, "", Director{Address: map[string]any{}}.AddressCountry())
	assert.Equal(t, "", Director{Address: map[string]any{"country": 42}}.AddressCountry())
	assert.Equal(t, "Spain", Director{Address: map[string]any{"country": "Spain"}}.AddressCountry())
}

func TestDataStringStringifiesAndTrims(t *testing.T) {
	c := Company{CompanyData: map[string]any{
		"ConfStmtNextDueDate": "  01/01/2000 ",
		"Weird":               12.0,
		"Nil":                 nil,
	}}

	assert.Equal(t, "01/01/2000", c.DataString("ConfStmtNextDueDate"))
	assert.Equal(t, "12", c.DataString("Weird"))
	assert.Equal(t, "", c.DataString("Nil"))
	assert.Equal(t, "", c.DataString("Absent"))
}
