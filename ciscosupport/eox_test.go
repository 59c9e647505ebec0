package ciscosupport

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEoXByDates(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/supporttools/eox/rest/5/EOXByDates/1/2021-12-01/2021-12-31", r.URL.Path)
		assert.Equal(t, []string{"EO_SALES_DATE", "EO_LAST_SUPPORT_DATE"}, r.URL.Query()["eoxAttrib"])
		fmt.Fprint(w, `{
			"EOXRecord": [
				{
					"EOLProductID": "WS-C3560-48PS-S",
					"EndOfSaleDate": {"value": "2013-01-30", "dateFormat": "YYYY-MM-DD"},
					"LastDateOfSupport": {"value": "2018-01-31", "dateFormat": "YYYY-MM-DD"}
				}
			]
		}`)
	}))

	records, err := c.EoX.ByDates(context.Background(), "2021-12-01", "2021-12-31", &EoXOptions{
		Attributes: []string{"EO_SALES_DATE", "EO_LAST_SUPPORT_DATE"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "WS-C3560-48PS-S", records[0].EOLProductID)
	assert.Equal(t, "2013-01-30", records[0].EndOfSaleDate.Value)
}

func TestEoXByDatesValidation(t *testing.T) {
	var apiCalls int
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
	}))

	for name, dates := range map[string][2]string{
		"missing start": {"", "2021-12-31"},
		"missing end":   {"2021-12-01", ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := c.EoX.ByDates(context.Background(), dates[0], dates[1], nil)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
	assert.Equal(t, 0, apiCalls)
}

func TestEoXEnvelopeError(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"EOXError":{"ErrorID":"SSA_ERR_010","ErrorDescription":"Incorrect format of date"}}`)
	}))

	_, err := c.EoX.ByDates(context.Background(), "bad", "dates", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, string(apiErr.Body), "SSA_ERR_010")
}

func TestEoXByProductIDs(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/supporttools/eox/rest/5/EOXByProductID/1/WS-C3560-48PS-S,WS-C3750G-24PS-S", r.URL.Path)
		fmt.Fprint(w, `{"EOXRecord":[{"EOLProductID":"WS-C3560-48PS-S"},{"EOLProductID":"WS-C3750G-24PS-S"}]}`)
	}))

	records, err := c.EoX.ByProductIDs(context.Background(), []string{"WS-C3560-48PS-S", "WS-C3750G-24PS-S"}, nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestEoXBySerialNumbersLimit(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"EOXRecord":[{"EOLProductID":"A"},{"EOLProductID":"B"},{"EOLProductID":"C"}]}`)
	}))

	records, err := c.EoX.BySerialNumbers(context.Background(), []string{"FDO1234"}, &EoXOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[1].EOLProductID)
}

func TestEoXBySoftwareReleaseStrings(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/supporttools/eox/rest/5/EOXBySWReleaseString/1", r.URL.Path)
		assert.Equal(t, "12.2,IOS", r.URL.Query().Get("input1"))
		assert.Equal(t, "15.1,IOS", r.URL.Query().Get("input2"))
		fmt.Fprint(w, `{"EOXRecord":[{"EOLProductID":"A"}]}`)
	}))

	records, err := c.EoX.BySoftwareReleaseStrings(context.Background(), []string{"12.2,IOS", "15.1,IOS"}, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestEoXMissingResultKey(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	records, err := c.EoX.ByProductIDs(context.Background(), []string{"WS-C3560-48PS-S"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
