package ciscosupport

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByKeyword(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bug/v2.0/bugs/keyword/crash", r.URL.Path)
		assert.Equal(t, "O", r.URL.Query().Get("status"))
		assert.Equal(t, "severity", r.URL.Query().Get("sort_by"))
		fmt.Fprint(w, `{"bugs":[{"bug_id":"CSCx","headline":"router crash"}]}`)
	}))

	bugs, err := c.Bug.SearchByKeyword(context.Background(), "crash", &BugSearchOptions{
		Status: "O",
		SortBy: "severity",
		Limit:  1,
	})
	require.NoError(t, err)
	require.Len(t, bugs, 1)
	assert.Equal(t, "CSCx", bugs[0].BugID)
	assert.Equal(t, "router crash", bugs[0].Headline)
}

func TestSearchByKeywordLimitTruncates(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bugs":[{"bug_id":"CSCa"},{"bug_id":"CSCb"},{"bug_id":"CSCc"}]}`)
	}))

	bugs, err := c.Bug.SearchByKeyword(context.Background(), "crash", &BugSearchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	assert.Equal(t, "CSCb", bugs[1].BugID)
}

func TestSearchByKeywordMissingResultKey(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))

	bugs, err := c.Bug.SearchByKeyword(context.Background(), "crash", nil)
	require.NoError(t, err)
	assert.NotNil(t, bugs)
	assert.Empty(t, bugs)
}

func TestSearchByKeywordAPIError(t *testing.T) {
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ErrorResponse":{"APIError":{"ErrorCode":"API_UNAUTHORIZED"}}}`, http.StatusUnauthorized)
	}))

	_, err := c.Bug.SearchByKeyword(context.Background(), "crash", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestBugValidation(t *testing.T) {
	var apiCalls int
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
	}))

	ctx := context.Background()
	for name, call := range map[string]func() error{
		"empty keyword": func() error {
			_, err := c.Bug.SearchByKeyword(ctx, "", nil)
			return err
		},
		"no bug IDs": func() error {
			_, err := c.Bug.DetailsByBugIDs(ctx, nil)
			return err
		},
		"empty product ID": func() error {
			_, err := c.Bug.ByBaseProductID(ctx, "", nil)
			return err
		},
		"no releases": func() error {
			_, err := c.Bug.ByBaseProductIDAndSoftwareReleases(ctx, "PID-1", nil, nil)
			return err
		},
		"empty product series": func() error {
			_, err := c.Bug.ByProductSeriesAndAffectedRelease(ctx, "", []string{"15.2"}, nil)
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			var vErr *ValidationError
			require.ErrorAs(t, call(), &vErr)
		})
	}
	assert.Equal(t, 0, apiCalls, "validation failures must not reach the network")
}

func TestDetailsByBugIDsChunks(t *testing.T) {
	var paths []string
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"bugs":[{"bug_id":"CSCx"}]}`)
	}))

	ids := []string{"CSCa", "CSCb", "CSCc", "CSCd", "CSCe", "CSCf"}
	bugs, err := c.Bug.DetailsByBugIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Equal(t, []string{
		"/bug/v2.0/bugs/bug_ids/CSCa,CSCb,CSCc,CSCd,CSCe",
		"/bug/v2.0/bugs/bug_ids/CSCf",
	}, paths)
	assert.Len(t, bugs, 2)
}

func TestBugPathVariants(t *testing.T) {
	var gotPath string
	c := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"bugs":[]}`)
	}))
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		call func() error
		path string
	}{
		{
			"base product ID",
			func() error {
				_, err := c.Bug.ByBaseProductID(ctx, "CISCO2811", nil)
				return err
			},
			"/bug/v2.0/bugs/products/product_id/CISCO2811",
		},
		{
			"product ID and releases",
			func() error {
				_, err := c.Bug.ByBaseProductIDAndSoftwareReleases(ctx, "CISCO2811", []string{"15.2", "15.3"}, nil)
				return err
			},
			"/bug/v2.0/bugs/products/product_id/CISCO2811/software_releases/15.2,15.3",
		},
		{
			"series affected",
			func() error {
				_, err := c.Bug.ByProductSeriesAndAffectedRelease(ctx, "Cisco Catalyst 6500 Series Switches", []string{"15.1"}, nil)
				return err
			},
			"/bug/v2.0/bugs/product_series/Cisco Catalyst 6500 Series Switches/affected_releases/15.1",
		},
		{
			"series fixed-in",
			func() error {
				_, err := c.Bug.ByProductSeriesAndFixedInRelease(ctx, "6500", []string{"15.1"}, nil)
				return err
			},
			"/bug/v2.0/bugs/product_series/6500/fixed_in_releases/15.1",
		},
		{
			"name affected",
			func() error {
				_, err := c.Bug.ByProductNameAndAffectedRelease(ctx, "Cisco 2811", []string{"15.1"}, nil)
				return err
			},
			"/bug/v2.0/bugs/product_name/Cisco 2811/affected_releases/15.1",
		},
		{
			"name fixed-in",
			func() error {
				_, err := c.Bug.ByProductNameAndFixedInRelease(ctx, "Cisco 2811", []string{"15.1"}, nil)
				return err
			},
			"/bug/v2.0/bugs/product_name/Cisco 2811/fixed_in_releases/15.1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.call())
			assert.Equal(t, tc.path, gotPath)
		})
	}
}
