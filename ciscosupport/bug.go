package ciscosupport

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

const (
	bugBasePath = "bug/v2.0/bugs/"

	// The bug-details endpoint accepts at most five IDs per request.
	bugIDChunkSize = 5
)

// BugService queries the Bug Search v2 API.
// https://developer.cisco.com/docs/support-apis/#!bug
type BugService struct {
	client *Client
}

// Bug is a single bug record. Numeric-looking fields arrive as strings
// from the API and are kept that way.
type Bug struct {
	BugID                 string `json:"bug_id,omitempty"`
	BasePID               string `json:"base_pid,omitempty"`
	Headline              string `json:"headline,omitempty"`
	Description           string `json:"description,omitempty"`
	Severity              string `json:"severity,omitempty"`
	Status                string `json:"status,omitempty"`
	Product               string `json:"product,omitempty"`
	KnownAffectedReleases string `json:"known_affected_releases,omitempty"`
	KnownFixedReleases    string `json:"known_fixed_releases,omitempty"`
	LastModifiedDate      string `json:"last_modified_date,omitempty"`
	SupportCaseCount      string `json:"support_case_count,omitempty"`
	BehaviorChanged       string `json:"behavior_changed,omitempty"`
}

type bugEnvelope struct {
	Bugs []Bug `json:"bugs"`
}

// BugSearchOptions filters a bug search. Zero values are omitted from
// the query; Limit truncates the combined result client-side.
type BugSearchOptions struct {
	// Status filters by bug status: "O" open, "F" fixed, "T" terminated.
	Status string
	// ModifiedDate filters by last modified window: 1 last week,
	// 2 last 30 days, 3 last 6 months, 4 last year, 5 all.
	ModifiedDate int
	// Severity filters by severity, 1 through 6.
	Severity int
	// SortBy orders results, e.g. "severity" or "modified_date".
	SortBy string
	// Limit caps the number of returned records.
	Limit int
}

func (o *BugSearchOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.ModifiedDate != 0 {
		q.Set("modified_date", strconv.Itoa(o.ModifiedDate))
	}
	if o.Severity != 0 {
		q.Set("severity", strconv.Itoa(o.Severity))
	}
	if o.SortBy != "" {
		q.Set("sort_by", o.SortBy)
	}
	return q
}

func (o *BugSearchOptions) limit() int {
	if o == nil {
		return 0
	}
	return o.Limit
}

// SearchByKeyword returns bugs associated with the given keyword or
// keywords.
// https://developer.cisco.com/docs/support-apis/#!bug/search-for-bugs-by-keyword
func (s *BugService) SearchByKeyword(ctx context.Context, keyword string, opts *BugSearchOptions) ([]Bug, error) {
	if keyword == "" {
		return nil, newValidationError("keyword is required")
	}
	return s.search(ctx, "keyword/"+url.PathEscape(keyword), opts)
}

// DetailsByBugIDs returns detailed records for the given bug IDs,
// fanning out across requests of at most five IDs each.
// https://developer.cisco.com/docs/support-apis/#!bug/get-bug-details-by-bug-ids
func (s *BugService) DetailsByBugIDs(ctx context.Context, bugIDs []string) ([]Bug, error) {
	if len(bugIDs) == 0 {
		return nil, newValidationError("at least one bug ID is required")
	}
	out := []Bug{}
	for _, chunk := range chunkStrings(bugIDs, bugIDChunkSize) {
		var env bugEnvelope
		path := bugBasePath + "bug_ids/" + strings.Join(chunk, ",")
		if err := s.client.get(ctx, path, nil, &env); err != nil {
			return nil, err
		}
		out = append(out, env.Bugs...)
	}
	return out, nil
}

// ByBaseProductID returns bugs associated with a base product ID.
func (s *BugService) ByBaseProductID(ctx context.Context, productID string, opts *BugSearchOptions) ([]Bug, error) {
	if productID == "" {
		return nil, newValidationError("product ID is required")
	}
	return s.search(ctx, "products/product_id/"+url.PathEscape(productID), opts)
}

// ByBaseProductIDAndSoftwareReleases returns bugs for a base product ID
// filtered to the given software releases.
func (s *BugService) ByBaseProductIDAndSoftwareReleases(ctx context.Context, productID string, releases []string, opts *BugSearchOptions) ([]Bug, error) {
	if productID == "" {
		return nil, newValidationError("product ID is required")
	}
	if len(releases) == 0 {
		return nil, newValidationError("at least one software release is required")
	}
	path := "products/product_id/" + url.PathEscape(productID) + "/software_releases/" + strings.Join(releases, ",")
	return s.search(ctx, path, opts)
}

// ByProductSeriesAndAffectedRelease returns bugs for a product series
// affecting the given releases.
func (s *BugService) ByProductSeriesAndAffectedRelease(ctx context.Context, productSeries string, releases []string, opts *BugSearchOptions) ([]Bug, error) {
	return s.bySeriesOrName(ctx, "product_series", productSeries, "affected_releases", releases, opts)
}

// ByProductSeriesAndFixedInRelease returns bugs for a product series
// fixed in the given releases.
func (s *BugService) ByProductSeriesAndFixedInRelease(ctx context.Context, productSeries string, releases []string, opts *BugSearchOptions) ([]Bug, error) {
	return s.bySeriesOrName(ctx, "product_series", productSeries, "fixed_in_releases", releases, opts)
}

// ByProductNameAndAffectedRelease returns bugs for a product name
// affecting the given releases.
func (s *BugService) ByProductNameAndAffectedRelease(ctx context.Context, productName string, releases []string, opts *BugSearchOptions) ([]Bug, error) {
	return s.bySeriesOrName(ctx, "product_name", productName, "affected_releases", releases, opts)
}

// ByProductNameAndFixedInRelease returns bugs for a product name fixed
// in the given releases.
func (s *BugService) ByProductNameAndFixedInRelease(ctx context.Context, productName string, releases []string, opts *BugSearchOptions) ([]Bug, error) {
	return s.bySeriesOrName(ctx, "product_name", productName, "fixed_in_releases", releases, opts)
}

func (s *BugService) bySeriesOrName(ctx context.Context, kind, value, releaseKind string, releases []string, opts *BugSearchOptions) ([]Bug, error) {
	if value == "" {
		return nil, newValidationError("%s is required", strings.ReplaceAll(kind, "_", " "))
	}
	if len(releases) == 0 {
		return nil, newValidationError("at least one software release is required")
	}
	path := kind + "/" + url.PathEscape(value) + "/" + releaseKind + "/" + strings.Join(releases, ",")
	return s.search(ctx, path, opts)
}

func (s *BugService) search(ctx context.Context, path string, opts *BugSearchOptions) ([]Bug, error) {
	var env bugEnvelope
	if err := s.client.get(ctx, bugBasePath+path, opts.query(), &env); err != nil {
		return nil, err
	}
	bugs := env.Bugs
	if bugs == nil {
		bugs = []Bug{}
	}
	if n := opts.limit(); n > 0 && len(bugs) > n {
		bugs = bugs[:n]
	}
	return bugs, nil
}
