package ciscosupport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	eoxBasePath = "supporttools/eox/rest/5/"

	// The EoX endpoints accept at most 20 IDs or serials per request.
	eoxChunkSize = 20
)

// EoXService queries the EoX v5 product lifecycle API.
// https://developer.cisco.com/docs/support-apis/#!eox
type EoXService struct {
	client *Client
}

// EoXDate is a lifecycle milestone date together with its format.
type EoXDate struct {
	Value      string `json:"value,omitempty"`
	DateFormat string `json:"dateFormat,omitempty"`
}

// EoXMigrationDetails describes the replacement product, if any.
type EoXMigrationDetails struct {
	PIDActiveFlag           string `json:"PIDActiveFlag,omitempty"`
	MigrationInformation    string `json:"MigrationInformation,omitempty"`
	MigrationOption         string `json:"MigrationOption,omitempty"`
	MigrationProductID      string `json:"MigrationProductId,omitempty"`
	MigrationProductName    string `json:"MigrationProductName,omitempty"`
	MigrationStrategy       string `json:"MigrationStrategy,omitempty"`
	MigrationProductInfoURL string `json:"MigrationProductInfoURL,omitempty"`
}

// EoXError is an in-band error attached to a record or response.
type EoXError struct {
	ErrorID          string `json:"ErrorID,omitempty"`
	ErrorDescription string `json:"ErrorDescription,omitempty"`
	ErrorDataType    string `json:"ErrorDataType,omitempty"`
	ErrorDataValue   string `json:"ErrorDataValue,omitempty"`
}

// EoXRecord is one End-of-Life/End-of-Sale record.
type EoXRecord struct {
	EOLProductID                    string               `json:"EOLProductID,omitempty"`
	ProductIDDescription            string               `json:"ProductIDDescription,omitempty"`
	ProductBulletinNumber           string               `json:"ProductBulletinNumber,omitempty"`
	LinkToProductBulletinURL        string               `json:"LinkToProductBulletinURL,omitempty"`
	EOXExternalAnnouncementDate     EoXDate              `json:"EOXExternalAnnouncementDate,omitempty"`
	EndOfSaleDate                   EoXDate              `json:"EndOfSaleDate,omitempty"`
	EndOfSWMaintenanceReleases      EoXDate              `json:"EndOfSWMaintenanceReleases,omitempty"`
	EndOfSecurityVulSupportDate     EoXDate              `json:"EndOfSecurityVulSupportDate,omitempty"`
	EndOfRoutineFailureAnalysisDate EoXDate              `json:"EndOfRoutineFailureAnalysisDate,omitempty"`
	EndOfServiceContractRenewal     EoXDate              `json:"EndOfServiceContractRenewal,omitempty"`
	LastDateOfSupport               EoXDate              `json:"LastDateOfSupport,omitempty"`
	EndOfSvcAttachDate              EoXDate              `json:"EndOfSvcAttachDate,omitempty"`
	UpdatedTimeStamp                EoXDate              `json:"UpdatedTimeStamp,omitempty"`
	EOXMigrationDetails             *EoXMigrationDetails `json:"EOXMigrationDetails,omitempty"`
	EOXInputType                    string               `json:"EOXInputType,omitempty"`
	EOXInputValue                   string               `json:"EOXInputValue,omitempty"`
	EOXError                        *EoXError            `json:"EOXError,omitempty"`
}

// EoXOptions tunes an EoX lookup. Attributes applies to ByDates only;
// Limit truncates the combined result client-side.
type EoXOptions struct {
	// Attributes selects which record dates the ByDates range matches,
	// e.g. "EO_SALES_DATE" or "EO_LAST_SUPPORT_DATE". Defaults to the
	// record's update timestamp.
	Attributes []string
	// Limit caps the number of returned records.
	Limit int
}

func (o *EoXOptions) limit() int {
	if o == nil {
		return 0
	}
	return o.Limit
}

type eoxEnvelope struct {
	EOXRecord []EoXRecord `json:"EOXRecord"`
	EOXError  *EoXError   `json:"EOXError,omitempty"`
}

// err maps an in-band envelope error to an *APIError. The EoX endpoint
// reports these on an HTTP 200.
func (e *eoxEnvelope) err() error {
	if e.EOXError == nil {
		return nil
	}
	body, mErr := json.Marshal(e.EOXError)
	if mErr != nil {
		body = []byte(fmt.Sprintf("%s: %s", e.EOXError.ErrorID, e.EOXError.ErrorDescription))
	}
	return &APIError{StatusCode: http.StatusOK, Body: body}
}

// ByDates returns EoX records whose selected lifecycle dates fall
// between startDate and endDate, inclusive. Dates use YYYY-MM-DD.
// https://developer.cisco.com/docs/support-apis/#!eox/get-eox-by-dates
func (s *EoXService) ByDates(ctx context.Context, startDate, endDate string, opts *EoXOptions) ([]EoXRecord, error) {
	if startDate == "" || endDate == "" {
		return nil, newValidationError("start date and end date are required")
	}
	query := url.Values{}
	if opts != nil {
		for _, attrib := range opts.Attributes {
			query.Add("eoxAttrib", attrib)
		}
	}
	path := eoxBasePath + "EOXByDates/1/" + url.PathEscape(startDate) + "/" + url.PathEscape(endDate)

	var env eoxEnvelope
	if err := s.client.get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	if err := env.err(); err != nil {
		return nil, err
	}
	return truncateRecords(env.EOXRecord, opts.limit()), nil
}

// ByProductIDs returns EoX records for the given product IDs. Wildcards
// with at least three characters are accepted, e.g. "VPN*".
// https://developer.cisco.com/docs/support-apis/#!eox/get-eox-by-product-ids
func (s *EoXService) ByProductIDs(ctx context.Context, productIDs []string, opts *EoXOptions) ([]EoXRecord, error) {
	if len(productIDs) == 0 {
		return nil, newValidationError("at least one product ID is required")
	}
	return s.collect(ctx, "EOXByProductID/1/", productIDs, opts)
}

// BySerialNumbers returns EoX records for the given device serial
// numbers.
// https://developer.cisco.com/docs/support-apis/#!eox/get-eox-by-serial-numbers
func (s *EoXService) BySerialNumbers(ctx context.Context, serialNumbers []string, opts *EoXOptions) ([]EoXRecord, error) {
	if len(serialNumbers) == 0 {
		return nil, newValidationError("at least one serial number is required")
	}
	return s.collect(ctx, "EOXBySerialNumber/1/", serialNumbers, opts)
}

// BySoftwareReleaseStrings returns EoX records for the given software
// release strings, each a release plus optional OS, e.g. "12.2,IOS".
// https://developer.cisco.com/docs/support-apis/#!eox/get-eox-by-software-release-strings
func (s *EoXService) BySoftwareReleaseStrings(ctx context.Context, releaseStrings []string, opts *EoXOptions) ([]EoXRecord, error) {
	if len(releaseStrings) == 0 {
		return nil, newValidationError("at least one software release string is required")
	}
	out := []EoXRecord{}
	for _, chunk := range chunkStrings(releaseStrings, eoxChunkSize) {
		query := url.Values{}
		// The release strings travel as numbered input parameters.
		for i, rel := range chunk {
			query.Set(fmt.Sprintf("input%d", i+1), rel)
		}
		var env eoxEnvelope
		if err := s.client.get(ctx, eoxBasePath+"EOXBySWReleaseString/1", query, &env); err != nil {
			return nil, err
		}
		if err := env.err(); err != nil {
			return nil, err
		}
		out = append(out, env.EOXRecord...)
		if n := opts.limit(); n > 0 && len(out) >= n {
			break
		}
	}
	return truncateRecords(out, opts.limit()), nil
}

// collect fans the value list out across chunked path-segment requests
// and concatenates the records.
func (s *EoXService) collect(ctx context.Context, prefix string, values []string, opts *EoXOptions) ([]EoXRecord, error) {
	out := []EoXRecord{}
	for _, chunk := range chunkStrings(values, eoxChunkSize) {
		var env eoxEnvelope
		if err := s.client.get(ctx, eoxBasePath+prefix+strings.Join(chunk, ","), nil, &env); err != nil {
			return nil, err
		}
		if err := env.err(); err != nil {
			return nil, err
		}
		out = append(out, env.EOXRecord...)
		if n := opts.limit(); n > 0 && len(out) >= n {
			break
		}
	}
	return truncateRecords(out, opts.limit()), nil
}

func truncateRecords(records []EoXRecord, limit int) []EoXRecord {
	if records == nil {
		return []EoXRecord{}
	}
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
