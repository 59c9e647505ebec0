package ciscosupport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const (
	suggestionsBasePath = "software/suggestion/v2/suggestions/"

	// The suggestion endpoints accept at most this many IDs per request.
	suggestionsIDChunkSize = 10
)

// SoftwareSuggestionsService queries the Software Suggestion v2 API.
// https://developer.cisco.com/docs/support-apis/#!software-suggestion
type SoftwareSuggestionsService struct {
	client *Client
}

// Product identifies a product in a suggestion response.
type Product struct {
	ID           string `json:"id,omitempty"`
	BasePID      string `json:"basePID,omitempty"`
	MDFID        string `json:"mdfId,omitempty"`
	ProductName  string `json:"productName,omitempty"`
	SoftwareType string `json:"softwareType,omitempty"`
}

// SoftwareImage describes one downloadable image attached to a
// suggested release.
type SoftwareImage struct {
	ImageName     string `json:"imageName,omitempty"`
	ImageSize     string `json:"imageSize,omitempty"`
	FeatureSet    string `json:"featureSet,omitempty"`
	RequiredDRAM  string `json:"requiredDRAM,omitempty"`
	RequiredFlash string `json:"requiredFlash,omitempty"`
}

// SuggestedRelease is a single suggested software release.
type SuggestedRelease struct {
	ID               string          `json:"id,omitempty"`
	IsSuggested      string          `json:"isSuggested,omitempty"`
	MajorRelease     string          `json:"majorRelease,omitempty"`
	ReleaseTrain     string          `json:"releaseTrain,omitempty"`
	ReleaseDate      string          `json:"releaseDate,omitempty"`
	ReleaseFormat1   string          `json:"releaseFormat1,omitempty"`
	ReleaseFormat2   string          `json:"releaseFormat2,omitempty"`
	ReleaseLifeCycle string          `json:"releaseLifeCycle,omitempty"`
	RelDispName      string          `json:"relDispName,omitempty"`
	TrainDispName    string          `json:"trainDispName,omitempty"`
	Images           []SoftwareImage `json:"images,omitempty"`
}

// ProductSuggestion pairs a product with its suggested releases.
type ProductSuggestion struct {
	Product     Product            `json:"product"`
	Suggestions []SuggestedRelease `json:"suggestions"`
}

// CompatibleOptions filters a compatible-and-suggested lookup. Zero
// values are omitted from the query.
type CompatibleOptions struct {
	CurrentImage      string
	CurrentRelease    string
	SupportedFeatures string // comma-separated feature identifiers
	SupportedHardware string // comma-separated hardware identifiers
}

func (o *CompatibleOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.CurrentImage != "" {
		q.Set("currentImage", o.CurrentImage)
	}
	if o.CurrentRelease != "" {
		q.Set("currentRelease", o.CurrentRelease)
	}
	if o.SupportedFeatures != "" {
		q.Set("supportedFeatures", o.SupportedFeatures)
	}
	if o.SupportedHardware != "" {
		q.Set("supportedHardware", o.SupportedHardware)
	}
	return q
}

// suggestionsEnvelope is the response wrapper shared by all suggestion
// endpoints. Errors can arrive in-band on an HTTP 200 via Status.
type suggestionsEnvelope struct {
	Status               string              `json:"status"`
	ErrorDetailsResponse json.RawMessage     `json:"errorDetailsResponse,omitempty"`
	ProductList          []ProductSuggestion `json:"productList"`
	Suggestions          []SuggestedRelease  `json:"suggestions"`
}

func (e *suggestionsEnvelope) err() error {
	if e.Status == "" || e.Status == "Success" {
		return nil
	}
	body := []byte(e.ErrorDetailsResponse)
	if len(body) == 0 {
		body = []byte(e.Status)
	}
	return &APIError{StatusCode: http.StatusOK, Body: body}
}

// SuggestedReleasesAndImagesByProductIDs returns suggested releases and
// images for the given product IDs.
// https://developer.cisco.com/docs/support-apis/#!software-suggestion/get-suggested-releases-and-images-by-product-ids
func (s *SoftwareSuggestionsService) SuggestedReleasesAndImagesByProductIDs(ctx context.Context, productIDs []string) ([]ProductSuggestion, error) {
	if len(productIDs) == 0 {
		return nil, newValidationError("at least one product ID is required")
	}
	return s.collectProducts(ctx, "software/productIds/", productIDs)
}

// SuggestedReleasesByProductIDs returns suggested releases, without
// image details, for the given product IDs.
// https://developer.cisco.com/docs/support-apis/#!software-suggestion/get-suggested-releases-by-product-ids-no-images
func (s *SoftwareSuggestionsService) SuggestedReleasesByProductIDs(ctx context.Context, productIDs []string) ([]ProductSuggestion, error) {
	if len(productIDs) == 0 {
		return nil, newValidationError("at least one product ID is required")
	}
	return s.collectProducts(ctx, "releases/productIds/", productIDs)
}

// SuggestedReleasesAndImagesByMDFIDs is the MDF ID variant of
// SuggestedReleasesAndImagesByProductIDs.
func (s *SoftwareSuggestionsService) SuggestedReleasesAndImagesByMDFIDs(ctx context.Context, mdfIDs []string) ([]ProductSuggestion, error) {
	if len(mdfIDs) == 0 {
		return nil, newValidationError("at least one MDF ID is required")
	}
	return s.collectProducts(ctx, "software/mdfIds/", mdfIDs)
}

// SuggestedReleasesByMDFIDs is the MDF ID variant of
// SuggestedReleasesByProductIDs.
func (s *SoftwareSuggestionsService) SuggestedReleasesByMDFIDs(ctx context.Context, mdfIDs []string) ([]ProductSuggestion, error) {
	if len(mdfIDs) == 0 {
		return nil, newValidationError("at least one MDF ID is required")
	}
	return s.collectProducts(ctx, "releases/mdfIds/", mdfIDs)
}

// CompatibleAndSuggestedByProductID returns compatible and suggested
// releases for one product ID, filtered by opts.
// https://developer.cisco.com/docs/support-apis/#!software-suggestion/get-compatible-and-suggested-software-releases-by-product-id
func (s *SoftwareSuggestionsService) CompatibleAndSuggestedByProductID(ctx context.Context, productID string, opts *CompatibleOptions) ([]SuggestedRelease, error) {
	if productID == "" {
		return nil, newValidationError("product ID is required")
	}
	return s.compatible(ctx, "compatible/productId/"+url.PathEscape(productID), opts)
}

// CompatibleAndSuggestedByMDFID is the MDF ID variant of
// CompatibleAndSuggestedByProductID.
func (s *SoftwareSuggestionsService) CompatibleAndSuggestedByMDFID(ctx context.Context, mdfID string, opts *CompatibleOptions) ([]SuggestedRelease, error) {
	if mdfID == "" {
		return nil, newValidationError("MDF ID is required")
	}
	return s.compatible(ctx, "compatible/mdfId/"+url.PathEscape(mdfID), opts)
}

// collectProducts fans the ID list out across chunked requests and
// concatenates the productList results.
func (s *SoftwareSuggestionsService) collectProducts(ctx context.Context, prefix string, ids []string) ([]ProductSuggestion, error) {
	out := []ProductSuggestion{}
	for _, chunk := range chunkStrings(ids, suggestionsIDChunkSize) {
		var env suggestionsEnvelope
		path := suggestionsBasePath + prefix + strings.Join(chunk, ",")
		if err := s.client.get(ctx, path, nil, &env); err != nil {
			return nil, err
		}
		if err := env.err(); err != nil {
			return nil, err
		}
		out = append(out, env.ProductList...)
	}
	return out, nil
}

func (s *SoftwareSuggestionsService) compatible(ctx context.Context, path string, opts *CompatibleOptions) ([]SuggestedRelease, error) {
	var env suggestionsEnvelope
	if err := s.client.get(ctx, suggestionsBasePath+path, opts.query(), &env); err != nil {
		return nil, err
	}
	if err := env.err(); err != nil {
		return nil, err
	}
	if env.Suggestions == nil {
		return []SuggestedRelease{}, nil
	}
	return env.Suggestions, nil
}
