// Package phone provides a client for the external phone number
// validation API (NumVerify-compatible).
//
// The service layer treats the verdict as tri-state: a number can be
// confirmed valid, confirmed invalid, or unverifiable because the
// upstream API could not be reached. Unverifiable numbers are accepted
// so that an outage of a third party never blocks registrations.
package phone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/rs/zerolog"
)

// Outcome is the tri-state verdict of a verification attempt.
type Outcome int

const (
	// OutcomeValid means the API confirmed the number is real.
	OutcomeValid Outcome = iota

	// OutcomeInvalid means the API confirmed the number is not valid.
	OutcomeInvalid

	// OutcomeUnreachable means the verdict could not be obtained: transport
	// error, non-2xx response, or an API-level error payload. Callers
	// decide policy; the services here fail open.
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unreachable"
	}
}

// Result carries the verdict plus the metadata the API returns for valid
// numbers. Metadata fields are empty when the verdict is not OutcomeValid.
type Result struct {
	Outcome Outcome

	CountryCode          string
	CountryName          string
	Location             string
	Carrier              string
	LineType             string
	InternationalFormat  string
	LocalFormat          string
}

// verifyTimeout bounds a single verification call end to end. The upstream
// API is slow at p99; anything past this window counts as unreachable.
const verifyTimeout = 10 * time.Second

// apiResponse mirrors the NumVerify response body. On credential or quota
// problems the API returns 200 with success=false and an error object.
type apiResponse struct {
	Valid               bool   `json:"valid"`
	Number              string `json:"number"`
	LocalFormat         string `json:"local_format"`
	InternationalFormat string `json:"international_format"`
	CountryCode         string `json:"country_code"`
	CountryName         string `json:"country_name"`
	Location            string `json:"location"`
	Carrier             string `json:"carrier"`
	LineType            string `json:"line_type"`

	Success *bool `json:"success,omitempty"`
	Error   *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

// Client calls the phone validation API.
type Client struct {
	httpClient  *http.Client
	logger      *zerolog.Logger
	apiKey      string
	baseURL     string
	countryCode string
}

// NewClient builds a Client from config. The HTTP client carries the
// verification timeout so a hung upstream cannot stall request handling.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: verifyTimeout,
		},
		logger:      logger,
		apiKey:      cfg.NumVerify.APIKey,
		baseURL:     cfg.NumVerify.BaseURL,
		countryCode: cfg.NumVerify.CountryCode,
	}
}

// Verify checks a phone number against the validation API.
//
// Every failure mode short of an explicit "valid: false" maps to
// OutcomeUnreachable: the caller cannot distinguish a bad number from a
// broken validator, so it must not reject the customer. Verify never
// returns an error for upstream problems; the error return covers only
// malformed local state (bad base URL).
func (c *Client) Verify(ctx context.Context, phoneNumber string) (Result, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return Result{}, fmt.Errorf("invalid phone validation base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("access_key", c.apiKey)
	query.Set("number", phoneNumber)
	query.Set("country_code", c.countryCode)
	// format=1 asks the API for indented JSON. Purely cosmetic, but kept so
	// captured payloads stay readable when debugging against the live API.
	query.Set("format", "1")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Msg("phone validation request failed, treating number as unverifiable")
		return Result{Outcome: OutcomeUnreachable}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("phone validation API returned non-2xx, treating number as unverifiable")
		return Result{Outcome: OutcomeUnreachable}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Msg("failed to read phone validation response, treating number as unverifiable")
		return Result{Outcome: OutcomeUnreachable}, nil
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.logger.Warn().
			Err(err).
			Msg("failed to decode phone validation response, treating number as unverifiable")
		return Result{Outcome: OutcomeUnreachable}, nil
	}

	// success=false means the request itself was rejected (bad key, quota),
	// not that the number is bad.
	if apiResp.Success != nil && !*apiResp.Success {
		errType := ""
		if apiResp.Error != nil {
			errType = apiResp.Error.Type
		}
		c.logger.Warn().
			Str("api_error", errType).
			Msg("phone validation API rejected the request, treating number as unverifiable")
		return Result{Outcome: OutcomeUnreachable}, nil
	}

	if !apiResp.Valid {
		return Result{Outcome: OutcomeInvalid}, nil
	}

	return Result{
		Outcome:             OutcomeValid,
		CountryCode:         apiResp.CountryCode,
		CountryName:         apiResp.CountryName,
		Location:            apiResp.Location,
		Carrier:             apiResp.Carrier,
		LineType:            apiResp.LineType,
		InternationalFormat: apiResp.InternationalFormat,
		LocalFormat:         apiResp.LocalFormat,
	}, nil
}
