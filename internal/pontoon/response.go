package pontoon

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/missinglocales/internal/httpclient"
)

// Response is the envelope returned by the GraphQL endpoint.
type Response struct {
	Data   *Data          `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// Data holds the query result.
type Data struct {
	Project *Project `json:"project"`
}

// Project is the subset of a Pontoon project this tool requests.
type Project struct {
	Name          string          `json:"name"`
	Localizations *[]Localization `json:"localizations"`
}

// Localization links a project to one locale.
type Localization struct {
	Locale *Locale `json:"locale"`
}

// Locale identifies a language.
type Locale struct {
	Code string `json:"code"`
}

// GraphQLError is one entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
}

func (e GraphQLError) Error() string {
	return "pontoon: graphql: " + e.Message
}

// DecodeProject parses a GraphQL response body and returns its project. A
// null project yields ErrProjectNotFound; any other shape mismatch yields a
// *httpclient.DecodeError.
func DecodeProject(body []byte) (*Project, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &httpclient.DecodeError{Service: service, Reason: "invalid JSON", Err: err}
	}
	if len(resp.Errors) > 0 {
		errs := make([]error, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}
	if resp.Data == nil {
		return nil, &httpclient.DecodeError{Service: service, Reason: `missing "data"`}
	}
	if resp.Data.Project == nil {
		return nil, ErrProjectNotFound
	}
	return resp.Data.Project, nil
}

// LocaleCodes flattens the localizations into their locale codes.
func (p *Project) LocaleCodes() ([]string, error) {
	if p.Localizations == nil {
		return nil, &httpclient.DecodeError{Service: service, Reason: `missing "localizations"`}
	}
	codes := make([]string, 0, len(*p.Localizations))
	for i, l := range *p.Localizations {
		if l.Locale == nil || l.Locale.Code == "" {
			return nil, &httpclient.DecodeError{
				Service: service,
				Reason:  fmt.Sprintf("localization %d has no locale code", i),
			}
		}
		codes = append(codes, l.Locale.Code)
	}
	return codes, nil
}
