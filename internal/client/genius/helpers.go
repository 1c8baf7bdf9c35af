package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// fetchJSON fetches a Genius API payload from baseURL/uri and unwraps its envelope.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, baseURL, uri string, query url.Values) (*T, error) {
	route, err := url.JoinPath(baseURL, uri)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	c.authorize(request)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if err = checkStatus(response.StatusCode); err != nil {
		return nil, err
	}

	var result envelope[T]
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	// The API repeats the HTTP status in meta; some errors only show up there.
	if result.Meta.Status != 0 {
		if err = checkStatus(result.Meta.Status); err != nil {
			return nil, fmt.Errorf("%w: %s", err, result.Meta.Message)
		}
	}

	return &result.Response, nil
}

// checkStatus maps an HTTP status to a client error.
func checkStatus(statusCode int) error {
	switch statusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %d", ErrUnauthorized, statusCode)
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
	}
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}

	return url.Values{
		"per_page": {strconv.Itoa(PageSize)},
		"page":     {strconv.Itoa(page)},
	}
}
