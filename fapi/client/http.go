package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/futbot/gofut/pkg/logger"
)

// do dispatches one request. Signed calls get a fresh timestamp appended,
// then a signature over the encoded query string (timestamp included, the
// signature itself excluded). GET/DELETE carry parameters in the query
// string, POST/PUT as a form-encoded body. Transport failures are wrapped
// with method/path context and returned without retry; retry policy, if
// any, belongs to the caller.
func (c *Client) do(ctx context.Context, method, path string, params *Params, signed bool, out any) error {
	if params == nil {
		params = NewParams()
	}

	if signed {
		params.Set("timestamp", strconv.FormatInt(c.timestamp(), 10))
		payload := params.Encode()
		params.Set("signature", sign(c.secretKey, payload))
		logger.Get().WithFields(map[string]any{
			"method": method,
			"path":   path,
			"params": payload, // signature deliberately not logged
		}).Debug("sending signed request")
	} else {
		logger.Get().WithFields(map[string]any{
			"method": method,
			"path":   path,
			"params": params.Encode(),
		}).Debug("sending request")
	}

	query := params.Encode()
	req := c.http.R().SetContext(ctx)
	endpoint := path

	switch method {
	case http.MethodGet, http.MethodDelete:
		if query != "" {
			endpoint = path + "?" + query
		}
	case http.MethodPost, http.MethodPut:
		req.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		req.SetBody(query)
	default:
		return errors.Errorf("unsupported HTTP method: %s", method)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		logger.Get().WithError(err).Errorf("request failed: %s %s", method, path)
		return errors.Wrapf(err, "%s %s", method, path)
	}

	body := resp.Body()

	// The venue embeds business errors in the body, sometimes under HTTP
	// 200, so the body is inspected before the status code.
	if apiErr := apiErrorFromBody(body); apiErr != nil {
		logger.Get().WithFields(map[string]any{
			"code": apiErr.Code,
			"msg":  apiErr.Message,
		}).Errorf("venue rejected %s %s", method, path)
		return apiErr
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return errors.Errorf("%s %s: HTTP %d: %s", method, path, resp.StatusCode(), string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}
