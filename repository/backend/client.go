package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/scrapzee/scrapzee-cli/constant"
	"github.com/scrapzee/scrapzee-cli/model"
	"github.com/scrapzee/scrapzee-cli/utils/errors"
	"github.com/scrapzee/scrapzee-cli/utils/logger"
	"go.uber.org/zap"
)

// do performs one request/response exchange. Every call is tagged with a
// fresh X-Request-ID so client and backend logs can be correlated.
func (g *httpGateway) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return errors.Connectivity(err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.SetCustomError(constant.ErrInternal)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Connectivity(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := g.client.Do(req)
	if err != nil {
		logger.Debug("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return errors.Connectivity(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Connectivity(err)
	}

	logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return rejectionFromResponse(res.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

// rejectionFromResponse turns a non-2xx reply into a typed rejection,
// keeping the backend's `error` text verbatim when present.
func rejectionFromResponse(status int, body []byte) error {
	var payload model.ErrorResponse
	_ = json.Unmarshal(body, &payload)

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return errors.Unauthorized(payload.Error)
	}
	return errors.Rejected(payload.Error)
}
