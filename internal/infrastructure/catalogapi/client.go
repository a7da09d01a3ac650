// Package catalogapi - HTTP-клиент удаленного сервиса каталога (/api/products, /api/categories, /api/upload).
package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 512
)

// StatusError - сервис ответил не 2xx. Тело ответа хранится только для диагностики.
type StatusError struct {
	Status int
	Body   string
}

func (s *StatusError) Error() string {
	if s.Body == "" {
		return fmt.Sprintf("catalog status %d", s.Status)
	}
	return fmt.Sprintf("catalog status %d: %s", s.Status, s.Body)
}

func (s *StatusError) Unwrap() error {
	return e.ErrUnexpectedStatus
}

// Client ходит в сервис каталога. Повторов нет: любой сбой сразу возвращается вызывающему.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func NewClient(cfg *cfg.CatalogCfg, logger logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	contentType := ""
	if in != nil {
		contentType = "application/json"
	}

	return c.do(ctx, method, path, body, contentType, out)
}

// do отправляет запрос и раскладывает сбои по трем видам:
// e.ErrTransport, *StatusError (e.ErrUnexpectedStatus) и e.ErrMalformedResponse.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warnf("%s %s failed, request_id=%s: %v", method, path, reqID, err)
		return fmt.Errorf("%w: %w", e.ErrTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		c.logger.Warnf("%s %s returned %d, request_id=%s", method, path, res.StatusCode, reqID)
		return &StatusError{Status: res.StatusCode, Body: string(bytes.TrimSpace(detail))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", e.ErrMalformedResponse, err)
	}

	return nil
}
