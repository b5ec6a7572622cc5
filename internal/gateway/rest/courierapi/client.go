package courierapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"fasterpost/internal/entities"
)

const serviceName = "courier-api"

// Client - тонкая обертка над REST API маршрутов курьера.
// Ровно шесть сетевых операций, без бизнес-логики и без ретраев:
// неуспех отдается вызывающему как есть. Таймаут задается на уровне http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// FetchCurrentRoute возвращает активный маршрут курьера.
// 404 переводится в ErrNoActiveRoute - это не ошибка, а пустое состояние.
func (c *Client) FetchCurrentRoute(ctx context.Context) (*entities.Route, error) {
	var dto routeDTO
	err := c.do(ctx, http.MethodGet, "/api/courier/routes/current/", "FetchCurrentRoute", nil, &dto)
	if err != nil {
		var reqErr *RequestFailed
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			return nil, ErrNoActiveRoute
		}
		return nil, err
	}

	route, err := toDomain(&dto)
	if err != nil {
		return nil, fmt.Errorf("current route: %w", err)
	}
	return route, nil
}

func (c *Client) StartRoute(ctx context.Context, routeID string) error {
	path := fmt.Sprintf("/api/courier/routes/%s/start/", routeID)
	return c.do(ctx, http.MethodPost, path, "StartRoute", nil, nil)
}

// ScanPackage отмечает одну позицию манифеста обработанной.
// Возвращает новый статус посылки, вычисленный бэкендом.
func (c *Client) ScanPackage(ctx context.Context, routeID, stopID, packageID string, action entities.ScanAction) (entities.PackageStatusType, error) {
	path := fmt.Sprintf("/api/courier/routes/%s/scan-package/", routeID)
	req := scanPackageRequest{
		PackageID: packageID,
		StopID:    stopID,
		Action:    action.String(),
	}

	var resp scanPackageResponse
	err := c.do(ctx, http.MethodPost, path, "ScanPackage", &req, &resp)
	if err != nil {
		return "", err
	}

	return entities.PackageStatusType(resp.NewState), nil
}

func (c *Client) CompleteStop(ctx context.Context, routeID, stopID string) error {
	path := fmt.Sprintf("/api/courier/routes/%s/complete-stop/%s/", routeID, stopID)
	return c.do(ctx, http.MethodPost, path, "CompleteStop", nil, nil)
}

func (c *Client) FinishRoute(ctx context.Context, routeID string) error {
	path := fmt.Sprintf("/api/courier/routes/%s/finish/", routeID)
	return c.do(ctx, http.MethodPost, path, "FinishRoute", nil, nil)
}

// ListRoutes - история маршрутов курьера, новые первыми.
func (c *Client) ListRoutes(ctx context.Context) ([]entities.Route, error) {
	var dtos []routeDTO
	err := c.do(ctx, http.MethodGet, "/api/courier/routes/", "ListRoutes", nil, &dtos)
	if err != nil {
		return nil, err
	}

	routes := make([]entities.Route, 0, len(dtos))
	for i := range dtos {
		route, err := toDomain(&dtos[i])
		if err != nil {
			return nil, fmt.Errorf("route list: %w", err)
		}
		routes = append(routes, *route)
	}
	return routes, nil
}

func (c *Client) do(ctx context.Context, method, path, operation string, reqBody, respBody interface{}) error {
	start := time.Now()

	statusCode, err := c.roundTrip(ctx, method, path, reqBody, respBody)

	codeLabel := "network_error"
	if statusCode > 0 {
		codeLabel = strconv.Itoa(statusCode)
	}
	// Метрики Prometheus
	ClientRequestDuration.WithLabelValues(serviceName, operation, codeLabel).Observe(time.Since(start).Seconds())
	ClientRequestsTotal.WithLabelValues(serviceName, operation, codeLabel).Inc()

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, reqBody, respBody interface{}) (int, error) {
	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return 0, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &RequestFailed{ServerMessage: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var serverErr errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&serverErr)
		return resp.StatusCode, &RequestFailed{
			StatusCode:    resp.StatusCode,
			ServerMessage: serverErr.message(),
		}
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}

	return resp.StatusCode, nil
}
