package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Andresg1046/AppTracking/internal/entities"
	"github.com/Andresg1046/AppTracking/internal/gateway/commerce"
	"github.com/Andresg1046/AppTracking/internal/service/delivery"
	retrierconfig "github.com/Andresg1046/AppTracking/pkg/retrier"
	"github.com/Andresg1046/AppTracking/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "commerce"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const maxResponseBytes = 1 << 20

// statusError carries the HTTP status through the retrier so only
// throttling and server-side failures are retried.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("commerce responded %d", e.code)
}

type OrderGateway struct {
	doer    httpDoer
	retrier retrier
	baseURL string
	apiKey  string
}

func New(doer httpDoer, baseURL, apiKey string) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &OrderGateway{
		doer:    doer,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (o *OrderGateway) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	url := o.baseURL + "/orders/" + strconv.FormatInt(orderID, 10)

	var dto orderDTO
	err := o.executeWithMetrics(ctx, "GetOrder", func(ctx context.Context) error {
		return o.getJSON(ctx, url, &dto)
	})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, fmt.Errorf("gateway commerce, get order %d: %w", orderID, delivery.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("gateway commerce, get order %d: %w", orderID, err)
	}

	return toDomain(&dto), nil
}

func (o *OrderGateway) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := o.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &statusError{code: resp.StatusCode}
	}

	return json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	// transport-level failures are worth another try
	return !errors.Is(err, context.Canceled)
}

func (o *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusLabel(err)
	commerce.GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		commerce.GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "error"
}
