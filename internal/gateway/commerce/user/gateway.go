package user

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
	"github.com/Andresg1046/AppTracking/internal/service/driver"
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

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("commerce responded %d", e.code)
}

// UserGateway reads identity records from the commerce platform. Users
// are owned remotely, activation only needs the name, phone and role.
type UserGateway struct {
	doer    httpDoer
	retrier retrier
	baseURL string
	apiKey  string
}

func New(doer httpDoer, baseURL, apiKey string) *UserGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &UserGateway{
		doer:    doer,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (u *UserGateway) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	url := u.baseURL + "/customers/" + strconv.FormatInt(userID, 10)

	var dto userDTO
	err := u.executeWithMetrics(ctx, "GetUser", func(ctx context.Context) error {
		return u.getJSON(ctx, url, &dto)
	})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, fmt.Errorf("gateway commerce, get user %d: %w", userID, driver.ErrUserNotFound)
		}
		return nil, fmt.Errorf("gateway commerce, get user %d: %w", userID, err)
	}

	return toDomain(&dto), nil
}

func (u *UserGateway) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+u.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := u.doer.Do(req)
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

	return !errors.Is(err, context.Canceled)
}

func (u *UserGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := u.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
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
