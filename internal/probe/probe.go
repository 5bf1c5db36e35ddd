package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bilgisen/welcome/internal/models"
	"github.com/go-resty/resty/v2"
)

// WelcomeMarker must appear in the home page body.
const WelcomeMarker = "Welcome to My Website"

// Prober runs smoke checks against a running site.
type Prober struct {
	client *resty.Client
}

func New(baseURL string, timeout time.Duration) *Prober {
	return &Prober{
		client: resty.New().
			SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetTimeout(timeout).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(time.Second),
	}
}

// Check runs every probe and returns the first failure.
func (p *Prober) Check(ctx context.Context) error {
	if err := p.CheckHome(ctx); err != nil {
		return err
	}
	return p.CheckAdd(ctx)
}

// CheckHome verifies GET / serves the welcome page.
func (p *Prober) CheckHome(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get("/")
	if err != nil {
		return fmt.Errorf("failed to fetch home page: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from home page", resp.StatusCode())
	}
	if !strings.Contains(resp.String(), WelcomeMarker) {
		return fmt.Errorf("home page does not contain %q", WelcomeMarker)
	}
	return nil
}

// CheckAdd verifies GET /add sums its operands.
func (p *Prober) CheckAdd(ctx context.Context) error {
	var result models.SumResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{"a": "2", "b": "3"}).
		SetResult(&result).
		Get("/add")
	if err != nil {
		return fmt.Errorf("failed to call add endpoint: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from add endpoint", resp.StatusCode())
	}
	if result.Sum != 5 {
		return fmt.Errorf("add endpoint returned sum %d, want 5", result.Sum)
	}
	return nil
}
