package click108

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/KarinaMa20040822/starwish/backend/pkg/config"
	"github.com/KarinaMa20040822/starwish/backend/pkg/httputil"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Client handles communication with the click108 mobile horoscope pages.
// 每日星座運勢 HTML 呼叫只在這個 client 內
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a new click108 client. Requests are throttled to one
// per cfg.RequestInterval so the nightly 12-sign sweep stays polite.
func NewClient(cfg config.Click108Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient.WithUserAgent(userAgent),
		logger:     log,
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
	}
}

// fetchHTML fetches one horoscope page, honoring the rate limiter.
func (c *Client) fetchHTML(ctx context.Context, path string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
