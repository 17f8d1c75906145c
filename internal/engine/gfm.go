package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// gfmMode and gfmContext select GitHub-flavored rendering as on a wiki page.
	gfmMode    = "gfm"
	gfmContext = "github/gollum"

	// gfmProactiveRate stays under the authenticated 5000 requests/hour quota.
	gfmProactiveRate = 1.2

	// gfmProbe is rendered once to check the API answers.
	gfmProbe = "a"
)

// GFM renders through the GitHub Markdown API.
// Authenticated requests are required: the suite holds more cases than the
// anonymous quota of 60 requests per hour.
type GFM struct {
	token   string
	timeout time.Duration
	baseURL string
	limiter *rate.Limiter
	client  *gh.Client
}

// GFMOption configures a GFM engine.
type GFMOption func(*GFM)

// WithBaseURL points the engine at another API root (GitHub Enterprise, tests).
func WithBaseURL(u string) GFMOption {
	return func(g *GFM) { g.baseURL = u }
}

// WithRateLimit overrides the request throttle.
func WithRateLimit(r rate.Limit, burst int) GFMOption {
	return func(g *GFM) { g.limiter = rate.NewLimiter(r, burst) }
}

// NewGFM returns the gfm engine. An empty token leaves it unavailable.
func NewGFM(token string, timeout time.Duration, opts ...GFMOption) (*GFM, error) {
	g := &GFM{
		token:   token,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(gfmProactiveRate), 1),
	}
	for _, opt := range opts {
		opt(g)
	}

	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}
	g.client = gh.NewClient(httpClient)

	if g.baseURL != "" {
		base := g.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("gfm base URL: %w", err)
		}
		g.client.BaseURL = u
	}

	return g, nil
}

// Name implements Engine.
func (g *GFM) Name() string { return gfmMode }

// Available implements Engine: a token is configured and a probe render succeeds.
func (g *GFM) Available(ctx context.Context) bool {
	if g.token == "" {
		return false
	}
	_, err := g.Output(ctx, gfmProbe)
	return err == nil
}

// Output implements Engine.
func (g *GFM) Output(ctx context.Context, input string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, _, err := g.client.Markdown.Render(ctx, input, &gh.MarkdownOptions{
		Mode:    gfmMode,
		Context: gfmContext,
	})
	if err != nil {
		return "", fmt.Errorf("%w: gfm: %v", ErrEngineFailed, err)
	}
	return out, nil
}
