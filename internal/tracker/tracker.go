// Package tracker fetches Valorant ranks from the tracker.gg profile API.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/connorkuehl/valrank/internal/metrics"
	"github.com/connorkuehl/valrank/internal/valrank"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "tracker",
})

var (
	// ErrFetchFailed wraps every failure returned by FetchRank.
	ErrFetchFailed = errors.New("fetch rank failed")

	ErrInvalidPlayer     = errors.New("invalid player id")
	ErrMalformedResponse = errors.New("malformed response")
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// StatusError is returned for responses outside of the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Retryable reports whether the request may succeed if sent again.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

type Client struct {
	cfg     Config
	http    *http.Client
	metrics *metrics.Metrics
	tracer  trace.Tracer

	newBackOff func() backoff.BackOff
}

func New(cfg Config, m *metrics.Metrics, tracer trace.Tracer) *Client {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{},
		metrics: m,
		tracer:  tracer,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = time.Minute
			return b
		},
	}
}

// FetchRank looks up the player's current and peak tier. Every error it
// returns wraps ErrFetchFailed; callers should treat that as "rank unknown".
func (c *Client) FetchRank(ctx context.Context, player valrank.PlayerID) (valrank.RankResult, error) {
	ctx, span := c.tracer.Start(ctx, "tracker.FetchRank", trace.WithAttributes(
		attribute.String("player_id", string(player)),
	))
	defer span.End()

	start := time.Now()
	rank, err := c.fetchRank(ctx, player)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch rank")
		c.metrics.RankFetched("failed", time.Since(start))

		log.WithError(err).WithField("player_id", player).Error("fetch rank")
		return valrank.RankResult{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	c.metrics.RankFetched("ok", time.Since(start))
	span.SetAttributes(
		attribute.String("rank.current", string(rank.Current)),
		attribute.String("rank.peak", string(rank.Peak)),
	)
	return rank, nil
}

func (c *Client) fetchRank(ctx context.Context, player valrank.PlayerID) (valrank.RankResult, error) {
	if strings.TrimSpace(string(player)) == "" {
		return valrank.RankResult{}, ErrInvalidPlayer
	}

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + url.PathEscape(string(player))

	var body []byte
	attempt := func() error {
		attemptCtx := ctx
		if c.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
			defer cancel()
		}

		b, err := c.get(attemptCtx, endpoint)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.cfg.MaxRetries), ctx)
	notify := func(err error, wait time.Duration) {
		log.WithError(err).WithFields(logrus.Fields{
			"player_id": player,
			"retry_in":  wait,
		}).Warn("rank request failed, retrying")
	}
	if err := backoff.RetryNotify(attempt, b, notify); err != nil {
		return valrank.RankResult{}, err
	}

	return parseRank(body)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	rsp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(rsp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	if rsp.StatusCode < 200 || rsp.StatusCode > 299 {
		serr := &StatusError{Code: rsp.StatusCode, Body: truncate(string(body), 256)}
		if serr.Retryable() {
			return nil, serr
		}
		return nil, backoff.Permanent(serr)
	}

	return body, nil
}

func parseRank(body []byte) (valrank.RankResult, error) {
	if !gjson.ValidBytes(body) {
		return valrank.RankResult{}, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}

	stats := gjson.GetBytes(body, "data.segments.0.stats")
	if !stats.Exists() {
		return valrank.RankResult{}, fmt.Errorf("%w: missing data.segments.0.stats", ErrMalformedResponse)
	}

	current := tierAt(stats, "rank")
	if current == "" {
		return valrank.RankResult{}, fmt.Errorf("%w: missing rank", ErrMalformedResponse)
	}

	peak := tierAt(stats, "peakRank")
	if peak == "" {
		return valrank.RankResult{}, fmt.Errorf("%w: missing peakRank", ErrMalformedResponse)
	}

	return valrank.RankResult{Current: current, Peak: peak}, nil
}

// tierAt reads the tier label of a stat. Some payloads carry the numeric
// tier in "value" and the label in "metadata.tierName".
func tierAt(stats gjson.Result, stat string) valrank.RankTier {
	for _, path := range []string{stat + ".value", stat + ".metadata.tierName"} {
		v := stats.Get(path)
		if v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
			return valrank.RankTier(v.Str)
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
