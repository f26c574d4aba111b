// Package stats fetches the vanity statistic shown under the banner.
//
// The endpoint returns JSON; the configured gjson path must point at a
// number. Callers treat every error as cosmetic and carry on.
package stats

import (
	"context"
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/raphi011/create-whop/internal/config"
	"github.com/raphi011/create-whop/internal/hookerr"
)

// maxBody bounds how much of the response is read.
const maxBody = 1 << 20

// Placeholder is replaced by the formatted number in labels.
const Placeholder = "{count}"

// Fetch requests cfg.URL and returns the number at cfg.Field.
// A zero cfg.Timeout leaves the request bound only by ctx.
func Fetch(ctx context.Context, client *http.Client, cfg config.StatsConfig) (float64, error) {
	if !cfg.Enabled() {
		return 0, hookerr.New(hookerr.StatsFetchFailed, "fetch stats", "no url configured")
	}
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return 0, hookerr.Wrap(hookerr.StatsFetchFailed, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, hookerr.Wrap(hookerr.StatsFetchFailed, "fetch stats", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, hookerr.New(hookerr.StatsFetchFailed, "fetch stats", "unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, hookerr.Wrap(hookerr.StatsFetchFailed, "read stats", err)
	}
	return Extract(body, cfg.Field)
}

// Extract returns the number at path in the JSON document body.
func Extract(body []byte, path string) (float64, error) {
	if !gjson.ValidBytes(body) {
		return 0, hookerr.New(hookerr.StatsFetchFailed, "parse stats", "response is not valid JSON")
	}
	if path == "" {
		path = config.DefaultStatsField
	}
	res := gjson.GetBytes(body, path)
	if !res.Exists() {
		return 0, hookerr.New(hookerr.StatsFetchFailed, "parse stats", "field %q not found", path)
	}
	if res.Type != gjson.Number {
		return 0, hookerr.New(hookerr.StatsFetchFailed, "parse stats", "field %q is not a number", path)
	}
	return res.Float(), nil
}

// Format renders n with the grouping separators of tag, rounding to an integer.
func Format(n float64, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d", int64(math.Round(n)))
}

// Label substitutes the formatted number into label.
func Label(label string, n float64) string {
	if label == "" {
		label = config.DefaultStatsLabel
	}
	return strings.ReplaceAll(label, Placeholder, Format(n, language.English))
}

// Line fetches the statistic and returns the rendered label.
func Line(ctx context.Context, client *http.Client, cfg config.StatsConfig) (string, error) {
	n, err := Fetch(ctx, client, cfg)
	if err != nil {
		return "", err
	}
	return Label(cfg.Label, n), nil
}
