package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"mlb-inning-times/internal/config"
	"mlb-inning-times/internal/domain"

	"github.com/valyala/fasthttp"
)

const userAgent = "mlb-inning-times/1.0"

var ErrMalformedPayload = errors.New("malformed payload")

// StatusError is returned for any non-200 response from the Stats API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d for %s", e.StatusCode, e.URL)
}

type StatsAPIClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewStatsAPIClient(cfg *config.Config) *StatsAPIClient {
	return &StatsAPIClient{
		baseURL: strings.TrimRight(cfg.StatsAPIBaseURL, "/"),
		client: &fasthttp.Client{
			Name:                userAgent,
			MaxConnsPerHost:     16,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
			// playByPlay for extra-inning games runs to several MB
			MaxResponseBodySize: 64 << 20,
		},
	}
}

func (c *StatsAPIClient) PlayByPlayURL(gamePk string) string {
	return fmt.Sprintf("%s/game/%s/playByPlay", c.baseURL, url.PathEscape(gamePk))
}

func (c *StatsAPIClient) GetPlayByPlay(ctx context.Context, gamePk string) (*PlayByPlayResponse, error) {
	return doRequest[PlayByPlayResponse](ctx, c, c.PlayByPlayURL(gamePk))
}

func doRequest[T any](ctx context.Context, client *StatsAPIClient, url string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode(), URL: url}
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &result, nil
}

type PlayByPlayResponse struct {
	AllPlays []PlayRecord `json:"allPlays"`
}

type PlayRecord struct {
	About  *PlayAbout `json:"about"`
	Result PlayResult `json:"result"`

	// set when the record could not be decoded; the play is then skipped
	decodeErr error
}

type PlayResult struct {
	Type        string `json:"type"`
	Event       string `json:"event"`
	Description string `json:"description"`
}

// UnmarshalJSON decodes one play without failing the whole payload: a record
// with a badly typed field is kept as an empty play and reported through
// PlayByPlayResponse.Undecodable.
func (p *PlayRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		About  json.RawMessage `json:"about"`
		Result json.RawMessage `json:"result"`
	}
	*p = PlayRecord{}
	if err := json.Unmarshal(data, &raw); err != nil {
		p.decodeErr = err
		return nil
	}

	if len(raw.About) > 0 {
		var about PlayAbout
		if err := json.Unmarshal(raw.About, &about); err != nil {
			p.decodeErr = fmt.Errorf("about: %w", err)
			return nil
		}
		if string(raw.About) != "null" {
			p.About = &about
		}
	}
	if len(raw.Result) > 0 {
		// result is informational only
		_ = json.Unmarshal(raw.Result, &p.Result)
	}
	return nil
}

type PlayAbout struct {
	AtBatIndex  *int    `json:"atBatIndex"`
	HalfInning  *string `json:"halfInning"`
	IsTopInning *bool   `json:"isTopInning"`
	Inning      *int    `json:"inning"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	IsComplete  *bool   `json:"isComplete"`
}

// Undecodable counts plays whose JSON could not be decoded.
func (r *PlayByPlayResponse) Undecodable() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, p := range r.AllPlays {
		if p.decodeErr != nil {
			n++
		}
	}
	return n
}

// Plays maps the payload onto domain plays, keeping absent fields nil.
func (r *PlayByPlayResponse) Plays() []domain.Play {
	if r == nil {
		return nil
	}
	plays := make([]domain.Play, 0, len(r.AllPlays))
	for _, p := range r.AllPlays {
		if p.About == nil {
			plays = append(plays, domain.Play{})
			continue
		}
		plays = append(plays, domain.Play{
			Inning:     p.About.Inning,
			HalfInning: p.About.HalfInning,
			StartTime:  p.About.StartTime,
			EndTime:    p.About.EndTime,
		})
	}
	return plays
}
