// Package openlibrary is a rate limited client for the Open Library API.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://openlibrary.org"
	DefaultCoversURL = "https://covers.openlibrary.org"

	// MaxImageBytes caps downloaded cover and photo images.
	MaxImageBytes = 5 << 20
)

var ErrNotFound = errors.New("openlibrary: record not found")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	coversURL  string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(userAgent string, rps int, maxRetries int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    DefaultBaseURL,
		coversURL:  DefaultCoversURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// WithBaseURL points the client at another API and covers host.
func (c *Client) WithBaseURL(base, covers string) *Client {
	c.baseURL = strings.TrimRight(base, "/")
	c.coversURL = strings.TrimRight(covers, "/")
	return c
}

type Named struct {
	Name string `json:"name"`
}

// BookDetails matches api/books?jscmd=data
type BookDetails struct {
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Publishers    []Named `json:"publishers"`
	PublishPlaces []Named `json:"publish_places"`
	PublishDate   string  `json:"publish_date"`
	NumberOfPages int     `json:"number_of_pages"`
	Notes         any     `json:"notes"`
	Cover         struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"cover"`
	Authors []struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	} `json:"authors"`
	Ebooks []struct {
		PreviewURL string `json:"preview_url"`
	} `json:"ebooks"`
}

// AuthorDetails matches authors/{olid}.json
type AuthorDetails struct {
	Name       string `json:"name"`
	FullerName string `json:"fuller_name"`
	BirthDate  string `json:"birth_date"`
	Wikipedia  string `json:"wikipedia"`
	Bio        any    `json:"bio"` // string or {type, value}
	Photos     []int  `json:"photos"`
}

// GetBook fetches one edition by bibkey, e.g. method "ISBN" and key
// "9780261103573".
func (c *Client) GetBook(ctx context.Context, method, key string) (*BookDetails, error) {
	bibkey := method + ":" + key
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, url.QueryEscape(bibkey))

	var res map[string]BookDetails
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	details, ok := res[bibkey]
	if !ok {
		return nil, ErrNotFound
	}
	return &details, nil
}

func (c *Client) GetAuthor(ctx context.Context, olid string) (*AuthorDetails, error) {
	u := fmt.Sprintf("%s/authors/%s.json", c.baseURL, url.PathEscape(olid))

	var res AuthorDetails
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AuthorPhotoURL returns the image URL of an author photo id.
func (c *Client) AuthorPhotoURL(id int, size string) string {
	return fmt.Sprintf("%s/a/id/%d-%s.jpg", c.coversURL, id, size)
}

func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retry, err := c.getOnce(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return errors.Wrapf(lastErr, "after %d retries", c.maxRetries)
}

func (c *Client) getOnce(ctx context.Context, u string, target any) (bool, error) {
	resp, err := c.do(ctx, u)
	if err != nil {
		return ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		err := errors.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}
	return false, errors.Wrap(json.NewDecoder(resp.Body).Decode(target), "decode response")
}

func (c *Client) do(ctx context.Context, u string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	return c.httpClient.Do(req)
}

// Download fetches an image, reading at most MaxImageBytes. It returns the
// body and its content type.
func (c *Client) Download(ctx context.Context, u string) ([]byte, string, error) {
	resp, err := c.do(ctx, u)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "read image")
	}
	if len(data) > MaxImageBytes {
		return nil, "", errors.New("image too large")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// AuthorKey extracts the OLID from an author URL such as
// "https://openlibrary.org/authors/OL26320A/J.R.R._Tolkien".
func AuthorKey(authorURL string) string {
	parts := strings.Split(strings.Trim(authorURL, "/"), "/")
	for i, p := range parts {
		if p == "authors" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// EmbedURL turns an archive.org details link into its embeddable form.
func EmbedURL(previewURL string) string {
	return strings.Replace(previewURL, "/details/", "/embed/", 1)
}

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// PublishYear picks the year out of free-form dates like "March 1999".
func PublishYear(date string) (int, bool) {
	m := yearPattern.FindStringSubmatch(date)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	return y, err == nil
}

// Text flattens fields that are either a string or {"type", "value"}.
func Text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if m, ok := v.(map[string]any); ok {
		if s, ok := m["value"].(string); ok {
			return s
		}
	}
	return ""
}
