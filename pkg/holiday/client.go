package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultHTTPTimeout = 10 * time.Second

// Country is a country supported by the holiday data source.
type Country struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

// PublicHoliday is the raw record returned by the Nager.Date v3 API.
type PublicHoliday struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties"`
	Types       []string `json:"types"`
}

type Client interface {
	GetAvailableCountries(ctx context.Context) ([]Country, error)
	GetPublicHolidays(ctx context.Context, year int, countryCode string) ([]PublicHoliday, error)
}

// NagerClient talks to the Nager.Date API. Holiday data for a year never
// changes once published, so responses are cached in memory with a TTL.
type NagerClient struct {
	baseURL    string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	holidays  []PublicHoliday
	fetchedAt time.Time
}

func NewNagerClient(baseURL string, cacheTTL time.Duration) *NagerClient {
	return &NagerClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		cacheTTL:   cacheTTL,
		cache:      make(map[string]cacheEntry),
	}
}

func (c *NagerClient) GetAvailableCountries(ctx context.Context) ([]Country, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/AvailableCountries", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("failed to fetch available countries: %v", err)
		return nil, fmt.Errorf("could not fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d for countries", resp.StatusCode)
	}

	var countries []Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("could not parse countries response: %w", err)
	}
	return countries, nil
}

func (c *NagerClient) GetPublicHolidays(ctx context.Context, year int, countryCode string) ([]PublicHoliday, error) {
	cacheKey := fmt.Sprintf("%d/%s", year, countryCode)

	c.mu.RLock()
	if cached, ok := c.cache[cacheKey]; ok && time.Since(cached.fetchedAt) < c.cacheTTL {
		c.mu.RUnlock()
		log.Debugf("using cached holidays for %s", cacheKey)
		return cached.holidays, nil
	}
	c.mu.RUnlock()

	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, countryCode)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("failed to fetch holidays for %s: %v", cacheKey, err)
		return nil, fmt.Errorf("could not fetch holidays for %s in %d: %w", countryCode, year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no holiday data for country %s", countryCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d for %s", resp.StatusCode, cacheKey)
	}

	var holidays []PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("could not parse holidays response: %w", err)
	}

	c.mu.Lock()
	c.cache[cacheKey] = cacheEntry{holidays: holidays, fetchedAt: time.Now()}
	c.mu.Unlock()

	return holidays, nil
}
