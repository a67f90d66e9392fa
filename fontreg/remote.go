package fontreg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// googleFontInfo is one family entry of the Google Fonts developer API.
type googleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []googleFontInfo `json:"items"`
}

// LoadRemoteFonts queries the remote font directory and catalogs every
// family and variant as a lazy placeholder: nothing is downloaded until a
// font is requested. Fonts already in the catalog are kept. It returns the
// number of fonts added.
func (r *Registry) LoadRemoteFonts(ctx context.Context, apiKey string) (int, error) {
	if apiKey == "" {
		return 0, ErrMissingAPIKey
	}

	list, err := r.fetchListing(ctx, apiKey)
	if err != nil {
		return 0, err
	}

	added, skipped := 0, 0
	for _, item := range list.Items {
		key := NormalizeFamily(item.Family)
		if key == "" {
			continue
		}
		for _, variant := range item.Variants {
			weight, style, ok := parseVariant(variant)
			uri := item.Files[variant]
			if !ok || uri == "" {
				skipped++
				continue
			}
			c := &Container{
				Family: item.Family,
				Key:    key,
				Weight: weight,
				Style:  style,
				Source: uri,
				Remote: true,
			}
			if r.add(c, false) {
				added++
			}
		}
	}

	r.cfg.logger.Info("fontreg: remote fonts catalogued",
		"families", len(list.Items), "count", added, "skipped", skipped)
	return added, nil
}

func (r *Registry) fetchListing(ctx context.Context, apiKey string) (*googleFontsList, error) {
	u, err := url.Parse(r.cfg.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fontreg: remote endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", apiKey)
	q.Set("sort", "alpha")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("fontreg: remote listing: %w", err)
	}
	resp, err := r.cfg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fontreg: remote listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fontreg: remote listing: %s", resp.Status)
	}

	var list googleFontsList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("fontreg: decode remote listing: %w", err)
	}
	return &list, nil
}
