package question

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/skylineguessr/api/internal/trivia"
)

// PhotoClient queries a Pexels-compatible photo search API. The access key
// stays server-side; clients never see it.
type PhotoClient struct {
	httpClient *http.Client
	baseURL    string
	key        string
}

func NewPhotoClient(baseURL, key string) *PhotoClient {
	return &PhotoClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		key:        key,
	}
}

type photoSearchResponse struct {
	Photos []struct {
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
		Src             struct {
			Large2x string `json:"large2x"`
			Large   string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// SearchSkyline returns the URL and photographer credit of the top search
// hit for "<city> skyline".
func (c *PhotoClient) SearchSkyline(ctx context.Context, city string) (string, *trivia.ImageCredit, error) {
	q := url.Values{}
	q.Set("query", city+" skyline")
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Authorization", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, fmt.Errorf("photo search returned status %d", resp.StatusCode)
	}

	var body photoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", nil, fmt.Errorf("decoding photo search response: %w", err)
	}
	if len(body.Photos) == 0 {
		return "", nil, fmt.Errorf("no photos found for %q", city)
	}

	photo := body.Photos[0]
	imageURL := photo.Src.Large2x
	if imageURL == "" {
		imageURL = photo.Src.Large
	}
	return imageURL, &trivia.ImageCredit{
		Name: photo.Photographer,
		Link: photo.PhotographerURL,
	}, nil
}
