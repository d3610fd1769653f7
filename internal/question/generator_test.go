package question

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

type fakeModel struct {
	resp     *genai.GenerateContentResponse
	err      error
	gotParts []genai.Part
}

func (f *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.gotParts = parts
	return f.resp, f.err
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(s)}},
		}},
	}
}

func blobResponse(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: mime, Data: data}}},
		}},
	}
}

const parisJSON = `{
	"city": "Paris",
	"country": "France",
	"lat": 48.8566,
	"lng": 2.3522,
	"distractors": ["Rome", "Berlin", "Madrid"],
	"funFact": "The Eiffel Tower grows about 15 cm in summer."
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateWithAIImage(t *testing.T) {
	text := &fakeModel{resp: textResponse(parisJSON)}
	image := &fakeModel{resp: blobResponse("image/png", []byte{1, 2, 3})}
	g := &Generator{text: text, image: image, logger: testLogger()}

	q, err := g.Generate(context.Background(), []string{"Tokyo", "Lima"}, false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if q.CityName != "Paris" || q.Country != "France" {
		t.Errorf("got city %q, %q", q.CityName, q.Country)
	}
	if len(q.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(q.Options))
	}
	correct := 0
	for _, o := range q.Options {
		if o == "Paris" {
			correct++
		}
	}
	if correct != 1 {
		t.Errorf("correct city appears %d times in options %v", correct, q.Options)
	}
	if !strings.HasPrefix(q.ImageURL, "data:image/png;base64,") {
		t.Errorf("image URL = %q, want data URL", q.ImageURL)
	}
	if q.ImageCredit != nil {
		t.Error("AI images should carry no photographer credit")
	}

	// The exclusion list must reach the text prompt.
	prompt := string(text.gotParts[0].(genai.Text))
	if !strings.Contains(prompt, "Tokyo") || !strings.Contains(prompt, "Lima") {
		t.Errorf("prompt missing seen cities: %q", prompt)
	}
}

func TestGenerateEmptyModelResponse(t *testing.T) {
	g := &Generator{
		text:   &fakeModel{resp: &genai.GenerateContentResponse{}},
		logger: testLogger(),
	}
	if _, err := g.Generate(context.Background(), nil, false); err == nil {
		t.Fatal("expected error when model returns no text")
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	g := &Generator{
		text:   &fakeModel{resp: textResponse("not json at all")},
		logger: testLogger(),
	}
	if _, err := g.Generate(context.Background(), nil, false); err == nil {
		t.Fatal("expected error for unparseable model response")
	}
}

func TestGenerateWrongDistractorCount(t *testing.T) {
	g := &Generator{
		text: &fakeModel{resp: textResponse(
			`{"city":"Oslo","country":"Norway","lat":1,"lng":2,"distractors":["Bern"],"funFact":"f"}`,
		)},
		logger: testLogger(),
	}
	if _, err := g.Generate(context.Background(), nil, false); err == nil {
		t.Fatal("expected error for wrong distractor count")
	}
}

func TestGenerateNoImagePart(t *testing.T) {
	g := &Generator{
		text:   &fakeModel{resp: textResponse(parisJSON)},
		image:  &fakeModel{resp: textResponse("sorry, no image")},
		logger: testLogger(),
	}
	if _, err := g.Generate(context.Background(), nil, false); err == nil {
		t.Fatal("expected error when image model returns no blob")
	}
}

func TestGenerateWithRealPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "Paris skyline" {
			t.Errorf("query = %q, want %q", got, "Paris skyline")
		}
		if r.Header.Get("Authorization") == "" {
			t.Error("missing Authorization header")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"photos": []map[string]any{{
				"photographer":     "Ana Silva",
				"photographer_url": "https://example.com/ana",
				"src":              map[string]string{"large2x": "https://img.example.com/paris.jpg"},
			}},
		})
	}))
	defer srv.Close()

	g := &Generator{
		text:   &fakeModel{resp: textResponse(parisJSON)},
		photos: NewPhotoClient(srv.URL, "test-key"),
		logger: testLogger(),
	}

	q, err := g.Generate(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.ImageURL != "https://img.example.com/paris.jpg" {
		t.Errorf("image URL = %q", q.ImageURL)
	}
	if q.ImageCredit == nil || q.ImageCredit.Name != "Ana Silva" {
		t.Errorf("image credit = %+v", q.ImageCredit)
	}
}

func TestGeneratePhotoSearchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := &Generator{
		text:   &fakeModel{resp: textResponse(parisJSON)},
		photos: NewPhotoClient(srv.URL, "test-key"),
		logger: testLogger(),
	}
	if _, err := g.Generate(context.Background(), nil, true); err == nil {
		t.Fatal("expected error on non-success photo search status")
	}
}

func TestGeneratePhotoSearchEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"photos": []any{}})
	}))
	defer srv.Close()

	g := &Generator{
		text:   &fakeModel{resp: textResponse(parisJSON)},
		photos: NewPhotoClient(srv.URL, "test-key"),
		logger: testLogger(),
	}
	if _, err := g.Generate(context.Background(), nil, true); err == nil {
		t.Fatal("expected error when search returns no photos")
	}
}
