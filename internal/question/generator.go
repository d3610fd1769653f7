// Package question produces trivia rounds by composing a generative text
// call (city, coordinates, distractors, fun fact) with either a photo
// search or a generative image call.
package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/skylineguessr/api/internal/trivia"
)

// contentModel is the subset of *genai.GenerativeModel the generator needs.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Generator struct {
	text   contentModel
	image  contentModel
	photos *PhotoClient
	logger *slog.Logger
}

// citySchema constrains the text model to the exact JSON shape cityPayload
// unmarshals.
var citySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"city":    {Type: genai.TypeString, Description: "A capital city"},
		"country": {Type: genai.TypeString},
		"lat":     {Type: genai.TypeNumber},
		"lng":     {Type: genai.TypeNumber},
		"distractors": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Exactly three other capital cities",
		},
		"funFact": {Type: genai.TypeString},
	},
	Required: []string{"city", "country", "lat", "lng", "distractors", "funFact"},
}

func NewGenerator(client *genai.Client, textModel, imageModel string, photos *PhotoClient, logger *slog.Logger) *Generator {
	tm := client.GenerativeModel(textModel)
	tm.ResponseMIMEType = "application/json"
	tm.ResponseSchema = citySchema

	return &Generator{
		text:   tm,
		image:  client.GenerativeModel(imageModel),
		photos: photos,
		logger: logger,
	}
}

type cityPayload struct {
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Distractors []string `json:"distractors"`
	FunFact     string   `json:"funFact"`
}

// Generate builds one round: a text-model call for the city data followed by
// one image lookup. The two calls run sequentially and neither is retried; a
// failure in either aborts the round.
func (g *Generator) Generate(ctx context.Context, seen []string, realPhoto bool) (trivia.Question, error) {
	payload, err := g.generateCity(ctx, seen)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("generating city: %w", err)
	}

	q := trivia.Question{
		CityName: payload.City,
		Country:  payload.Country,
		Lat:      payload.Lat,
		Lng:      payload.Lng,
		FunFact:  payload.FunFact,
		Options:  trivia.ShuffleOptions(payload.City, payload.Distractors),
	}

	if realPhoto {
		url, credit, err := g.photos.SearchSkyline(ctx, payload.City)
		if err != nil {
			return trivia.Question{}, fmt.Errorf("searching photo for %q: %w", payload.City, err)
		}
		q.ImageURL = url
		q.ImageCredit = credit
	} else {
		dataURL, err := g.generateImage(ctx, payload.City, payload.Country)
		if err != nil {
			return trivia.Question{}, fmt.Errorf("generating image for %q: %w", payload.City, err)
		}
		q.ImageURL = dataURL
	}

	g.logger.Info("generated question", "city", q.CityName, "realPhoto", realPhoto)
	return q, nil
}

func (g *Generator) generateCity(ctx context.Context, seen []string) (cityPayload, error) {
	resp, err := g.text.GenerateContent(ctx, genai.Text(cityPrompt(seen)))
	if err != nil {
		return cityPayload{}, err
	}

	text := firstText(resp)
	if text == "" {
		return cityPayload{}, errors.New("model returned no text")
	}

	var payload cityPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return cityPayload{}, fmt.Errorf("parsing model response: %w", err)
	}
	if payload.City == "" {
		return cityPayload{}, errors.New("model response missing city")
	}
	if len(payload.Distractors) != trivia.OptionCount-1 {
		return cityPayload{}, fmt.Errorf("model returned %d distractors, want %d", len(payload.Distractors), trivia.OptionCount-1)
	}
	return payload, nil
}

// firstText concatenates the text parts of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
