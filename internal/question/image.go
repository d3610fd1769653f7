package question

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// generateImage asks the image model for a skyline render and returns it as
// a data URL, so the response shape matches photo-search rounds.
func (g *Generator) generateImage(ctx context.Context, city, country string) (string, error) {
	resp, err := g.image.GenerateContent(ctx, genai.Text(imagePrompt(city, country)))
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			blob, ok := part.(genai.Blob)
			if !ok {
				continue
			}
			mime := blob.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(blob.Data)), nil
		}
	}
	return "", errors.New("no image part in response")
}
