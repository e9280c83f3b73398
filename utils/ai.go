package utils

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

func NewAIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, option.WithAPIKey(apiKey))
}

// GenerateImage asks Gemini for a photorealistic rendering of the prompt
// and returns the first inline image from the response. A nil slice with
// a nil error means the model produced no image.
func GenerateImage(ctx context.Context, client *genai.Client, model, prompt string) ([]byte, string, error) {
	m := client.GenerativeModel(model)
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx,
		genai.Text("Generate an image: "+prompt+". Style: professional, high-quality, photorealistic."))
	if err != nil {
		return nil, "", err
	}
	if resp == nil {
		return nil, "", nil
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if b, ok := p.(genai.Blob); ok {
				return b.Data, b.MIMEType, nil
			}
		}
	}
	return nil, "", nil
}
