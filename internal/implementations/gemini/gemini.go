package gemini

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	imagenormalizer "brainbox/internal/implementations/image_normalizer"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	OCR_PROMPT = "Extract all readable text from this image exactly as written. " +
		"Return only the text. If there is no readable text, return nothing."
	PDF_PROMPT = "Extract the full plain text of this PDF document. " +
		"Return only the text, keep paragraphs separated by blank lines."
)

var DEFAULT_MODELS = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}

var ErrEmptyResponse = errors.New("model returned no text")

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type namedModel struct {
	name  string
	model contentGenerator
}

// Client talks to Gemini. Every request is tried against the configured
// models in order until one of them answers with text.
type Client struct {
	log    logging.Logger
	client *genai.Client
	models []namedModel
}

func New(ctx context.Context, log logging.Logger, apiKey string, modelNames []string) (*Client, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if len(modelNames) == 0 {
		modelNames = DEFAULT_MODELS
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	models := make([]namedModel, 0, len(modelNames))
	for _, name := range modelNames {
		models = append(models, namedModel{name: name, model: client.GenerativeModel(name)})
	}
	return &Client{log: log, client: client, models: models}, nil
}

func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt))
}

// RecognizeText runs OCR on an uploaded image. Images without text yield an
// empty string.
func (c *Client) RecognizeText(ctx context.Context, image io.Reader) (string, error) {
	data, err := imagenormalizer.ToPNG(image)
	if err != nil {
		return "", err
	}

	text, err := c.generate(ctx, genai.ImageData("png", data), genai.Text(OCR_PROMPT))
	if errors.Is(err, ErrEmptyResponse) {
		return "", nil
	}
	return text, err
}

func (c *Client) ExtractPDFText(ctx context.Context, pdf []byte) (string, error) {
	text, err := c.generate(ctx, genai.Blob{MIMEType: "application/pdf", Data: pdf}, genai.Text(PDF_PROMPT))
	if errors.Is(err, ErrEmptyResponse) {
		return "", nil
	}
	return text, err
}

func (c *Client) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	lastErr := ErrEmptyResponse
	for _, m := range c.models {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		resp, err := m.model.GenerateContent(ctx, parts...)
		if err != nil {
			c.log.Warning(ctx, "Gemini model call failed.", logging.Entry("model", m.name), logging.Entry("err", err))
			lastErr = fmt.Errorf("gemini %s: %w", m.name, err)
			continue
		}

		text := strings.TrimSpace(responseText(resp))
		if text != "" {
			return text, nil
		}
		c.log.Debug(ctx, "Gemini model returned no text.", logging.Entry("model", m.name))
	}
	return "", lastErr
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
