package opentdb

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	domainErrors "github.com/kbpark824/quizr/internal/domain/errors"
	"github.com/kbpark824/quizr/internal/domain/provider"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://opentdb.com/api.php"
	requestTimeout = 5 * time.Second
)

// rawQuestion mirrors the OpenTriviaDB question payload.
type rawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []rawQuestion `json:"results"`
}

// Client fetches single multiple-choice questions from the trivia source.
type Client struct {
	baseURL  string
	client   *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// NewClient creates a new trivia content client
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		baseURL:  baseURL,
		client:   httpClient,
		validate: validator.New(),
		logger:   logger,
	}
}

// FetchQuestion retrieves exactly one multiple-choice item, sanitizes its
// text fields, and validates the result against the content shape bounds.
func (c *Client) FetchQuestion(ctx context.Context) (*provider.TriviaItem, error) {
	reqURL := c.baseURL + "?amount=1&type=multiple"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domainErrors.NewContentSourceError(0, "failed to create request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Trivia source request failed", zap.Error(err))
		return nil, domainErrors.NewContentSourceError(0, "trivia source unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Trivia source returned non-success status",
			zap.Int("status_code", resp.StatusCode))
		return nil, domainErrors.NewContentSourceError(resp.StatusCode, "trivia source returned non-success status", nil)
	}

	if contentType := resp.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		return nil, domainErrors.NewContentSourceError(resp.StatusCode, "trivia source returned non-JSON content type", nil)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domainErrors.NewContentSourceError(resp.StatusCode, "failed to decode trivia source response", err)
	}

	if payload.ResponseCode != 0 {
		return nil, domainErrors.NewContentSourceError(resp.StatusCode, "trivia source reported a non-success response code", nil)
	}

	if len(payload.Results) == 0 {
		return nil, domainErrors.NewContentSourceError(resp.StatusCode, "trivia source returned no results", nil)
	}

	raw := payload.Results[0]

	item := &provider.TriviaItem{
		Question:         Sanitize(raw.Question),
		CorrectAnswer:    Sanitize(raw.CorrectAnswer),
		IncorrectAnswers: make([]string, 0, len(raw.IncorrectAnswers)),
	}
	for _, answer := range raw.IncorrectAnswers {
		item.IncorrectAnswers = append(item.IncorrectAnswers, Sanitize(answer))
	}

	if err := c.validate.Struct(item); err != nil {
		c.logger.Error("Fetched question failed validation", zap.Error(err))
		return nil, domainErrors.NewValidationError("question", err.Error())
	}

	c.logger.Info("Fetched trivia question",
		zap.String("category", raw.Category),
		zap.Int("incorrect_answers", len(item.IncorrectAnswers)))

	return item, nil
}
