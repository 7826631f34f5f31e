// services/vision_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const visionModel = "gpt-4o"

const visionSystemPrompt = `You are a nutrition expert who analyses food images and provides accurate calorie estimates.
Format your response as a JSON object with the following fields:
- foodName: The name of the food in the image
- calories: A numeric estimate of the calories (kcal)
- description: A brief description of the nutritional content (proteins, carbs, fats) and portion size`

const visionUserPrompt = "What food is in this image? Analyze it and provide calorie information."

// Estimate is the best-effort result of a vision analysis. Fields are
// always populated: missing or malformed model output is defaulted here,
// so the ledger never sees an entry with undefined required fields.
type Estimate struct {
	FoodName    string  `json:"foodName"`
	Calories    float64 `json:"calories"`
	Description string  `json:"description"`
}

type VisionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewVisionService(apiKey string) *VisionService {
	return &VisionService{
		apiKey:  apiKey,
		baseURL: "https://api.openai.com/v1/chat/completions",
		client:  &http.Client{},
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeImage sends a base64-encoded image to the vision model and
// returns the parsed estimate. Provider failures and unparseable replies
// surface as *EstimationError; no retry is performed.
func (vs *VisionService) AnalyzeImage(imageBase64 string) (*Estimate, error) {
	req := chatRequest{
		Model: visionModel,
		Messages: []chatMessage{
			{Role: "system", Content: visionSystemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: visionUserPrompt},
				{Type: "image_url", ImageURL: &imageURL{
					URL: "data:image/jpeg;base64," + imageBase64,
				}},
			}},
		},
		MaxTokens: 500,
	}
	req.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &EstimationError{Err: err}
	}

	httpReq, err := http.NewRequest(http.MethodPost, vs.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &EstimationError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+vs.apiKey)

	resp, err := vs.client.Do(httpReq)
	if err != nil {
		return nil, &EstimationError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &EstimationError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &EstimationError{Err: fmt.Errorf("provider returned status %d: %s", resp.StatusCode, body)}
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, &EstimationError{Err: err}
	}
	if len(chat.Choices) == 0 {
		return nil, &EstimationError{Err: fmt.Errorf("provider returned no choices")}
	}

	return parseEstimate(chat.Choices[0].Message.Content)
}

// parseEstimate decodes the model's JSON answer, substituting defaults
// for any field that is missing or of the wrong type.
func parseEstimate(content string) (*Estimate, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, &EstimationError{Err: fmt.Errorf("unparseable model output: %w", err)}
	}

	est := &Estimate{}
	if name, ok := raw["foodName"].(string); ok && name != "" {
		est.FoodName = name
	} else {
		est.FoodName = "Unknown food"
	}
	if cal, ok := raw["calories"].(float64); ok && cal >= 0 {
		est.Calories = cal
	}
	if desc, ok := raw["description"].(string); ok && desc != "" {
		est.Description = desc
	} else {
		est.Description = defaultDescription
	}
	return est, nil
}
