// Package triage wraps the Anthropic API for AI-assisted bug analysis:
// type classification, required-skill suggestion, fix-time estimation
// and assignee suggestions based on similar past bugs.
package triage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/search"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const bugTypePrompt = `Analyze the following bug report and determine its type from these categories:
FRONTEND, BACKEND, INTEGRATION, PERFORMANCE, SECURITY, OTHER.

Consider these guidelines:
- UI/FRONTEND: Issues with visual elements, layouts, buttons, styling
- BACKEND: Server-side logic, business rules, calculations, endpoints, request/response formats
- INTEGRATION: Communication between services/components
- PERFORMANCE: Slow responses, high resource usage
- SECURITY: Vulnerabilities, authentication, authorization

Bug Title: %s
Bug Description: %s

Respond ONLY with one of the category names (FRONTEND, BACKEND, INTEGRATION, PERFORMANCE, SECURITY, OTHER).`

const developerTypePrompt = `Based on the bug type '%s', determine which developer types are needed to fix it.
Choose from: BACKEND, FRONTEND, FULL_STACK, OTHER.

Rules:
- For UI/FRONTEND bugs: FRONTEND or FULL_STACK
- For BACKEND/API bugs: BACKEND or FULL_STACK
- For INTEGRATION bugs: Include both FRONTEND and BACKEND if UI is involved, otherwise BACKEND
- For PERFORMANCE/SECURITY: FULL_STACK
- For complex bugs that span multiple areas: Include all relevant types

Respond with a COMMA-SEPARATED LIST of developer types (e.g., "BACKEND,FRONTEND").`

const timeEstimatePrompt = `Estimate the time required to fix this bug based on:
- Bug type: %s
- Title: %s
- Description: %s
- Severity: %s

Consider:
- Simple UI fixes: 2-4 hours
- Medium complexity backend: 4-8 hours
- Complex integrations: 8-16 hours
- Critical security issues: 16+ hours

Respond ONLY with the estimated hours as a whole number (e.g., "4").`

const developerSuggestionPrompt = `Suggest the most suitable developers for this bug.

Bug type: %s
Title: %s
Description: %s

Available developers (email - skill):
%s

Similar past bugs:
%s

Respond with a COMMA-SEPARATED LIST of developer emails, best match first.`

// Client wraps the Anthropic API for bug triage.
type Client struct {
	api   *anthropic.Client
	model anthropic.Model
}

// NewClient creates a triage client with the given API key and model.
func NewClient(apiKey, model string) *Client {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client := anthropic.NewClient(opts...)
	return &Client{
		api:   &client,
		model: anthropic.Model(model),
	}
}

// SuggestBugType classifies the report into a BugType.
func (c *Client) SuggestBugType(ctx context.Context, title, description string) (entities.BugType, error) {
	text, err := c.complete(ctx, fmt.Sprintf(bugTypePrompt, title, description))
	if err != nil {
		return "", err
	}
	return ParseBugType(text)
}

// SuggestDeveloperTypes proposes the skill set needed for the bug type.
func (c *Client) SuggestDeveloperTypes(ctx context.Context, bugType entities.BugType) ([]entities.DeveloperType, error) {
	text, err := c.complete(ctx, fmt.Sprintf(developerTypePrompt, bugType))
	if err != nil {
		return nil, err
	}
	return ParseDeveloperTypes(text)
}

// EstimateHours predicts the fix effort in whole hours.
func (c *Client) EstimateHours(ctx context.Context, bug *entities.Bug) (int, error) {
	text, err := c.complete(ctx, fmt.Sprintf(timeEstimatePrompt,
		bug.BugType, bug.Title, bug.Description, bug.Severity))
	if err != nil {
		return 0, err
	}
	return ParseHours(text)
}

// SuggestDevelopers ranks candidate developers using similar past bugs.
func (c *Client) SuggestDevelopers(ctx context.Context, bug *entities.Bug, candidates []entities.User, similar []search.Document) ([]string, error) {
	text, err := c.complete(ctx, fmt.Sprintf(developerSuggestionPrompt,
		bug.BugType, bug.Title, bug.Description,
		formatCandidates(candidates), formatPastBugs(similar)))
	if err != nil {
		return nil, err
	}
	return splitList(text), nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 256,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call: %w", err)
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("no text content in API response")
}

// ParseBugType validates a model answer against the BugType enum.
func ParseBugType(text string) (entities.BugType, error) {
	t := entities.BugType(strings.ToUpper(strings.TrimSpace(text)))
	switch t {
	case entities.BugTypeFrontend, entities.BugTypeBackend, entities.BugTypeIntegration,
		entities.BugTypePerformance, entities.BugTypeSecurity, entities.BugTypeOther:
		return t, nil
	}
	return "", fmt.Errorf("unexpected bug type %q", text)
}

// ParseDeveloperTypes validates a comma-separated model answer.
func ParseDeveloperTypes(text string) ([]entities.DeveloperType, error) {
	types := make([]entities.DeveloperType, 0, 2)
	for _, part := range splitList(text) {
		t := entities.DeveloperType(strings.ToUpper(part))
		switch t {
		case entities.DeveloperFrontend, entities.DeveloperBackend,
			entities.DeveloperFullStack, entities.DeveloperOther:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("unexpected developer type %q", part)
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("empty developer type list %q", text)
	}
	return types, nil
}

// ParseHours validates a whole-number model answer.
func ParseHours(text string) (int, error) {
	hours, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parse hours %q: %w", text, err)
	}
	if hours < 0 {
		return 0, fmt.Errorf("negative hours %d", hours)
	}
	return hours, nil
}

func splitList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func formatCandidates(candidates []entities.User) string {
	if len(candidates) == 0 {
		return "No developers available"
	}
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, fmt.Sprintf("- %s - %s", c.Email, c.DeveloperType))
	}
	return strings.Join(lines, "\n")
}

func formatPastBugs(similar []search.Document) string {
	lines := make([]string, 0, len(similar))
	for _, doc := range similar {
		if doc.AssignedDeveloperEmails == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("- Similar bug '%s' was fixed by %s in %d hours",
			doc.Title, doc.AssignedDeveloperEmails, doc.ActualTimeHours))
	}
	if len(lines) == 0 {
		return "No similar past bugs found"
	}
	return strings.Join(lines, "\n")
}
