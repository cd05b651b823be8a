// Package commentary asks a text-generation service for advice on a formed
// set of groups. The group text is passed through unchanged; the service
// output is returned as-is.
package commentary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"groupform-server-go/config"
)

// Generator produces commentary for rendered group text.
type Generator interface {
	Generate(ctx context.Context, groupText string) (string, error)
}

// ErrService is matched by every error a Generator returns.
var ErrService = errors.New("commentary service failed")

// ServiceError wraps a provider failure: auth, network, quota or a malformed reply.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s commentary: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() []error {
	return []error{ErrService, e.Err}
}

// SystemInstruction frames the model as an advisor for group work.
const SystemInstruction = "You are an education expert advising on student group work."

const promptHeader = `Below are the results of forming student groups for a class activity. Based on them, describe the character of each group and give advice.
Group results:
`

const promptFooter = `
Please consider:
1. The average score of each group
2. The score gap within each group
3. The role of the group leader (highest scorer)
4. Advice for running the group activity

Give a short analysis and advice for each group.
`

// BuildPrompt embeds groupText verbatim in the instruction template.
func BuildPrompt(groupText string) string {
	var b strings.Builder
	b.Grow(len(promptHeader) + len(groupText) + len(promptFooter))
	b.WriteString(promptHeader)
	b.WriteString(groupText)
	b.WriteString(promptFooter)
	return b.String()
}

// New builds the Generator selected by cfg. It returns a nil Generator and no
// error when commentary is disabled or no API key is configured.
func New(cfg config.CommentaryConfig) (Generator, error) {
	if cfg.Provider == "" || cfg.Provider == "none" || cfg.APIKey == "" {
		return nil, nil
	}
	switch cfg.Provider {
	case "openai":
		return NewChatClient(cfg), nil
	case "gemini":
		return NewGeminiClient(context.Background(), cfg)
	default:
		return nil, fmt.Errorf("unknown commentary provider %q", cfg.Provider)
	}
}
