package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel     = "claude-haiku-4-5-20251001"
	defaultMaxTokens = 512
)

var ErrEmptyReply = errors.New("empty response from assistant")

// Client answers free-form questions about using the scheduler. It never
// changes events; commands go through the rule-based router.
type Client struct {
	client   anthropic.Client
	model    string
	timezone *time.Location
	now      func() time.Time
}

// New creates an assistant client. Extra options are passed to the SDK.
func New(apiKey, model string, timezone *time.Location, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}
	if timezone == nil {
		timezone = time.UTC
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		client:   anthropic.NewClient(opts...),
		model:    model,
		timezone: timezone,
		now:      time.Now,
	}
}

// Reply sends one user message and returns the first text block of the answer.
func (c *Client) Reply(ctx context.Context, userMessage string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: c.systemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					{OfRequestTextBlock: &anthropic.TextBlockParam{Text: userMessage}},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api call: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", ErrEmptyReply
}

func (c *Client) systemPrompt() string {
	now := c.now().In(c.timezone)
	return fmt.Sprintf(`You help people use a personal scheduling service. Answer briefly in plain text.

Today: %s
Timezone: %s

The service understands these commands (send them to the commands endpoint, not to you):
- add task <title> <date> <start>-<end> [urgent] [important] [hard|easy]
- reschedule <title> to <date> <start>-<end>
- rename <title> to <new title>
- mark <title> completed | missed
- mark segment <n> of <title> done
- delete <title> / delete segments of <title>
- split <title> into <n> with <m>m breaks (events of 180 minutes or more)
- what's on my schedule today | tomorrow | this week
- what's my productivity

When asked to change the schedule, reply with the command the user should send.`,
		now.Format("2006-01-02 (Monday) 15:04"),
		c.timezone.String(),
	)
}
