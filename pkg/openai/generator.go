package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	clima "github.com/sysnetvision/go-clima"
	opt "github.com/sysnetvision/go-clima/pkg/opt"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	tool "github.com/sysnetvision/go-clima/pkg/tool"
	types "github.com/sysnetvision/go-clima/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultMaxTokens = uint(4096)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithoutSession sends a single message and returns the response (stateless)
func (c *Client) WithoutSession(ctx context.Context, model string, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if message == nil {
		return nil, clima.ErrBadParameter.With("message is required")
	}
	session := schema.Conversation{message}
	return c.generate(ctx, model, &session, opts...)
}

// WithSession sends a message within a session and returns the response (stateful)
func (c *Client) WithSession(ctx context.Context, model string, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if session == nil {
		return nil, clima.ErrBadParameter.With("session is required")
	}
	if message == nil {
		return nil, clima.ErrBadParameter.With("message is required")
	}
	session.Append(*message)
	return c.generate(ctx, model, session, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate is the core method that builds a request from options and sends it
func (c *Client) generate(ctx context.Context, model string, session *schema.Conversation, opts ...opt.Opt) (*schema.Message, error) {
	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Build request
	request, err := generateRequestFromOpts(model, session, options)
	if err != nil {
		return nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Send the request
	var response chatCompletionResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, clima.ErrEndpointUnavailable.Withf("%v", err)
	}

	return c.processResponse(&response, session)
}

// processResponse converts a response to a schema message and appends to session
func (c *Client) processResponse(response *chatCompletionResponse, session *schema.Conversation) (*schema.Message, error) {
	// Convert response to schema message
	message, err := messageFromResponse(response)
	if err != nil {
		return nil, err
	}

	// Append the message to the session with token counts
	inputTokens := uint(response.Usage.PromptTokens)
	outputTokens := uint(response.Usage.CompletionTokens)
	session.AppendWithOutput(*message, inputTokens, outputTokens)

	// Return error for finish reasons that need caller attention
	if len(response.Choices) > 0 {
		switch response.Choices[0].FinishReason {
		case finishReasonLength:
			return message, clima.ErrMaxTokens
		case finishReasonContentFilter:
			return message, clima.ErrRefusal
		}
	}

	return message, nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a chatCompletionRequest from the session and applied options
func generateRequestFromOpts(model string, session *schema.Conversation, options *opt.Options) (*chatCompletionRequest, error) {
	// Convert session to OpenAI message format, prepending the system prompt
	messages, err := messagesFromConversation(session, options.GetString(opt.SystemPromptKey))
	if err != nil {
		return nil, err
	}

	// A single completion choice is always requested
	request := &chatCompletionRequest{
		Model:      model,
		Messages:   messages,
		NumChoices: types.Ptr(1),
	}

	// Temperature
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.Temperature = &v
	}

	// Top P
	if options.Has(opt.TopPKey) {
		v := options.GetFloat64(opt.TopPKey)
		request.TopP = &v
	}

	// Max tokens
	if options.Has(opt.MaxTokensKey) {
		v := options.GetUint(opt.MaxTokensKey)
		request.MaxTokens = &v
	} else {
		v := defaultMaxTokens
		request.MaxTokens = &v
	}

	// Stop sequences
	if ss := options.GetStringArray(opt.StopSequencesKey); len(ss) > 0 {
		request.Stop = ss
	}

	// Random seed
	if options.Has(opt.SeedKey) {
		v := options.GetUint(opt.SeedKey)
		request.Seed = &v
	}

	// End-user identifier
	if user := options.GetString(opt.UserKey); user != "" {
		request.User = user
	}

	// Tool choice
	if tc := options.GetString(opt.ToolChoiceKey); tc != "" {
		request.ToolChoice = tc
	}

	// Tools from toolkit
	if v := options.Get(opt.ToolkitKey); v != nil {
		if tk, ok := v.(*tool.Toolkit); ok {
			tools, err := toolsFromToolkit(tk)
			if err != nil {
				return nil, err
			}
			if len(tools) > 0 {
				request.Tools = tools
			}
		}
	}

	return request, nil
}

// GenerateRequest builds a generate request from options without sending it.
// Useful for testing and debugging.
func GenerateRequest(model string, session *schema.Conversation, opts ...opt.Opt) (any, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	return generateRequestFromOpts(model, session, options)
}
