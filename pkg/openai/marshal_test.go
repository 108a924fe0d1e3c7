package openai

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	tool "github.com/sysnetvision/go-clima/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

func Test_marshal_message_text_user(t *testing.T) {
	a := assert.New(t)
	msg := schema.NewMessage(schema.RoleUser, "Hola como estas?.")
	om := messageFromSchemaMessage(msg)
	a.Equal(roleUser, om.Role)
	a.Equal("Hola como estas?.", om.Content)
	a.Empty(om.ToolCalls)
}

func Test_marshal_message_tool_call(t *testing.T) {
	a := assert.New(t)
	msg := &schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{ToolCall: &schema.ToolCall{
				ID:    "call_abc123",
				Name:  "current_weather",
				Input: json.RawMessage(`{"city":"Madrid","country_code":"ES"}`),
			}},
		},
	}
	om := messageFromSchemaMessage(msg)
	a.Equal(roleAssistant, om.Role)
	a.Len(om.ToolCalls, 1)
	a.Equal("call_abc123", om.ToolCalls[0].Id)
	a.Equal("function", om.ToolCalls[0].Type)
	a.Equal("current_weather", om.ToolCalls[0].Function.Name)
	a.JSONEq(`{"city":"Madrid","country_code":"ES"}`, om.ToolCalls[0].Function.Arguments)
}

func Test_marshal_message_tool_call_empty_input(t *testing.T) {
	a := assert.New(t)
	msg := &schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{ToolCall: &schema.ToolCall{ID: "call_1", Name: "ping"}},
		},
	}
	om := messageFromSchemaMessage(msg)
	a.Len(om.ToolCalls, 1)
	a.Equal("{}", om.ToolCalls[0].Function.Arguments)
}

func Test_marshal_conversation_system_prompt(t *testing.T) {
	a := assert.New(t)
	session := &schema.Conversation{
		schema.NewMessage(schema.RoleUser, "Hola"),
	}
	messages, err := messagesFromConversation(session, "Eres un asistente experto de la app SysNetVision presentate como tal.")
	a.NoError(err)
	a.Len(messages, 2)
	a.Equal(roleSystem, messages[0].Role)
	a.Equal("Eres un asistente experto de la app SysNetVision presentate como tal.", messages[0].Content)
	a.Equal(roleUser, messages[1].Role)
}

func Test_marshal_conversation_nil(t *testing.T) {
	a := assert.New(t)
	messages, err := messagesFromConversation(nil, "")
	a.NoError(err)
	a.Nil(messages)
}

func Test_marshal_conversation_splits_tool_results(t *testing.T) {
	a := assert.New(t)
	session := &schema.Conversation{
		{
			Role: schema.RoleTool,
			Content: []schema.ContentBlock{
				schema.NewToolResult("call_1", "current_weather", map[string]any{"temperatura": "15.3°C"}),
				schema.NewToolResult("call_2", "current_weather", map[string]any{"temperatura": "8.0°C"}),
			},
		},
	}
	messages, err := messagesFromConversation(session, "")
	a.NoError(err)
	a.Len(messages, 2)
	a.Equal(roleTool, messages[0].Role)
	a.Equal("call_1", messages[0].ToolCallID)
	a.Equal("current_weather", messages[0].Name)
	a.Contains(messages[0].Content, "15.3°C")
	a.Equal(roleTool, messages[1].Role)
	a.Equal("call_2", messages[1].ToolCallID)
}

// Tool call IDs missing from the assistant message are replaced with
// generated IDs, and the corresponding tool-result messages receive the
// same replacement IDs in order.
func Test_marshal_conversation_remaps_missing_tool_ids(t *testing.T) {
	a := assert.New(t)
	session := &schema.Conversation{
		{
			Role: schema.RoleAssistant,
			Content: []schema.ContentBlock{
				{ToolCall: &schema.ToolCall{ID: "", Name: "current_weather", Input: json.RawMessage(`{"city":"Madrid"}`)}},
				{ToolCall: &schema.ToolCall{ID: "", Name: "forecast_weather", Input: json.RawMessage(`{"city":"Madrid","days":3}`)}},
			},
		},
		{
			Role: schema.RoleTool,
			Content: []schema.ContentBlock{
				schema.NewToolResult("", "current_weather", "ok"),
			},
		},
		{
			Role: schema.RoleTool,
			Content: []schema.ContentBlock{
				schema.NewToolResult("", "forecast_weather", "ok"),
			},
		},
	}

	messages, err := messagesFromConversation(session, "")
	a.NoError(err)
	a.Len(messages, 3)

	a.Len(messages[0].ToolCalls, 2)
	tc1ID := messages[0].ToolCalls[0].Id
	tc2ID := messages[0].ToolCalls[1].Id
	a.True(strings.HasPrefix(tc1ID, "call_"))
	a.True(strings.HasPrefix(tc2ID, "call_"))
	a.NotEqual(tc1ID, tc2ID)

	a.Equal(tc1ID, messages[1].ToolCallID)
	a.Equal(tc2ID, messages[2].ToolCallID)
}

func Test_marshal_conversation_preserves_tool_ids(t *testing.T) {
	a := assert.New(t)
	session := &schema.Conversation{
		{
			Role: schema.RoleAssistant,
			Content: []schema.ContentBlock{
				{ToolCall: &schema.ToolCall{ID: "call_xyz", Name: "current_weather", Input: json.RawMessage(`{}`)}},
			},
		},
		{
			Role: schema.RoleTool,
			Content: []schema.ContentBlock{
				schema.NewToolResult("call_xyz", "current_weather", "ok"),
			},
		},
	}
	messages, err := messagesFromConversation(session, "")
	a.NoError(err)
	a.Len(messages, 2)
	a.Equal("call_xyz", messages[0].ToolCalls[0].Id)
	a.Equal("call_xyz", messages[1].ToolCallID)
}

func Test_marshal_conversation_skips_empty_assistant(t *testing.T) {
	a := assert.New(t)
	session := &schema.Conversation{
		schema.NewMessage(schema.RoleUser, "Hola"),
		{Role: schema.RoleAssistant},
		schema.NewMessage(schema.RoleUser, "Sigues ahi?"),
	}
	messages, err := messagesFromConversation(session, "")
	a.NoError(err)
	a.Len(messages, 2)
	a.Equal(roleUser, messages[0].Role)
	a.Equal(roleUser, messages[1].Role)
}

func Test_marshal_response_text(t *testing.T) {
	a := assert.New(t)
	resp := &chatCompletionResponse{
		Id:    "chatcmpl-123",
		Model: "gpt-3.5-turbo",
		Choices: []chatChoice{{
			Message:      openaiMessage{Role: roleAssistant, Content: "Hola, soy el asistente de SysNetVision."},
			FinishReason: finishReasonStop,
		}},
		Usage: chatUsage{PromptTokens: 20, CompletionTokens: 12, TotalTokens: 32},
	}
	msg, err := messageFromResponse(resp)
	a.NoError(err)
	a.Equal(schema.RoleAssistant, msg.Role)
	a.Equal(schema.ResultStop, msg.Result)
	a.Equal("Hola, soy el asistente de SysNetVision.", msg.Text())
	a.Equal(uint(12), msg.Tokens)
}

func Test_marshal_response_tool_calls(t *testing.T) {
	a := assert.New(t)
	resp := &chatCompletionResponse{
		Choices: []chatChoice{{
			Message: openaiMessage{
				Role: roleAssistant,
				ToolCalls: []openaiToolCall{{
					Id:   "call_abc",
					Type: "function",
					Function: openaiFunction{
						Name:      "current_weather",
						Arguments: `{"city":"Madrid","country_code":"ES"}`,
					},
				}},
			},
			FinishReason: finishReasonToolCalls,
		}},
	}
	msg, err := messageFromResponse(resp)
	a.NoError(err)
	a.Equal(schema.ResultToolCall, msg.Result)
	calls := msg.ToolCalls()
	a.Len(calls, 1)
	a.Equal("call_abc", calls[0].ID)
	a.Equal("current_weather", calls[0].Name)
	a.JSONEq(`{"city":"Madrid","country_code":"ES"}`, string(calls[0].Input))
}

func Test_marshal_response_refusal(t *testing.T) {
	a := assert.New(t)
	resp := &chatCompletionResponse{
		Choices: []chatChoice{{
			Message:      openaiMessage{Role: roleAssistant, Refusal: "No puedo ayudar con eso."},
			FinishReason: finishReasonStop,
		}},
	}
	msg, err := messageFromResponse(resp)
	a.NoError(err)
	a.Equal(schema.ResultRefusal, msg.Result)
	a.Equal("No puedo ayudar con eso.", msg.Text())
}

func Test_marshal_response_empty(t *testing.T) {
	a := assert.New(t)
	_, err := messageFromResponse(&chatCompletionResponse{})
	a.Error(err)
	_, err = messageFromResponse(nil)
	a.Error(err)
}

func Test_marshal_finish_reasons(t *testing.T) {
	tests := []struct {
		reason string
		result schema.ResultType
	}{
		{finishReasonStop, schema.ResultStop},
		{finishReasonLength, schema.ResultMaxTokens},
		{finishReasonToolCalls, schema.ResultToolCall},
		{finishReasonContentFilter, schema.ResultRefusal},
		{"unknown_reason", schema.ResultOther},
		{"", schema.ResultOther},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			assert.Equal(t, tt.result, resultFromFinishReason(tt.reason))
		})
	}
}

func Test_marshal_tools_from_toolkit(t *testing.T) {
	a := assert.New(t)
	tk, err := tool.NewToolkit(
		testTool{name: "forecast_weather", description: "Forecast for a city"},
		testTool{name: "current_weather", description: "Current weather for a city"},
	)
	a.NoError(err)

	tools, err := toolsFromToolkit(tk)
	a.NoError(err)
	a.Len(tools, 2)

	// Sorted by name
	a.Equal("current_weather", tools[0].Function.Name)
	a.Equal("forecast_weather", tools[1].Function.Name)
	a.Equal("function", tools[0].Type)
	a.Equal("Current weather for a city", tools[0].Function.Description)
	a.NotEmpty(tools[0].Function.Parameters)
}

func Test_marshal_request_with_toolkit(t *testing.T) {
	a := assert.New(t)
	tk, err := tool.NewToolkit(testTool{name: "current_weather", description: "Current weather"})
	a.NoError(err)

	session := &schema.Conversation{
		schema.NewMessage(schema.RoleUser, "Que tiempo hace en Madrid?"),
	}
	request, err := GenerateRequest("gpt-3.5-turbo", session,
		WithSystemPrompt("Eres un asistente experto de la app SysNetVision presentate como tal."),
		WithTemperature(0.7),
		WithMaxTokens(100),
		tool.WithToolkit(tk),
	)
	a.NoError(err)

	req, ok := request.(*chatCompletionRequest)
	a.True(ok)
	a.Equal("gpt-3.5-turbo", req.Model)
	a.Len(req.Messages, 2)
	a.Equal(roleSystem, req.Messages[0].Role)
	a.NotNil(req.Temperature)
	a.Equal(0.7, *req.Temperature)
	a.NotNil(req.MaxTokens)
	a.Equal(uint(100), *req.MaxTokens)
	a.Len(req.Tools, 1)
}

func Test_marshal_request_without_toolkit(t *testing.T) {
	a := assert.New(t)
	session := &schema.Conversation{
		schema.NewMessage(schema.RoleUser, "Hola"),
	}
	request, err := GenerateRequest("gpt-3.5-turbo", session)
	a.NoError(err)

	req, ok := request.(*chatCompletionRequest)
	a.True(ok)
	a.Empty(req.Tools)
	a.NotNil(req.MaxTokens)
	a.Equal(defaultMaxTokens, *req.MaxTokens)

	// A single completion choice is always requested
	a.NotNil(req.NumChoices)
	a.Equal(1, *req.NumChoices)
}

///////////////////////////////////////////////////////////////////////////////
// TEST TOOL

type testTool struct {
	name        string
	description string
}

func (t testTool) Name() string {
	return t.name
}

func (t testTool) Description() string {
	return t.description
}

func (t testTool) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"city": {Type: "string"},
		},
		Required: []string{"city"},
	}, nil
}

func (t testTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	return "ok", nil
}
