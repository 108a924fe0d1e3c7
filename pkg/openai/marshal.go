package openai

import (
	"encoding/json"
	"sort"
	"strings"

	// Packages
	uuid "github.com/google/uuid"
	clima "github.com/sysnetvision/go-clima"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	tool "github.com/sysnetvision/go-clima/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → OPENAI MESSAGES

// messagesFromConversation converts a schema.Conversation to OpenAI message
// format. When systemPrompt is not empty a system message is prepended.
// Tool result messages are split so each carries exactly one tool_call_id.
func messagesFromConversation(session *schema.Conversation, systemPrompt string) ([]openaiMessage, error) {
	var messages []openaiMessage
	if systemPrompt = strings.TrimSpace(systemPrompt); systemPrompt != "" {
		messages = append(messages, openaiMessage{
			Role:    roleSystem,
			Content: systemPrompt,
		})
	}
	if session == nil {
		return messages, nil
	}

	// pendingIDs is a FIFO queue of generated IDs for tool calls whose
	// original IDs were missing. Tool-result messages consume from this
	// queue so that each result references the same replacement ID as
	// the tool call it corresponds to.
	var pendingIDs []string

	for _, msg := range *session {
		// Tool-result messages must be split: the API requires one message
		// per tool_call_id, so a schema.Message with multiple ToolResult
		// blocks becomes multiple messages with role "tool".
		if hasToolResult(msg) {
			for i := range msg.Content {
				if msg.Content[i].ToolResult == nil {
					continue
				}
				om := toolResultMessage(msg.Content[i].ToolResult)
				// If the tool_call_id is missing, consume the next pending
				// ID that was generated for the matching tool call.
				if om.ToolCallID == "" {
					if len(pendingIDs) > 0 {
						om.ToolCallID = pendingIDs[0]
						pendingIDs = pendingIDs[1:]
					} else {
						om.ToolCallID = generateToolCallID()
					}
				}
				messages = append(messages, om)
			}
			continue
		}

		om := messageFromSchemaMessage(msg)

		// Skip empty assistant messages (no content, no tool calls)
		if om.Role == roleAssistant && om.Content == "" && len(om.ToolCalls) == 0 {
			continue
		}

		// Replace any missing tool call IDs and queue the generated IDs
		// so that the subsequent tool-result messages can reference them.
		for j := range om.ToolCalls {
			if om.ToolCalls[j].Id == "" {
				newID := generateToolCallID()
				om.ToolCalls[j].Id = newID
				pendingIDs = append(pendingIDs, newID)
			}
		}

		messages = append(messages, om)
	}
	return messages, nil
}

///////////////////////////////////////////////////////////////////////////////
// SCHEMA MESSAGE → OPENAI MESSAGE (OUTBOUND)

// messageFromSchemaMessage converts a single schema.Message to an OpenAI
// message. Text blocks are concatenated into a single content string, and
// tool call blocks become the tool_calls array.
func messageFromSchemaMessage(msg *schema.Message) openaiMessage {
	var sb strings.Builder
	var toolCalls []openaiToolCall

	for i := range msg.Content {
		block := &msg.Content[i]
		if block.Text != nil {
			sb.WriteString(*block.Text)
			continue
		}
		if block.ToolCall != nil {
			tc := openaiToolCall{
				Id:   block.ToolCall.ID,
				Type: "function",
				Function: openaiFunction{
					Name: block.ToolCall.Name,
				},
			}
			if len(block.ToolCall.Input) > 0 {
				tc.Function.Arguments = string(block.ToolCall.Input)
			} else {
				tc.Function.Arguments = "{}"
			}
			toolCalls = append(toolCalls, tc)
		}
	}

	return openaiMessage{
		Role:      msg.Role,
		Content:   sb.String(),
		ToolCalls: toolCalls,
	}
}

// toolResultMessage creates a "tool" role message from a ToolResult.
func toolResultMessage(tr *schema.ToolResult) openaiMessage {
	var content string
	if len(tr.Content) > 0 {
		content = string(tr.Content)
	}
	return openaiMessage{
		Role:       roleTool,
		Content:    content,
		ToolCallID: tr.ID,
		Name:       tr.Name,
	}
}

///////////////////////////////////////////////////////////////////////////////
// OPENAI RESPONSE → SCHEMA MESSAGE (INBOUND)

// messageFromResponse converts a chat completion response to a schema.Message.
func messageFromResponse(resp *chatCompletionResponse) (*schema.Message, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, clima.ErrUpstream.With("no choices in response")
	}

	choice := &resp.Choices[0]
	var blocks []schema.ContentBlock

	if choice.Message.Refusal != "" {
		refusal := choice.Message.Refusal
		blocks = append(blocks, schema.ContentBlock{Text: &refusal})
	} else if choice.Message.Content != "" {
		text := choice.Message.Content
		blocks = append(blocks, schema.ContentBlock{Text: &text})
	}

	for _, tc := range choice.Message.ToolCalls {
		blocks = append(blocks, schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    tc.Id,
				Name:  tc.Function.Name,
				Input: json.RawMessage(tc.Function.Arguments),
			},
		})
	}

	result := resultFromFinishReason(choice.FinishReason)
	if choice.Message.Refusal != "" {
		result = schema.ResultRefusal
	}

	return &schema.Message{
		Role:    schema.RoleAssistant,
		Content: blocks,
		Tokens:  uint(resp.Usage.CompletionTokens),
		Result:  result,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// toolsFromToolkit converts a tool.Toolkit to OpenAI tool definitions,
// sorted by name for a stable request body.
func toolsFromToolkit(tk *tool.Toolkit) ([]toolDefinition, error) {
	tools := tk.Tools()
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})

	result := make([]toolDefinition, 0, len(tools))
	for _, t := range tools {
		s, err := t.Schema()
		if err != nil {
			return nil, clima.ErrBadParameter.Withf("tool %q: %v", t.Name(), err)
		}
		data, err := json.Marshal(s)
		if err != nil {
			return nil, clima.ErrBadParameter.Withf("tool %q: %v", t.Name(), err)
		}
		result = append(result, toolDefinition{
			Type: "function",
			Function: toolFunctionDef{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  data,
			},
		})
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON → RESULT TYPE

// resultFromFinishReason maps OpenAI finish reasons to schema.ResultType.
func resultFromFinishReason(reason string) schema.ResultType {
	switch reason {
	case finishReasonStop:
		return schema.ResultStop
	case finishReasonLength:
		return schema.ResultMaxTokens
	case finishReasonToolCalls:
		return schema.ResultToolCall
	case finishReasonContentFilter:
		return schema.ResultRefusal
	default:
		return schema.ResultOther
	}
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// generateToolCallID creates a replacement tool call ID in the same
// "call_" prefixed form the API uses.
func generateToolCallID() string {
	return "call_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// hasToolResult reports whether any content block is a tool result.
func hasToolResult(msg *schema.Message) bool {
	for _, b := range msg.Content {
		if b.ToolResult != nil {
			return true
		}
	}
	return false
}
