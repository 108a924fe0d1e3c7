/*
agent orchestrates tool-calling conversations between a chat completion
provider and a toolkit of local tools.
*/
package agent

import (
	"context"

	// Packages
	clima "github.com/sysnetvision/go-clima"
	opt "github.com/sysnetvision/go-clima/pkg/opt"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	tool "github.com/sysnetvision/go-clima/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent runs a conversation against a generator, dispatching any tool
// calls the model requests and feeding the results back for a final
// response.
type Agent struct {
	generator clima.Generator
	toolkit   *tool.Toolkit
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// The model decides which tools to call exactly once per exchange. After
// the results are fed back the follow-up request declares no tools, so
// the exchange makes either one or two completion calls.
const maxToolRounds = 1

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an agent from a generator and a toolkit. The toolkit may
// be nil, in which case no tools are declared and every exchange is a
// single completion call.
func New(generator clima.Generator, toolkit *tool.Toolkit) (*Agent, error) {
	if generator == nil {
		return nil, clima.ErrBadParameter.With("generator is required")
	}
	return &Agent{
		generator: generator,
		toolkit:   toolkit,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run sends a message within a session. When the model requests tool
// calls, each call is dispatched through the toolkit, the results are
// appended to the session in call order, and the model is re-invoked
// without tool declarations to produce the final response.
//
// An unknown tool name or arguments which do not match the declared
// schema abort the exchange before any follow-up call is made. A tool
// which runs but fails is reported back to the model as an error result
// and does not abort the exchange.
func (a *Agent) Run(ctx context.Context, model string, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error) {
	if session == nil {
		return nil, clima.ErrBadParameter.With("session is required")
	}

	// Declare tools on the first round only
	firstOpts := opts
	if a.toolkit != nil && len(a.toolkit.Tools()) > 0 {
		firstOpts = append(append([]opt.Opt{}, opts...), tool.WithToolkit(a.toolkit))
	}

	response, err := a.generator.WithSession(ctx, model, session, message, firstOpts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < maxToolRounds && response.Result == schema.ResultToolCall; i++ {
		toolCalls := response.ToolCalls()
		if len(toolCalls) == 0 {
			break
		}

		// Reject calls the toolkit cannot dispatch before running anything,
		// so a misspelled name or malformed arguments never reach a tool
		// and no follow-up request is made.
		for _, call := range toolCalls {
			if err := a.check(call); err != nil {
				return nil, err
			}
		}

		// Execute the calls and feed the results back, in call order
		toolMessage := &schema.Message{
			Role:    schema.RoleTool,
			Content: a.runTools(ctx, toolCalls),
		}
		response, err = a.generator.WithSession(ctx, model, session, toolMessage, opts...)
		if err != nil {
			return nil, err
		}
	}

	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// check validates a tool call against the toolkit without running it
func (a *Agent) check(call schema.ToolCall) error {
	if a.toolkit == nil {
		return clima.ErrUnknownTool.Withf("%q", call.Name)
	}
	return a.toolkit.Validate(call.Name, call.Input)
}

// runTools executes tool calls one at a time, in call order, so at most
// one request is in flight at any moment. Failures become error results
// rather than aborting the exchange.
func (a *Agent) runTools(ctx context.Context, calls []schema.ToolCall) []schema.ContentBlock {
	results := make([]schema.ContentBlock, len(calls))
	for i, call := range calls {
		output, err := a.toolkit.Run(ctx, call.Name, call.Input)
		if err != nil {
			results[i] = schema.NewToolError(call.ID, call.Name, err)
		} else {
			results[i] = schema.NewToolResult(call.ID, call.Name, output)
		}
	}
	return results
}
