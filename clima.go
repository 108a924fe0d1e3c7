/*
clima is a client library and command-line tool for weather-aware chat
assistants. It wraps the OpenWeatherMap API into normalized, display-ready
records, and drives tool-calling conversations against the OpenAI
chat-completion endpoint, where the model may request a weather lookup that
is executed locally and fed back into the conversation.
*/
package clima

import (
	"context"

	// Packages
	opt "github.com/sysnetvision/go-clima/pkg/opt"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator is an interface for sending messages to a chat-completion
// endpoint and receiving generated messages
type Generator interface {
	// WithoutSession sends a single message and returns the response (stateless)
	WithoutSession(ctx context.Context, model string, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)

	// WithSession sends a message within a conversation and returns the
	// response (stateful); the message and the response are appended to
	// the conversation
	WithSession(ctx context.Context, model string, session *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, error)
}
