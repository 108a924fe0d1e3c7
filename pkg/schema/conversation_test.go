package schema_test

import (
	"testing"

	// Packages
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_conversation_001(t *testing.T) {
	// Messages are appended strictly at the tail
	assert := assert.New(t)

	var session schema.Conversation
	session.Append(*schema.NewMessage(schema.RoleSystem, "system"))
	session.Append(*schema.NewMessage(schema.RoleUser, "user"))
	session.Append(*schema.NewMessage(schema.RoleAssistant, "assistant"))

	assert.Len(session, 3)
	assert.Equal(schema.RoleSystem, session[0].Role)
	assert.Equal(schema.RoleUser, session[1].Role)
	assert.Equal(schema.RoleAssistant, session[2].Role)
}

func Test_conversation_002(t *testing.T) {
	// AppendWithOutput distributes input tokens over prior messages
	assert := assert.New(t)

	var session schema.Conversation
	session.Append(*schema.NewMessage(schema.RoleUser, "hello"))
	session.AppendWithOutput(*schema.NewMessage(schema.RoleAssistant, "hi"), 10, 4)

	assert.Len(session, 2)
	assert.Equal(uint(10), session[0].Tokens)
	assert.Equal(uint(4), session[1].Tokens)
	assert.Equal(uint(14), session.Tokens())
}
