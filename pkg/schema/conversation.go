package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is an ordered sequence of messages exchanged with an LLM.
// Messages are only ever appended at the tail.
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the conversation
func (c *Conversation) Append(message Message) {
	*c = append(*c, &message)
}

// AppendWithOutput adds a message to the conversation, re-calculating token
// usage for the conversation
func (c *Conversation) AppendWithOutput(message Message, input, output uint) {
	// Calculate the input tokens and adjust the last message to account for the tokens
	tokens := uint(0)
	for _, msg := range *c {
		tokens += msg.Tokens
	}
	if input > tokens && len(*c) > 0 {
		(*c)[len(*c)-1].Tokens = input - tokens
	}

	// Set the output tokens
	message.Tokens = output

	// Append the message
	*c = append(*c, &message)
}

// Tokens returns the total number of tokens in the conversation
func (c Conversation) Tokens() uint {
	total := uint(0)
	for _, msg := range c {
		total += msg.Tokens
	}
	return total
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Conversation) String() string {
	return Stringify(c)
}
