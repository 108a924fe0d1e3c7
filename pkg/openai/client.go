/*
openai implements an API client for the OpenAI chat completion API.
https://platform.openai.com/docs/api-reference/chat
*/
package openai

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	clima "github.com/sysnetvision/go-clima"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ clima.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint    = "https://api.openai.com/v1"
	defaultName = "openai"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new OpenAI API client with the given API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, clima.ErrConfiguration.With("missing API key")
	}

	// Create client. Caller options may override the defaults, which
	// allows pointing the client at a different endpoint.
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return defaultName
}
