package tool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	clima "github.com/sysnetvision/go-clima"
	opt "github.com/sysnetvision/go-clima/pkg/opt"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	types "github.com/sysnetvision/go-clima/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names
type Toolkit struct {
	tools map[string]Tool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.tools))
	for _, t := range tk.tools {
		result = append(result, t)
	}
	return result
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		name := t.Name()
		if !types.IsIdentifier(name) {
			return clima.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return clima.ErrBadParameter.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given input.
// The input should be json.RawMessage or nil.
// An unregistered name returns ErrUnknownTool; input which does not validate
// against the declared schema (including a missing required parameter) returns
// ErrBadArguments; a failure of the tool itself returns ErrToolFailed.
func (tk *Toolkit) Run(ctx context.Context, name string, input any) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, clima.ErrUnknownTool.Withf("%q", name)
	}

	// Convert input to json.RawMessage
	var rawInput json.RawMessage
	if input != nil {
		switch v := input.(type) {
		case json.RawMessage:
			rawInput = v
		case []byte:
			rawInput = json.RawMessage(v)
		default:
			// If not JSON, marshal it
			data, err := json.Marshal(input)
			if err != nil {
				return nil, clima.ErrBadArguments.Withf("failed to marshal input: %v", err)
			}
			rawInput = json.RawMessage(data)
		}
	}

	// Validate input against schema if provided
	if err := tk.validate(tool, rawInput); err != nil {
		return nil, err
	}

	// Run the tool with raw JSON
	result, err := tool.Run(ctx, rawInput)
	if err != nil {
		return nil, clima.ErrToolFailed.Withf("%s: %v", name, err)
	}
	return result, nil
}

// Validate checks that a named tool exists and that the input matches its
// declared schema, without running the tool. An unregistered name returns
// ErrUnknownTool, input which does not validate returns ErrBadArguments.
func (tk *Toolkit) Validate(name string, input json.RawMessage) error {
	tool := tk.Lookup(name)
	if tool == nil {
		return clima.ErrUnknownTool.Withf("%q", name)
	}
	return tk.validate(tool, input)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate checks the raw input against the tool's declared schema
func (tk *Toolkit) validate(tool Tool, rawInput json.RawMessage) error {
	schema, err := tool.Schema()
	if err != nil {
		return clima.ErrBadArguments.Withf("schema generation failed: %v", err)
	}
	if schema == nil {
		return nil
	}

	// An absent input is validated as an empty object, so that missing
	// required parameters are still detected
	if len(rawInput) == 0 {
		rawInput = json.RawMessage(`{}`)
	}

	// Unmarshal into a map for validation
	var mapInput map[string]any
	if err := json.Unmarshal(rawInput, &mapInput); err != nil {
		return clima.ErrBadArguments.Withf("failed to unmarshal JSON input: %v", err)
	}

	// Validate against schema
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return clima.ErrBadArguments.Withf("schema resolution failed: %v", err)
	}
	if err := resolved.Validate(mapInput); err != nil {
		return clima.ErrBadArguments.Withf("input validation failed: %v", err)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithToolkit declares the toolkit's tools on a completion request
func WithToolkit(tk *Toolkit) opt.Opt {
	if tk == nil {
		return opt.Error(clima.ErrBadParameter.With("toolkit cannot be nil"))
	}
	return opt.SetAny(opt.ToolkitKey, tk)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	return schema.Stringify(tk.Tools())
}
