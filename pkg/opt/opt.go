package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a client or request
type Opt func(*Options) error

// Options is a set of applied options
type Options struct {
	url.Values
	values map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys
const (
	SystemPromptKey  = "system_prompt"
	TemperatureKey   = "temperature"
	MaxTokensKey     = "max_tokens"
	TopPKey          = "top_p"
	SeedKey          = "seed"
	StopSequencesKey = "stop_sequences"
	UserKey          = "user"
	ToolkitKey       = "toolkit"
	ToolChoiceKey    = "tool_choice"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*Options, error) {
	opts := &Options{
		Values: make(url.Values),
		values: make(map[string]any),
	}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns the opaque value for key, or nil if not set
func (o *Options) Get(key string) any {
	return o.values[key]
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetStringArray returns all values for key, each trimmed
func (o *Options) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strings.TrimSpace(v)
	}
	return result
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Options) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Options) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// Has returns true if the key exists
func (o *Options) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.values[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString sets a single string value for key, replacing any existing value
func SetString(key string, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// AddString appends one or more string values for key
func AddString(key string, value ...string) Opt {
	return func(o *Options) error {
		for _, v := range value {
			o.Values.Add(key, v)
		}
		return nil
	}
}

// SetUint sets a single uint value for key
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, fmt.Sprintf("%d", value))
		return nil
	}
}

// SetFloat64 sets a single float64 value for key
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetAny sets an opaque value for key, replacing any existing value
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		o.values[key] = value
		return nil
	}
}
