package openai

import (
	// Packages
	clima "github.com/sysnetvision/go-clima"
	opt "github.com/sysnetvision/go-clima/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithSystemPrompt sets the system prompt, prepended as a system role message
func WithSystemPrompt(prompt string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, prompt)
}

// WithTemperature sets the sampling temperature, between 0.0 and 2.0
func WithTemperature(v float64) opt.Opt {
	if v < 0 || v > 2 {
		return opt.Error(clima.ErrBadParameter.Withf("temperature must be between 0 and 2, got %v", v))
	}
	return opt.SetFloat64(opt.TemperatureKey, v)
}

// WithMaxTokens sets the maximum number of tokens to generate
func WithMaxTokens(v uint) opt.Opt {
	if v == 0 {
		return opt.Error(clima.ErrBadParameter.With("max tokens must be greater than zero"))
	}
	return opt.SetUint(opt.MaxTokensKey, v)
}

// WithTopP sets the nucleus sampling probability, between 0.0 and 1.0
func WithTopP(v float64) opt.Opt {
	if v < 0 || v > 1 {
		return opt.Error(clima.ErrBadParameter.Withf("top_p must be between 0 and 1, got %v", v))
	}
	return opt.SetFloat64(opt.TopPKey, v)
}

// WithSeed sets the random seed for deterministic sampling
func WithSeed(v uint) opt.Opt {
	return opt.SetUint(opt.SeedKey, v)
}

// WithStopSequences sets sequences where the model stops generating
func WithStopSequences(values ...string) opt.Opt {
	return opt.AddString(opt.StopSequencesKey, values...)
}

// WithUser sets an end-user identifier for abuse monitoring
func WithUser(v string) opt.Opt {
	return opt.SetString(opt.UserKey, v)
}

// WithToolChoice sets the tool choice mode ("auto", "none" or "required")
func WithToolChoice(v string) opt.Opt {
	switch v {
	case toolChoiceAuto, toolChoiceNone, toolChoiceRequired:
		return opt.SetString(opt.ToolChoiceKey, v)
	}
	return opt.Error(clima.ErrBadParameter.Withf("invalid tool choice %q", v))
}
