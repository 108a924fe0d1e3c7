package main

import (
	"os"
	"path/filepath"
	"sync"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Defaults is a persistent key-value store backed by a YAML file in the
// user configuration directory.
type Defaults struct {
	mu   sync.RWMutex
	path string
	data map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The name of the defaults file
	defaultsFile = "defaults.yaml"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDefaults creates a Defaults store for the named application.
// If the file exists, its contents are loaded; otherwise the store starts empty.
func NewDefaults(name string) (*Defaults, error) {
	path, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	// Append the name of the application to the path
	if name != "" {
		path = filepath.Join(path, name)
	}

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	d := &Defaults{
		path: filepath.Join(path, defaultsFile),
		data: make(map[string]any),
	}

	// Load existing file (ignore if it doesn't exist)
	data, err := os.ReadFile(d.path)
	if err == nil {
		if err := yaml.Unmarshal(data, &d.data); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	return d, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString retrieves a string value by key, or empty string if not set
func (d *Defaults) GetString(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v, ok := d.data[key].(string); ok {
		return v
	}
	return ""
}

// Set stores a value by key
func (d *Defaults) Set(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[key] = value
}

// Save writes the store back to disk
func (d *Defaults) Save() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	data, err := yaml.Marshal(d.data)
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0600)
}
