// Package routing decodes the host compiler's Routing Record plugin option
// (spec.md §6.2) — a base64-encoded JSON document describing the current
// compilation's source-set topology and output directory — plus the
// sibling enabled/debug options. Modeled on the teacher's
// internal/config.Config: plain structs decoded from JSON and sentinel
// "not found" vs "malformed" errors.
package routing

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
)

// ErrMissing is returned when the sourceSetContext option was not supplied
// at all. Per spec.md §6.2, this is not an error condition for the plugin —
// callers should warn and exit cleanly without generating anything.
var ErrMissing = errors.New("routing: sourceSetContext option was not supplied")

// ErrMalformed is returned when sourceSetContext was supplied but could not
// be decoded as base64 or parsed as the documented JSON schema. Per
// spec.md §7 kind 4, this is a fatal misconfiguration: report and no-op.
var ErrMalformed = errors.New("routing: sourceSetContext is not valid base64-encoded JSON")

// SourceSetRef names a source set and its parent source sets, as carried in
// both defaultSourceSet and allSourceSets (spec.md §6.2).
type SourceSetRef struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents"`
}

// Record is the decoded Routing Record: the compilation's identity, its
// source-set topology, and the directory generated fakes should land in
// (spec.md §6.2).
type Record struct {
	CompilationName  string         `json:"compilationName"`
	TargetName       string         `json:"targetName"`
	PlatformType     string         `json:"platformType"`
	IsTest           bool           `json:"isTest"`
	DefaultSourceSet SourceSetRef   `json:"defaultSourceSet"`
	AllSourceSets    []SourceSetRef `json:"allSourceSets"`
	OutputDirectory  string         `json:"outputDirectory"`
}

// Options bundles the plugin's global enable flag and legacy verbose-logging
// flag, carried as sibling compiler options alongside sourceSetContext
// (spec.md §6.2).
type Options struct {
	Enabled bool
	Debug   bool
}

// Decode parses the base64-encoded JSON value of the sourceSetContext
// compiler option. An empty raw string yields ErrMissing; any base64 or
// JSON decode failure yields ErrMalformed wrapping the underlying cause.
func Decode(raw string) (*Record, error) {
	if raw == "" {
		return nil, ErrMissing
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &rec, nil
}

// ParseOptions reads the enabled/debug plugin options out of a string-keyed
// option map. Unknown keys are ignored (the caller is expected to warn about
// them separately, since only the caller knows which keys it recognizes).
// Absent enabled defaults to true — the plugin is on unless explicitly
// turned off.
func ParseOptions(raw map[string]string) Options {
	opts := Options{Enabled: true}
	if v, ok := raw["enabled"]; ok {
		opts.Enabled = v == "true"
	}
	if v, ok := raw["debug"]; ok {
		opts.Debug = v == "true"
	}
	return opts
}

// KnownOptionKeys lists the plugin options the core itself interprets.
// Callers use this to warn on unrecognized keys (spec.md §6.2 "Unknown
// options are ignored with a warning").
var KnownOptionKeys = map[string]bool{
	"sourceSetContext": true,
	"enabled":          true,
	"debug":            true,
}
