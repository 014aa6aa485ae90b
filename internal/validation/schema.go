package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

func (i ValidationIssue) String() string {
	location := strings.TrimSpace(i.Location)
	if location == "" {
		location = "#"
	} else if !strings.HasPrefix(location, "#") {
		location = "#" + location
	}
	if i.Message == "" {
		return location
	}
	return location + ": " + i.Message
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Schema is a compiled JSON schema ready to validate metadata payloads.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile compiles a JSON schema expressed as a map.
func Compile(schema map[string]any) (*Schema, error) {
	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate checks payload against the schema. The payload is first
// round-tripped through encoding/json so decoder specific number and map
// types validate the same way JSON input would.
func (s *Schema) Validate(payload map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if payload == nil {
		payload = map[string]any{}
	}
	instance, err := jsonInstance(payload)
	if err != nil {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	if err := s.compiled.Validate(instance); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// Registry holds compiled schemas keyed by content type. Schemas compile
// lazily on first use.
type Registry struct {
	mu       sync.Mutex
	sources  map[string]map[string]any
	compiled map[string]*Schema
}

// NewRegistry returns a registry seeded with sources.
func NewRegistry(sources map[string]map[string]any) *Registry {
	r := &Registry{
		sources:  map[string]map[string]any{},
		compiled: map[string]*Schema{},
	}
	for key, schema := range sources {
		r.sources[key] = schema
	}
	return r
}

// Register adds or replaces the schema for key.
func (r *Registry) Register(key string, schema map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[key] = schema
	delete(r.compiled, key)
}

// Validate validates payload with the schema registered for key. Keys
// without a schema always pass.
func (r *Registry) Validate(key string, payload map[string]any) error {
	schema, err := r.schema(key)
	if err != nil {
		return err
	}
	return schema.Validate(payload)
}

func (r *Registry) schema(key string) (*Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if schema, ok := r.compiled[key]; ok {
		return schema, nil
	}
	source, ok := r.sources[key]
	if !ok {
		return nil, nil
	}
	schema, err := Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", key, err)
	}
	r.compiled[key] = schema
	return schema, nil
}

func jsonInstance(payload map[string]any) (any, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return nil, err
	}
	return instance, nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	var issues []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
