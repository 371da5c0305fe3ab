package script

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Error codes for script loading.
const (
	ErrCodeRead   = "S001" // File could not be read
	ErrCodeParse  = "S002" // Not valid YAML
	ErrCodeSchema = "S003" // YAML does not match #Script
)

// LoadError represents an error that occurred while loading a script.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Script is a recorded sequence of session actions.
type Script struct {
	// Name identifies the script in transcripts and golden files.
	Name string `yaml:"name"`

	// Description explains what the script exercises.
	Description string `yaml:"description,omitempty"`

	// Steps run in order against one session.
	Steps []Step `yaml:"steps"`
}

// Step is one user action. Exactly one field is set.
type Step struct {
	Convert *ConvertStep `yaml:"convert,omitempty"`
	Save    bool         `yaml:"save,omitempty"`
	History bool         `yaml:"history,omitempty"`
}

// ConvertStep holds the labels and value of a convert action.
// Labels are parsed case-insensitively when the step runs.
type ConvertStep struct {
	Category string  `yaml:"category"`
	Value    float64 `yaml:"value"`
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: fmt.Sprintf("reading script: %v", err)}
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing YAML: %v", err)}
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var sc Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("decoding script: %v", err)}
	}

	return &sc, nil
}

// validate checks the decoded document against #Script.
func validate(raw any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling script schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Script"))

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: cueerrors.Details(err, nil)}
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: cueerrors.Details(err, nil)}
	}

	return nil
}
