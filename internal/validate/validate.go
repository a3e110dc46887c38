// Package validate checks an archived session against its JSON schema and
// the grid invariants the search loop is supposed to have already enforced
// (§7): this is the boundary where a session about to be archived gets the
// same scrutiny the in-process generator gives itself via
// domain.ErrInvariant.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"crossgen/internal/domain"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var sessionSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := schemasFS.ReadFile("schemas/session.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to read session schema: %v", err))
	}
	if err := compiler.AddResource("session.schema.json", strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("failed to add session schema: %v", err))
	}

	sessionSchema, err = compiler.Compile("session.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile session schema: %v", err))
	}
}

// ValidationError represents a single validation error with path context.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no errors"
	}
	var msgs []string
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// sessionArchive mirrors the JSON shape of an archived session: a height,
// width, and placement list, decoded independently of store.Session so this
// package doesn't need to depend on the storage layer to validate its
// payloads.
type sessionArchive struct {
	Height     int                `json:"height"`
	Width      int                `json:"width"`
	Placements []domain.Placement `json:"placements"`
}

// ValidateSessionJSON validates a session document against the schema.
func ValidateSessionJSON(data []byte) ValidationErrors {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if err := sessionSchema.Validate(doc); err != nil {
		return schemaErrorToValidationErrors(err)
	}
	return nil
}

func schemaErrorToValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		errs = append(errs, extractValidationErrors(ve)...)
	} else {
		errs = append(errs, ValidationError{Message: err.Error()})
	}
	return errs
}

func extractValidationErrors(ve *jsonschema.ValidationError) ValidationErrors {
	var errs ValidationErrors
	if ve.Message != "" {
		errs = append(errs, ValidationError{Path: ve.InstanceLocation, Message: ve.Message})
	}
	for _, cause := range ve.Causes {
		errs = append(errs, extractValidationErrors(cause)...)
	}
	return errs
}

// ValidateSessionSemantic re-derives the grid from the placement list and
// reports every way it can fail the invariants the search loop relies on:
// overwrite conflicts, out-of-bounds placements, and a rendered grid that
// disagrees with the persisted one. This is the same projection the
// generator uses internally (domain.DeriveGrid), run here against
// untrusted input instead of the live search state.
func ValidateSessionSemantic(data []byte, renderedGrid string) ValidationErrors {
	var archive sessionArchive
	if err := json.Unmarshal(data, &archive); err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("failed to parse session: %v", err)}}
	}

	var errs ValidationErrors

	if archive.Height <= 0 || archive.Width <= 0 {
		errs = append(errs, ValidationError{Path: "/height", Message: "height and width must be positive"})
		return errs
	}

	for i, p := range archive.Placements {
		for _, cell := range p.Cells() {
			if cell.Row < 0 || cell.Row >= archive.Height || cell.Col < 0 || cell.Col >= archive.Width {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("/placements/%d", i),
					Message: fmt.Sprintf("placement %q at (%d,%d) falls outside the %dx%d grid", p.Word, cell.Row, cell.Col, archive.Height, archive.Width),
				})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}

	grid, err := domain.DeriveGrid(archive.Height, archive.Width, archive.Placements)
	if err != nil {
		errs = append(errs, ValidationError{Path: "/placements", Message: err.Error()})
		return errs
	}

	if renderedGrid != "" && grid.Render() != renderedGrid {
		errs = append(errs, ValidationError{
			Path:    "/grid",
			Message: "persisted grid does not match the grid derived from placements",
		})
	}

	return errs
}

// ValidateSession runs both the schema check and the semantic re-derivation
// check, short-circuiting on schema failure since semantic validation
// assumes a shape the schema already guarantees.
func ValidateSession(data []byte, renderedGrid string) ValidationErrors {
	if errs := ValidateSessionJSON(data); len(errs) > 0 {
		return errs
	}
	return ValidateSessionSemantic(data, renderedGrid)
}
