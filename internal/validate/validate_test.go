package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"crossgen/internal/domain"
)

func marshalSession(t *testing.T, height, width int, placements []domain.Placement) []byte {
	t.Helper()
	doc := map[string]interface{}{
		"id":         "s1",
		"height":     height,
		"width":      width,
		"score":      10.5,
		"grid":       "",
		"placements": placements,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	return data
}

func TestValidateSessionJSON_InvalidJSON(t *testing.T) {
	errs := ValidateSessionJSON([]byte("not valid json"))
	if len(errs) == 0 {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(errs[0].Message, "invalid JSON") {
		t.Errorf("expected 'invalid JSON' in error, got: %s", errs[0].Message)
	}
}

func TestValidateSessionJSON_MissingRequiredField(t *testing.T) {
	data := []byte(`{"height": 5, "width": 5, "placements": []}`)
	errs := ValidateSessionJSON(data)
	if len(errs) == 0 {
		t.Error("expected error for missing id/score/grid fields")
	}
}

func TestValidateSessionJSON_BadOrientation(t *testing.T) {
	data := []byte(`{
		"id": "s1", "height": 5, "width": 5, "score": 1, "grid": "",
		"placements": [{"word": "CAT", "position": {"row": 0, "col": 0, "orientation": "diagonal"}}]
	}`)
	errs := ValidateSessionJSON(data)
	if len(errs) == 0 {
		t.Error("expected error for invalid orientation enum value")
	}
}

func TestValidateSessionJSON_Valid(t *testing.T) {
	placements := []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}},
	}
	data := marshalSession(t, 5, 5, placements)
	if errs := ValidateSessionJSON(data); len(errs) > 0 {
		t.Errorf("expected valid session to pass schema validation, got: %v", errs)
	}
}

func TestValidateSessionSemantic_OutOfBounds(t *testing.T) {
	placements := []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 0, Col: 4, Orientation: domain.Horizontal}},
	}
	data := marshalSession(t, 3, 5, placements)
	errs := ValidateSessionSemantic(data, "")
	if len(errs) == 0 {
		t.Error("expected error for placement exceeding grid width")
	}
}

func TestValidateSessionSemantic_ConflictingLetters(t *testing.T) {
	placements := []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}},
		{Word: "DOG", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}},
	}
	data := marshalSession(t, 5, 5, placements)
	errs := ValidateSessionSemantic(data, "")
	if len(errs) == 0 {
		t.Error("expected error for two placements writing conflicting letters to the same cell")
	}
}

func TestValidateSessionSemantic_GridMismatch(t *testing.T) {
	placements := []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}},
	}
	data := marshalSession(t, 5, 5, placements)
	errs := ValidateSessionSemantic(data, "totally wrong rendering")
	found := false
	for _, e := range errs {
		if strings.Contains(e.Message, "does not match") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error about grid mismatch, got: %v", errs)
	}
}

func TestValidateSessionSemantic_ValidGridMatches(t *testing.T) {
	placements := []domain.Placement{
		{Word: "CAT", Position: domain.Position{Row: 0, Col: 0, Orientation: domain.Horizontal}},
	}
	grid, err := domain.DeriveGrid(3, 3, placements)
	if err != nil {
		t.Fatalf("DeriveGrid: %v", err)
	}
	data := marshalSession(t, 3, 3, placements)
	errs := ValidateSessionSemantic(data, grid.Render())
	if len(errs) > 0 {
		t.Errorf("expected no semantic errors, got: %v", errs)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Path: "/grid/0/0", Message: "test error"}
	expected := "/grid/0/0: test error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	err = ValidationError{Path: "", Message: "root error"}
	if err.Error() != "root error" {
		t.Errorf("Error() = %q, want %q", err.Error(), "root error")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Path: "/a", Message: "error 1"},
		{Path: "/b", Message: "error 2"},
	}
	expected := "/a: error 1; /b: error 2"
	if errs.Error() != expected {
		t.Errorf("Error() = %q, want %q", errs.Error(), expected)
	}

	empty := ValidationErrors{}
	if empty.Error() != "no errors" {
		t.Errorf("Error() = %q, want %q", empty.Error(), "no errors")
	}
}
