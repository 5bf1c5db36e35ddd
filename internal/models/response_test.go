package models

import (
	"encoding/json"
	"testing"
)

func TestSumResponseField(t *testing.T) {
	data, err := json.Marshal(SumResponse{Sum: -7})
	if err != nil {
		t.Fatalf("Failed to marshal SumResponse: %v", err)
	}

	if string(data) != `{"sum":-7}` {
		t.Errorf("Expected {\"sum\":-7}, got %s", data)
	}
}

func TestErrorResponseField(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Error: "Bad Request"})
	if err != nil {
		t.Fatalf("Failed to marshal ErrorResponse: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["error"] != "Bad Request" {
		t.Errorf("Expected error field to be 'Bad Request', got %v", result["error"])
	}
}
