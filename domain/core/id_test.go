package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseSessionID tests session ID parsing
func TestParseSessionID(t *testing.T) {
	valid := NewSessionID().String()

	tests := []struct {
		input    string
		expected SessionID
		hasError bool
	}{
		{valid, SessionID(valid), false},
		{"", "", true},
		{"   ", "", true},
		{"not-a-uuid", "", true},
	}

	for _, test := range tests {
		result, err := ParseSessionID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestDataUnavailableWrapping tests sentinel matching through wrapping
func TestDataUnavailableWrapping(t *testing.T) {
	err := NewDataUnavailableError("data/missing.csv", "file not found")
	if !IsDataUnavailable(err) {
		t.Errorf("Expected %v to match ErrDataUnavailable", err)
	}
	if IsInvalidFilter(err) {
		t.Errorf("Did not expect %v to match ErrInvalidFilter", err)
	}

	filterErr := NewFilterError("gender", "must be one of [Female Male]")
	if !IsInvalidFilter(filterErr) {
		t.Errorf("Expected %v to match ErrInvalidFilter", filterErr)
	}
}
