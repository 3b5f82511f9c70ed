package oncourt

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatDecoding(t *testing.T) {
	var v struct {
		A flexFloat `json:"a"`
		B flexFloat `json:"b"`
		C flexFloat `json:"c"`
		D flexFloat `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a": 1.5, "b": " 2.25 ", "c": null, "d": "x"}`), &v); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.A != 1.5 || v.B != 2.25 || v.C != 0 || v.D != 0 {
		t.Fatalf("unexpected decode %+v", v)
	}

	if err := json.Unmarshal([]byte(`{"a": true}`), &v); err == nil {
		t.Fatal("expected error for boolean")
	}
}

func TestFlexStringDecoding(t *testing.T) {
	var v struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 42, "b": "P7"}`), &v); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.A != "42" || v.B != "P7" {
		t.Fatalf("unexpected decode %+v", v)
	}
}
