package jsonapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrMethodNotAllowed(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		allowed       []string
		wantDetailHas string
	}{
		{"with allowed methods", "PATCH", []string{"GET", "PUT"}, "PATCH is not supported. Use one of: GET, PUT"},
		{"no allowed methods", "DELETE", nil, "The DELETE method is not allowed for this resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrMethodNotAllowed(tt.method, tt.allowed)
			if err.Status != "405" || err.Code != "method_not_allowed" {
				t.Errorf("status/code = %s/%s", err.Status, err.Code)
			}
			if err.Detail != tt.wantDetailHas {
				t.Errorf("Detail = %q, want %q", err.Detail, tt.wantDetailHas)
			}
			if err.Meta["method"] != tt.method {
				t.Errorf("Meta[method] = %v, want %v", err.Meta["method"], tt.method)
			}
		})
	}
}

func TestErrorBuilder(t *testing.T) {
	err := NewError(504, "TIMEOUT", "Timeout").
		Detailf("waited %ds", 5).
		ID("req-1").
		Pointer("/ids/0").
		Build()

	if err.StatusCode() != 504 || err.Detail != "waited 5s" || err.ID != "req-1" {
		t.Errorf("error = %+v", err)
	}
	if err.Source == nil || err.Source.Pointer != "/ids/0" {
		t.Errorf("source = %+v", err.Source)
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		errs       []Error
		wantStatus int
	}{
		{"first status wins", []Error{NewError(http.StatusNotFound, "not_found", "Not Found").Build(), ErrInternal("x")}, http.StatusNotFound},
		{"no errors", nil, http.StatusInternalServerError},
		{"missing status", []Error{{Code: "x"}}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.errs...)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != ContentType {
				t.Errorf("Content-Type = %q", ct)
			}
			var doc Document
			if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(doc.Errors) == 0 || doc.JSONAPI == nil || doc.JSONAPI.Version != Version {
				t.Errorf("document = %+v", doc)
			}
		})
	}
}

func TestWriteCollection_Empty(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteCollection(rec, http.StatusOK, nil)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("data = %s, want []", raw["data"])
	}
}

func TestResourceBuilder(t *testing.T) {
	r := NewResource("channels", "ca://PV1").
		Attr("value", 1.5).
		Attr("display", nil).
		AttrString("units", "").
		AttrString("description", "beam current").
		Build()

	if r.Type != "channels" || r.ID != "ca://PV1" {
		t.Errorf("resource = %+v", r)
	}
	for _, key := range []string{"display", "units"} {
		if _, ok := r.Attributes[key]; ok {
			t.Errorf("empty attribute %q was kept", key)
		}
	}
	if r.Attributes["value"] != 1.5 || r.Attributes["description"] != "beam current" {
		t.Errorf("attributes = %v", r.Attributes)
	}
	if r.Meta != nil {
		t.Errorf("meta = %v, want none", r.Meta)
	}
}

func TestResourceBuilder_Failed(t *testing.T) {
	r := NewResource("channels", "ca://PV1").Failed("TIMEOUT", "timed out").Build()

	if r.Attributes != nil {
		t.Errorf("attributes = %v, want none", r.Attributes)
	}
	if r.Meta["code"] != "TIMEOUT" || r.Meta["error"] != "timed out" {
		t.Errorf("meta = %v", r.Meta)
	}
}
