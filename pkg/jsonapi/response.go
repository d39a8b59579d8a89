package jsonapi

import (
	"encoding/json"
	"net/http"
)

// WriteDocument writes a JSON:API document to the response.
func WriteDocument(w http.ResponseWriter, status int, doc Document) {
	if doc.JSONAPI == nil {
		doc.JSONAPI = &JSONAPI{Version: Version}
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(doc)
}

// WriteResource writes a single resource response.
func WriteResource(w http.ResponseWriter, status int, r Resource) {
	WriteDocument(w, status, Document{Data: r})
}

// WriteCollection writes a collection response. An empty collection is
// written as an empty array, never omitted.
func WriteCollection(w http.ResponseWriter, status int, resources []Resource) {
	if resources == nil {
		resources = []Resource{}
	}
	WriteDocument(w, status, Document{Data: resources})
}

// WriteError writes an error response with one or more errors.
// The HTTP status is derived from the first error's status field.
func WriteError(w http.ResponseWriter, errs ...Error) {
	if len(errs) == 0 {
		errs = []Error{ErrInternal("")}
	}

	status := errs[0].StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}

	WriteDocument(w, status, Document{Errors: errs})
}

// WriteMethodNotAllowed is a convenience for 405 errors.
// It sets the Allow header per RFC 7231 and includes allowed methods in the error body.
func WriteMethodNotAllowed(w http.ResponseWriter, method string, allowed []string) {
	if len(allowed) > 0 {
		allowHeader := ""
		for i, m := range allowed {
			if i > 0 {
				allowHeader += ", "
			}
			allowHeader += m
		}
		w.Header().Set("Allow", allowHeader)
	}
	WriteError(w, ErrMethodNotAllowed(method, allowed))
}
