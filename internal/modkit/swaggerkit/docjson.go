package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"bizquery/internal/core/version"

	docs "bizquery/internal/services/api/docs"
)

// docReader is a seam so tests can feed a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// errorRef points at the envelope schema every error response uses
var errorRef = map[string]any{"$ref": "#/components/schemas/ErrorResponse"}

// defaultErrors are added to any operation that does not document the status itself
var defaultErrors = map[string]map[string]any{
	"400": errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        6,
		"error":       "query must not be blank",
		"field":       "query",
		"request_id":  "579f33bf50b1/abc-000001",
	}),
	"500": errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
		"request_id":  "579f33bf50b1/abc-000001",
	}),
}

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{"schema": errorRef, "example": example},
		},
	}
}

// serveDocJSON serves the OpenAPI document stamped with the running build and the
// shared error responses
func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, o.BaseURL)
		stampInfo(spec, o.TitleSuffix)
		ensureErrorSchema(spec)
		eachOperation(spec, func(responses map[string]any) {
			for status, resp := range defaultErrors {
				if _, ok := responses[status]; !ok {
					responses[status] = resp
				}
			}
		})

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3, which the bundled UI renders, and
// adds a servers entry when there is none
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// stampInfo reports the running build version and appends the configured title suffix
func stampInfo(spec map[string]any, suffix string) {
	info, ok := spec["info"].(map[string]any)
	if !ok {
		info = map[string]any{}
		spec["info"] = info
	}
	if v := version.Info(version.ServiceAPI).Version; v != "" && v != "dev" {
		info["version"] = v
	}
	if title, ok := info["title"].(string); ok && suffix != "" {
		info["title"] = title + " " + suffix
	}
}

// ensureErrorSchema adds the error envelope model when the document lacks it
func ensureErrorSchema(spec map[string]any) {
	comps := child(spec, "components")
	schemas := child(comps, "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// eachOperation calls fn with the responses map of every operation, creating it if needed
func eachOperation(spec map[string]any, fn func(responses map[string]any)) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			if op, ok := opAny.(map[string]any); ok {
				fn(child(op, "responses"))
			}
		}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
