// Package domain holds DTOs for query http and service contracts
package domain

// ProcessInput is the body of the process endpoints
type ProcessInput struct {
	Query   string `json:"query" validate:"notblank,max=1000" example:"Show me all facilities over 1 million"`
	Execute bool   `json:"execute,omitempty" example:"false"`
}

// QueryResult is one translation, optionally with the rows the SQL returned
type QueryResult struct {
	ID               string         `json:"id" example:"0d9a6f0e-8f3e-4a57-9a8e-2f8c1b0e4d11"`
	OriginalQuery    string         `json:"original_query" example:"Show me all facilities over 1 million"`
	NormalizedQuery  string         `json:"normalized_query" example:"select all facilities over 1 million"`
	GeneratedSQL     string         `json:"generated_sql"`
	Intent           string         `json:"intent" example:"THRESHOLD_QUERY"`
	Context          map[string]any `json:"context"`
	Shortcut         string         `json:"shortcut,omitempty" example:"pko_bp_over_million"`
	ProcessingTimeMs int64          `json:"processing_time_ms" example:"1"`
	Data             *ResultSet     `json:"data,omitempty"`
}

// ResultSet is what the executed SQL returned, capped at the configured row limit
type ResultSet struct {
	Columns   []string         `json:"columns"`
	Rows      []map[string]any `json:"rows"`
	Count     int              `json:"count" example:"12"`
	Truncated bool             `json:"truncated"`
}

// BusinessTerms lists the vocabulary the translator understands
type BusinessTerms struct {
	SampleTerms       []string `json:"sample_terms"`
	SampleQueries     []string `json:"sample_queries"`
	SupportedEntities []string `json:"supported_entities"`
}

// Health is the query processor health payload
type Health struct {
	Status         string `json:"status" example:"UP"`
	Service        string `json:"service" example:"bizquery-api"`
	Version        string `json:"version" example:"dev"`
	ContextEngine  string `json:"context_engine" example:"ACTIVE"`
	QueryProcessor string `json:"query_processor" example:"READY"`
	Executor       string `json:"executor" example:"DISABLED"`
	Timestamp      int64  `json:"timestamp" example:"1760572800000"`
}

// LexiconSummary describes the loaded vocabulary
type LexiconSummary struct {
	Version      int      `json:"version" example:"1"`
	Terms        int      `json:"terms" example:"12"`
	Entities     int      `json:"entities" example:"14"`
	Currencies   []string `json:"currencies"`
	Intents      int      `json:"intents" example:"6"`
	Shortcuts    []string `json:"shortcuts"`
	Tables       []string `json:"tables"`
	DefaultTable string   `json:"default_table" example:"facility"`
	RowLimit     int      `json:"row_limit" example:"50"`
	AsyncWorkers int      `json:"async_workers" example:"3"`
}
