// Package driven defines the outbound ports of the ingestion core:
// narrow capability interfaces for the things the pipeline consumes
// (HTTP transport, page-oriented document parsing, configuration).
// Adapters implement these so the heuristic logic stays unit-testable
// independent of the concrete library behind each capability.
package driven
