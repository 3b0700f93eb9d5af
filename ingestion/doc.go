// Package ingestion orchestrates the processing of incoming email. A
// Pipeline runs each message through categorization, action item
// extraction and vector indexing, persisting along the way, with a
// bounded worker pool for batch loads. The loader reads mailbox files
// from disk into the pipeline's input shape.
package ingestion
