package ingestion

import "errors"

var (
	// ErrEmailRepositoryRequired is returned when an email repository is not provided.
	ErrEmailRepositoryRequired = errors.New("email repository required")

	// ErrCategorizerRequired is returned when a categorization agent is not provided.
	ErrCategorizerRequired = errors.New("categorizer required")

	// ErrExtractorRequired is returned when an action item agent is not provided.
	ErrExtractorRequired = errors.New("extractor required")

	// ErrVectorClientRequired is returned when a vector index client is not provided.
	ErrVectorClientRequired = errors.New("vector client required")

	// ErrEmailRequired is returned when a nil email is submitted for processing.
	ErrEmailRequired = errors.New("email required")

	// ErrMissingField is returned by the loader when a required email
	// field is absent.
	ErrMissingField = errors.New("missing required field")
)
