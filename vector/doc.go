// Package vector bridges the embedding model and the vector store. It
// turns emails into unit-normalized embedding vectors with display
// metadata, and turns free-text queries into ranked matches or a
// formatted context block for retrieval-augmented prompting.
package vector
