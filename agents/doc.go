// Package agents implements the intelligence layer over the inbox: a
// Categorizer that labels emails, an Extractor that pulls structured
// action items out of them, a Drafter that writes and refines replies,
// and an Assistant that answers questions over the mail corpus with
// retrieval-augmented generation.
//
// Agents persist their own results. Instruction text for the model is
// resolved per call: an explicit caller prompt wins over the active
// stored prompt config, which wins over the built-in defaults.
package agents
