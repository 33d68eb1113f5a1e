// Package domain contains the core value types of the relevance
// engine: documents and their fragments, personas and relevance
// profiles, scored units, and the analysis configuration.
//
// All entities here are value objects scoped to a single analysis
// run. They are immutable after creation and are never shared across
// concurrent runs.
package domain
