// Package plan loads and executes declarative generation plans.
//
// A plan is a YAML file naming a set of machines to generate: arms with
// interaction points, conveyors with connections, and conveyor pairs
// (main + inverse files). Plans are validated twice before execution:
// against an embedded JSON Schema for shape, then structurally for
// per-kind field consistency. Decoding is strict; unknown fields are
// rejected so typos fail loudly instead of silently dropping data.
package plan
