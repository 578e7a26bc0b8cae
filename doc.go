// Package fundchat answers natural-language questions about a fund's
// holdings and trades records.
//
// The core functionalities include:
//   - Table Store: loading the holdings and trades feeds into immutable
//     in-memory tables with coerced date columns.
//   - Aggregation Engine: stateless counts, sums, rankings and per-fund
//     summaries computed on demand over the tables.
//   - Intent Classifier: mapping a free-text question to an optional fund
//     name and a set of topic flags via keyword membership.
//
// The renderer subpackage assembles the bounded text context implied by a
// question, and the agent subpackage hands that context to the completion
// backend to produce the final answer. This package serves as the
// foundational logic for the `fundq` command-line tool and its HTTP
// inspection API.
package fundchat
