// Package events defines the typed notification contract of the voice
// ordering pipeline.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.* / response.* / speech.* / error-level kinds: raw session
//     lifecycle surfaced by the event router.
//   - transcript / response.text: incremental spoken text, user and
//     assistant respectively.
//   - order.*: structured order commands extracted from function calls.
//   - state.changed / checkout.* / summary.*: checkout orchestration.
//   - payment.*: externally driven payment outcomes and spoken feedback.
//
// Semantics used across the package:
//
//   - Partial transcript events carry the full accumulated text so far with
//     IsFinal false; final events replace it with the authoritative string.
//   - Final transcript confidence and order extraction confidence are fixed
//     constants; the upstream service provides no real score.
//   - Feedback kinds (summary.text, payment.*.feedback) carry sentences meant
//     to be spoken or displayed verbatim.
package events
