// Package eaf builds ELAN Annotation Format (EAF 3.0) documents from
// classified diarization segments.
//
// The timeline is normalized before assembly: every distinct boundary
// timestamp becomes exactly one TIME_SLOT, sorted ascending, so two
// segments sharing a boundary reference the same slot. Annotations are
// emitted on two tiers, Operator and Caller, and resolve their intervals
// through slot references rather than raw values.
//
// Clock and unique-id generation are injectable through Builder so tests
// can produce byte-identical documents.
package eaf
