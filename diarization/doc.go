// Package diarization defines the input data model for speaker-diarization
// results and the classifier that splits segments into the Operator and
// Caller roles.
//
// The Operator is the speaker of the first segment in file order; every
// other speaker is a Caller. The heuristic is deliberately order-based,
// not time-based: input is not guaranteed to be chronologically sorted.
//
// # Usage
//
//	res, err := diarization.Load("call.json")
//	part, err := diarization.Classify(res.Output.Diarization, nil)
package diarization
