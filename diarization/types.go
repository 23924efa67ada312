package diarization

// Result is the raw diarization job document produced by the upstream
// inference system.
type Result struct {
	// JobID identifies the diarization job.
	JobID string `json:"jobId" validate:"required"`
	// Status is the job status reported by the upstream system.
	Status string `json:"status" validate:"required"`
	// Output holds the diarization payload.
	Output Output `json:"output"`
}

// Output is the payload section of a diarization result.
type Output struct {
	// Diarization contains speaker-attributed time segments in file order.
	Diarization []Segment `json:"diarization"`
}

// Segment represents one speech turn. Immutable after Load.
type Segment struct {
	// Speaker is the identified speaker label.
	Speaker string `json:"speaker"`
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds, strictly after Start.
	End float64 `json:"end"`
}

// Partition is the result of classifying segments into the two roles.
// Both slices preserve the original relative order of their members.
type Partition struct {
	// OperatorSpeaker is the speaker label of the first segment in file order.
	OperatorSpeaker string
	// CallerSpeakers are the distinct non-operator labels, in order of
	// first appearance.
	CallerSpeakers []string
	// Operator holds the operator's segments.
	Operator []Segment
	// Caller holds everyone else's segments.
	Caller []Segment
}
