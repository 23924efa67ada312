package diarization

import (
	"github.com/skillsenselab/eafgen/errors"
	"github.com/skillsenselab/eafgen/logger"
	"github.com/skillsenselab/eafgen/progress"
)

// Classify partitions segments into Operator and Caller roles.
//
// The operator label is the speaker of the first segment in input order.
// The partition is stable: both output lists keep the original relative
// order of their members. Classification is undefined without at least
// one segment to anchor the operator role, so an empty input fails with
// EMPTY_INPUT. A nil sink disables progress reporting.
func Classify(segments []Segment, sink progress.Sink) (*Partition, error) {
	if len(segments) == 0 {
		return nil, errors.EmptyInput()
	}

	s := progress.OrNoop(sink)

	p := &Partition{
		OperatorSpeaker: segments[0].Speaker,
	}

	seenCallers := make(map[string]bool)

	s.Start(len(segments), "classifying segments")
	for _, seg := range segments {
		if seg.Speaker == p.OperatorSpeaker {
			p.Operator = append(p.Operator, seg)
		} else {
			p.Caller = append(p.Caller, seg)
			if !seenCallers[seg.Speaker] {
				seenCallers[seg.Speaker] = true
				p.CallerSpeakers = append(p.CallerSpeakers, seg.Speaker)
			}
		}
		s.Advance(1)
	}
	s.Done()

	logger.WithComponent("diarization").Debug("segments classified", logger.Fields(
		logger.FieldSpeaker, p.OperatorSpeaker,
		"operator_segments", len(p.Operator),
		"caller_segments", len(p.Caller),
		"caller_speakers", len(p.CallerSpeakers),
	))
	return p, nil
}
