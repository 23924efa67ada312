package diarization

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skillsenselab/eafgen/errors"
	"github.com/skillsenselab/eafgen/logger"
	"github.com/skillsenselab/eafgen/validation"
)

// rawDocument mirrors Result with pointer fields so that missing keys can
// be told apart from zero values during validation.
type rawDocument struct {
	JobID  *string    `json:"jobId" validate:"required"`
	Status *string    `json:"status" validate:"required"`
	Output *rawOutput `json:"output" validate:"required"`
}

type rawOutput struct {
	Diarization *[]rawSegment `json:"diarization" validate:"required"`
}

type rawSegment struct {
	Speaker *string  `json:"speaker"`
	Start   *float64 `json:"start"`
	End     *float64 `json:"end"`
}

// Load reads and validates a diarization result document from path.
// Validation failures surface as VALIDATION_ERROR before any
// classification runs; filesystem failures wrap the underlying OS error.
func Load(path string) (*Result, error) {
	log := logger.WithComponent("diarization")
	log.Debug("loading diarization data", logger.Fields(logger.FieldInput, path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("input file", path)
		}
		return nil, errors.Filesystem("read", path, err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Validation(fmt.Sprintf("invalid JSON in %s", path)).WithCause(err)
	}

	if err := validation.Validate(raw); err != nil {
		return nil, err
	}

	segments, err := validateSegments(*raw.Output.Diarization)
	if err != nil {
		return nil, err
	}

	res := &Result{
		JobID:  *raw.JobID,
		Status: *raw.Status,
		Output: Output{Diarization: segments},
	}
	log.Info("diarization data loaded", logger.Fields(
		logger.FieldInput, path,
		logger.FieldSegments, len(segments),
	))
	return res, nil
}

// validateSegments checks every entry for required fields and strict
// interval ordering, aggregating all failures into one validation error.
func validateSegments(raw []rawSegment) ([]Segment, error) {
	v := validation.New()
	segments := make([]Segment, 0, len(raw))

	for i, rs := range raw {
		field := fmt.Sprintf("output.diarization[%d]", i)
		if rs.Speaker == nil {
			v.AddError(field+".speaker", "is required")
			continue
		}
		if rs.Start == nil {
			v.AddError(field+".start", "is required")
			continue
		}
		if rs.End == nil {
			v.AddError(field+".end", "is required")
			continue
		}
		v.Required(field+".speaker", *rs.Speaker)
		v.Before(field, *rs.Start, *rs.End)
		segments = append(segments, Segment{
			Speaker: *rs.Speaker,
			Start:   *rs.Start,
			End:     *rs.End,
		})
	}

	if appErr := v.Validate(); appErr != nil {
		return nil, appErr
	}
	return segments, nil
}
