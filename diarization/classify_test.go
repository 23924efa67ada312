package diarization

import (
	"testing"

	"github.com/skillsenselab/eafgen/errors"
)

func TestClassify_Empty_Fails(t *testing.T) {
	_, err := Classify(nil, nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.HasCode(err, errors.ErrCodeEmptyInput) {
		t.Errorf("expected EMPTY_INPUT, got %v", err)
	}
}

func TestClassify_FirstSpeakerIsOperator(t *testing.T) {
	segments := []Segment{
		{Speaker: "SPEAKER_01", Start: 5.0, End: 6.0},
		{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0},
	}
	p, err := Classify(segments, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Order-based, not time-based: SPEAKER_01 comes first in the file
	// even though SPEAKER_00 speaks earlier.
	if p.OperatorSpeaker != "SPEAKER_01" {
		t.Errorf("expected operator SPEAKER_01, got %q", p.OperatorSpeaker)
	}
}

func TestClassify_Scenario_TwoSpeakersPlusThird(t *testing.T) {
	segments := []Segment{
		{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0},
		{Speaker: "SPEAKER_01", Start: 1.0, End: 2.0},
		{Speaker: "SPEAKER_00", Start: 2.0, End: 3.0},
		{Speaker: "SPEAKER_02", Start: 3.0, End: 4.0},
	}
	p, err := Classify(segments, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.OperatorSpeaker != "SPEAKER_00" {
		t.Errorf("expected operator SPEAKER_00, got %q", p.OperatorSpeaker)
	}
	if len(p.Operator) != 2 {
		t.Errorf("expected 2 operator segments, got %d", len(p.Operator))
	}
	if len(p.Caller) != 2 {
		t.Errorf("expected 2 caller segments, got %d", len(p.Caller))
	}
	if len(p.CallerSpeakers) != 2 {
		t.Errorf("expected 2 distinct caller speakers, got %v", p.CallerSpeakers)
	}
	if p.CallerSpeakers[0] != "SPEAKER_01" || p.CallerSpeakers[1] != "SPEAKER_02" {
		t.Errorf("expected caller speakers in first-appearance order, got %v", p.CallerSpeakers)
	}
}

func TestClassify_SingleSpeaker_EmptyCaller(t *testing.T) {
	segments := []Segment{
		{Speaker: "A", Start: 0.0, End: 1.0},
		{Speaker: "A", Start: 1.0, End: 2.0},
	}
	p, err := Classify(segments, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Operator) != 2 {
		t.Errorf("expected 2 operator segments, got %d", len(p.Operator))
	}
	if len(p.Caller) != 0 {
		t.Errorf("expected empty caller list, got %d", len(p.Caller))
	}
	if len(p.CallerSpeakers) != 0 {
		t.Errorf("expected no caller speakers, got %v", p.CallerSpeakers)
	}
}

func TestClassify_PartitionIsStableAndExhaustive(t *testing.T) {
	segments := []Segment{
		{Speaker: "A", Start: 0.0, End: 0.5},
		{Speaker: "B", Start: 0.5, End: 1.0},
		{Speaker: "A", Start: 1.0, End: 1.5},
		{Speaker: "C", Start: 1.5, End: 2.0},
		{Speaker: "B", Start: 2.0, End: 2.5},
		{Speaker: "A", Start: 2.5, End: 3.0},
	}
	p, err := Classify(segments, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(p.Operator)+len(p.Caller) != len(segments) {
		t.Fatalf("partition not exhaustive: %d + %d != %d",
			len(p.Operator), len(p.Caller), len(segments))
	}

	// Each output list must be a sub-order of the input.
	assertSubOrder(t, "operator", segments, p.Operator)
	assertSubOrder(t, "caller", segments, p.Caller)

	for _, seg := range p.Operator {
		if seg.Speaker != p.OperatorSpeaker {
			t.Errorf("operator list contains foreign speaker %q", seg.Speaker)
		}
	}
	for _, seg := range p.Caller {
		if seg.Speaker == p.OperatorSpeaker {
			t.Error("caller list contains the operator speaker")
		}
	}
}

// assertSubOrder verifies that sub appears in all (as a subsequence).
func assertSubOrder(t *testing.T, name string, all, sub []Segment) {
	t.Helper()
	i := 0
	for _, seg := range all {
		if i < len(sub) && sub[i] == seg {
			i++
		}
	}
	if i != len(sub) {
		t.Errorf("%s list is not a sub-order of the input", name)
	}
}
