package eaf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/skillsenselab/eafgen/diarization"
)

func fixedBuilder() *Builder {
	return &Builder{
		Now:   func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string { return "00000000-0000-0000-0000-000000000000" },
	}
}

func samplePartition() *diarization.Partition {
	return &diarization.Partition{
		OperatorSpeaker: "SPEAKER_00",
		CallerSpeakers:  []string{"SPEAKER_01", "SPEAKER_02"},
		Operator: []diarization.Segment{
			{Speaker: "SPEAKER_00", Start: 0.0, End: 1.0},
			{Speaker: "SPEAKER_00", Start: 2.0, End: 3.0},
		},
		Caller: []diarization.Segment{
			{Speaker: "SPEAKER_01", Start: 1.0, End: 2.0},
			{Speaker: "SPEAKER_02", Start: 3.0, End: 4.0},
		},
	}
}

func TestBuild_DocumentShape(t *testing.T) {
	doc, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}

	if doc.Format != "3.0" || doc.Version != "3.0" {
		t.Errorf("expected format/version 3.0, got %s/%s", doc.Format, doc.Version)
	}
	if doc.Author != "" {
		t.Errorf("expected empty author, got %q", doc.Author)
	}
	if doc.Date != "2024-03-01T12:00:00Z" {
		t.Errorf("unexpected date %q", doc.Date)
	}
	if doc.SchemaLocation != SchemaLocation {
		t.Errorf("unexpected schema location %q", doc.SchemaLocation)
	}
	if doc.Header.TimeUnits != "milliseconds" {
		t.Errorf("expected milliseconds, got %q", doc.Header.TimeUnits)
	}
	if doc.Header.Property.Name != "URN" {
		t.Errorf("expected URN property, got %q", doc.Header.Property.Name)
	}
	if doc.Header.Property.Value != "urn:nl-mpi-tools-elan-eaf:00000000-0000-0000-0000-000000000000" {
		t.Errorf("unexpected URN value %q", doc.Header.Property.Value)
	}
	if doc.Header.MediaDescriptor.MimeType != "audio/x-wav" {
		t.Errorf("expected audio/x-wav, got %q", doc.Header.MediaDescriptor.MimeType)
	}
}

func TestBuild_TimeOrderDeduplicated(t *testing.T) {
	doc, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.TimeOrder.Slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(doc.TimeOrder.Slots))
	}
	if doc.TimeOrder.Slots[0].ID != "ts1" || doc.TimeOrder.Slots[4].ID != "ts5" {
		t.Errorf("unexpected slot ids %s..%s", doc.TimeOrder.Slots[0].ID, doc.TimeOrder.Slots[4].ID)
	}
}

func TestBuild_TiersAndAnnotationIDs(t *testing.T) {
	doc, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(doc.Tiers))
	}
	op, ca := doc.Tiers[0], doc.Tiers[1]
	if op.TierID != "Operator" || ca.TierID != "Caller" {
		t.Errorf("unexpected tier order: %s, %s", op.TierID, ca.TierID)
	}
	if op.LinguisticTypeRef != "default-lt" || ca.LinguisticTypeRef != "default-lt" {
		t.Error("expected default-lt refs on both tiers")
	}

	if len(op.Annotations) != 2 || len(ca.Annotations) != 2 {
		t.Fatalf("expected 2 annotations per tier, got %d/%d", len(op.Annotations), len(ca.Annotations))
	}
	if op.Annotations[0].Alignable.ID != "o1" || op.Annotations[1].Alignable.ID != "o2" {
		t.Errorf("unexpected operator annotation ids: %s, %s",
			op.Annotations[0].Alignable.ID, op.Annotations[1].Alignable.ID)
	}
	if ca.Annotations[0].Alignable.ID != "c1" || ca.Annotations[1].Alignable.ID != "c2" {
		t.Errorf("unexpected caller annotation ids: %s, %s",
			ca.Annotations[0].Alignable.ID, ca.Annotations[1].Alignable.ID)
	}

	// Shared boundary at 1.0s: end of o1 and start of c1 reference the
	// same slot.
	if op.Annotations[0].Alignable.EndRef != ca.Annotations[0].Alignable.StartRef {
		t.Errorf("expected shared slot at 1.0s, got %s vs %s",
			op.Annotations[0].Alignable.EndRef, ca.Annotations[0].Alignable.StartRef)
	}
}

func TestBuild_SingleSegment(t *testing.T) {
	p := &diarization.Partition{
		OperatorSpeaker: "A",
		Operator:        []diarization.Segment{{Speaker: "A", Start: 0.5, End: 1.5}},
	}
	doc, err := fixedBuilder().Build(p, MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.TimeOrder.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(doc.TimeOrder.Slots))
	}
	if doc.TimeOrder.Slots[0].ValueMillis != 500 || doc.TimeOrder.Slots[1].ValueMillis != 1500 {
		t.Errorf("expected slot values 500 and 1500, got %d and %d",
			doc.TimeOrder.Slots[0].ValueMillis, doc.TimeOrder.Slots[1].ValueMillis)
	}
	if len(doc.Tiers[0].Annotations) != 1 {
		t.Errorf("expected 1 operator annotation, got %d", len(doc.Tiers[0].Annotations))
	}
	if len(doc.Tiers[1].Annotations) != 0 {
		t.Errorf("expected empty caller tier, got %d annotations", len(doc.Tiers[1].Annotations))
	}
}

func TestBuild_Constraints_Verbatim(t *testing.T) {
	doc, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Constraints) != 4 {
		t.Fatalf("expected 4 constraints, got %d", len(doc.Constraints))
	}
	want := map[string]string{
		"Time_Subdivision":     "Time subdivision of parent annotation's time interval, no time gaps allowed within this interval",
		"Symbolic_Subdivision": "Symbolic subdivision of a parent annotation. Annotations refering to the same parent are ordered",
		"Symbolic_Association": "1-1 association with a parent annotation",
		"Included_In":          "Time alignable annotations within the parent annotation's time interval, gaps are allowed",
	}
	for _, c := range doc.Constraints {
		if want[c.Stereotype] != c.Description {
			t.Errorf("constraint %s: unexpected description %q", c.Stereotype, c.Description)
		}
	}
}

func TestBuild_Idempotent_ByteIdentical(t *testing.T) {
	first, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}

	a, err := first.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	b, err := second.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("expected byte-identical output for identical input and injected providers")
	}
}

func TestBytes_XMLShape(t *testing.T) {
	doc, err := fixedBuilder().Build(samplePartition(), MediaLinkage{
		MediaURL:         "file:///audio/call.wav",
		RelativeMediaURL: "./call.wav",
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)

	if !strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("expected XML declaration")
	}
	for _, want := range []string{
		`<ANNOTATION_DOCUMENT AUTHOR="" DATE="2024-03-01T12:00:00Z" FORMAT="3.0" VERSION="3.0"`,
		`xsi:noNamespaceSchemaLocation="http://www.mpi.nl/tools/elan/EAFv3.0.xsd"`,
		`<HEADER MEDIA_FILE="" TIME_UNITS="milliseconds">`,
		`MIME_TYPE="audio/x-wav"`,
		`MEDIA_URL="file:///audio/call.wav"`,
		`RELATIVE_MEDIA_URL="./call.wav"`,
		`<PROPERTY NAME="URN">urn:nl-mpi-tools-elan-eaf:00000000-0000-0000-0000-000000000000</PROPERTY>`,
		`<TIME_SLOT TIME_SLOT_ID="ts1" TIME_VALUE="0">`,
		`<TIME_SLOT TIME_SLOT_ID="ts5" TIME_VALUE="4000">`,
		`<TIER LINGUISTIC_TYPE_REF="default-lt" TIER_ID="Operator">`,
		`<TIER LINGUISTIC_TYPE_REF="default-lt" TIER_ID="Caller">`,
		`<ALIGNABLE_ANNOTATION ANNOTATION_ID="o1" TIME_SLOT_REF1="ts1" TIME_SLOT_REF2="ts2">`,
		`<LINGUISTIC_TYPE GRAPHIC_REFERENCES="false" LINGUISTIC_TYPE_ID="default-lt" TIME_ALIGNABLE="true">`,
		`STEREOTYPE="Time_Subdivision"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestBuild_EmptyMedia_EmptyAttributesEmitted(t *testing.T) {
	doc, err := fixedBuilder().Build(samplePartition(), MediaLinkage{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `MEDIA_URL=""`) {
		t.Error("expected empty MEDIA_URL attribute to be present")
	}
	if !strings.Contains(string(out), `RELATIVE_MEDIA_URL=""`) {
		t.Error("expected empty RELATIVE_MEDIA_URL attribute to be present")
	}
}
