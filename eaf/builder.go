package eaf

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/eafgen/diarization"
	"github.com/skillsenselab/eafgen/logger"
	"github.com/skillsenselab/eafgen/progress"
)

// Builder assembles EAF documents. Clock and unique-id generation are
// fields so callers can inject deterministic providers.
type Builder struct {
	// Now supplies the generation timestamp for the DATE attribute.
	Now func() time.Time
	// NewID supplies the unique identifier embedded in the URN property.
	NewID func() string
	// Progress receives phase updates; nil means no reporting.
	Progress progress.Sink
}

// NewBuilder creates a Builder with the ambient clock and a UUID source.
func NewBuilder() *Builder {
	return &Builder{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// Build assembles the complete annotation document for a classified
// partition: header with media linkage, the normalized time-slot table,
// Operator and Caller tiers, the linguistic type, and the fixed
// constraint vocabulary.
func (b *Builder) Build(p *diarization.Partition, media MediaLinkage) (*Document, error) {
	log := logger.WithComponent("eaf-builder")
	sink := progress.OrNoop(b.Progress)

	timeline := BuildTimeline(p.Operator, p.Caller)
	log.Debug("timeline built", logger.Fields(
		logger.FieldSlots, timeline.Len(),
		logger.FieldSegments, len(p.Operator)+len(p.Caller),
	))

	operatorTier, err := buildTier(TierOperator, "o", p.Operator, timeline, sink)
	if err != nil {
		return nil, err
	}
	callerTier, err := buildTier(TierCaller, "c", p.Caller, timeline, sink)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Author:         "",
		Date:           b.clock()().Format(time.RFC3339),
		Format:         FormatVersion,
		Version:        FormatVersion,
		XSINamespace:   xsiNamespace,
		SchemaLocation: SchemaLocation,
		Header: Header{
			MediaFile: "",
			TimeUnits: "milliseconds",
			MediaDescriptor: MediaDescriptor{
				MimeType:         "audio/x-wav",
				MediaURL:         media.MediaURL,
				RelativeMediaURL: media.RelativeMediaURL,
			},
			Property: Property{
				Name:  "URN",
				Value: fmt.Sprintf("urn:nl-mpi-tools-elan-eaf:%s", b.idGen()()),
			},
		},
		TimeOrder: TimeOrder{Slots: timeline.Slots()},
		Tiers:     []Tier{operatorTier, callerTier},
		LinguisticTypes: []LinguisticType{{
			GraphicReferences: "false",
			ID:                LinguisticTypeID,
			TimeAlignable:     "true",
		}},
		Constraints: defaultConstraints,
	}

	log.Info("document assembled", logger.Fields(
		logger.FieldSlots, timeline.Len(),
		logger.FieldAnnotations, len(operatorTier.Annotations)+len(callerTier.Annotations),
	))
	return doc, nil
}

// buildTier emits one annotation per segment in original order, with
// 1-based IDs using the tier's letter prefix.
func buildTier(tierID, prefix string, segments []diarization.Segment, tl *Timeline, sink progress.Sink) (Tier, error) {
	tier := Tier{
		LinguisticTypeRef: LinguisticTypeID,
		TierID:            tierID,
		Annotations:       make([]Annotation, 0, len(segments)),
	}

	sink.Start(len(segments), fmt.Sprintf("creating %s annotations", tierID))
	for i, seg := range segments {
		startRef, err := tl.Ref(seg.Start)
		if err != nil {
			return Tier{}, err
		}
		endRef, err := tl.Ref(seg.End)
		if err != nil {
			return Tier{}, err
		}
		tier.Annotations = append(tier.Annotations, Annotation{
			Alignable: AlignableAnnotation{
				ID:       fmt.Sprintf("%s%d", prefix, i+1),
				StartRef: startRef,
				EndRef:   endRef,
			},
		})
		sink.Advance(1)
	}
	sink.Done()

	return tier, nil
}

func (b *Builder) clock() func() time.Time {
	if b.Now != nil {
		return b.Now
	}
	return time.Now
}

func (b *Builder) idGen() func() string {
	if b.NewID != nil {
		return b.NewID
	}
	return uuid.NewString
}
