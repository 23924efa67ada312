package eaf

import "encoding/xml"

const (
	// SchemaLocation is the EAF 3.0 schema URI.
	SchemaLocation = "http://www.mpi.nl/tools/elan/EAFv3.0.xsd"
	// FormatVersion is the EAF document format and version.
	FormatVersion = "3.0"

	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// LinguisticTypeID is the single linguistic type referenced by both tiers.
	LinguisticTypeID = "default-lt"

	// TierOperator and TierCaller are the two fixed tier IDs.
	TierOperator = "Operator"
	TierCaller   = "Caller"
)

// Document is the root ANNOTATION_DOCUMENT aggregate.
type Document struct {
	XMLName        xml.Name `xml:"ANNOTATION_DOCUMENT"`
	Author         string   `xml:"AUTHOR,attr"`
	Date           string   `xml:"DATE,attr"`
	Format         string   `xml:"FORMAT,attr"`
	Version        string   `xml:"VERSION,attr"`
	XSINamespace   string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:noNamespaceSchemaLocation,attr"`

	Header          Header           `xml:"HEADER"`
	TimeOrder       TimeOrder        `xml:"TIME_ORDER"`
	Tiers           []Tier           `xml:"TIER"`
	LinguisticTypes []LinguisticType `xml:"LINGUISTIC_TYPE"`
	Constraints     []Constraint     `xml:"CONSTRAINT"`
}

// Header carries media linkage metadata and the document URN property.
type Header struct {
	MediaFile       string          `xml:"MEDIA_FILE,attr"`
	TimeUnits       string          `xml:"TIME_UNITS,attr"`
	MediaDescriptor MediaDescriptor `xml:"MEDIA_DESCRIPTOR"`
	Property        Property        `xml:"PROPERTY"`
}

// MediaDescriptor links the document to its companion audio file.
// Both URL attributes are empty when the file was absent at build time.
type MediaDescriptor struct {
	MimeType         string `xml:"MIME_TYPE,attr"`
	MediaURL         string `xml:"MEDIA_URL,attr"`
	RelativeMediaURL string `xml:"RELATIVE_MEDIA_URL,attr"`
}

// Property is a named header property; here used for the document URN.
type Property struct {
	Name  string `xml:"NAME,attr"`
	Value string `xml:",chardata"`
}

// TimeOrder is the shared, deduplicated time-slot table.
type TimeOrder struct {
	Slots []TimeSlot `xml:"TIME_SLOT"`
}

// TimeSlot is a unique point on the document timeline.
type TimeSlot struct {
	// ID is "ts<n>", 1-based in ascending time order.
	ID string `xml:"TIME_SLOT_ID,attr"`
	// ValueMillis is the timestamp truncated to integer milliseconds.
	ValueMillis int64 `xml:"TIME_VALUE,attr"`
}

// Tier is one named track of annotations.
type Tier struct {
	LinguisticTypeRef string       `xml:"LINGUISTIC_TYPE_REF,attr"`
	TierID            string       `xml:"TIER_ID,attr"`
	Annotations       []Annotation `xml:"ANNOTATION"`
}

// Annotation wraps a single alignable annotation.
type Annotation struct {
	Alignable AlignableAnnotation `xml:"ALIGNABLE_ANNOTATION"`
}

// AlignableAnnotation is an interval bound to two time slots.
type AlignableAnnotation struct {
	ID       string `xml:"ANNOTATION_ID,attr"`
	StartRef string `xml:"TIME_SLOT_REF1,attr"`
	EndRef   string `xml:"TIME_SLOT_REF2,attr"`
}

// LinguisticType describes how annotations on a tier behave.
type LinguisticType struct {
	GraphicReferences string `xml:"GRAPHIC_REFERENCES,attr"`
	ID                string `xml:"LINGUISTIC_TYPE_ID,attr"`
	TimeAlignable     string `xml:"TIME_ALIGNABLE,attr"`
}

// Constraint is one of the four fixed EAF stereotype descriptors.
type Constraint struct {
	Description string `xml:"DESCRIPTION,attr"`
	Stereotype  string `xml:"STEREOTYPE,attr"`
}

// defaultConstraints is the fixed EAF constraint vocabulary, reproduced
// verbatim from the format specification.
var defaultConstraints = []Constraint{
	{
		Stereotype:  "Time_Subdivision",
		Description: "Time subdivision of parent annotation's time interval, no time gaps allowed within this interval",
	},
	{
		Stereotype:  "Symbolic_Subdivision",
		Description: "Symbolic subdivision of a parent annotation. Annotations refering to the same parent are ordered",
	},
	{
		Stereotype:  "Symbolic_Association",
		Description: "1-1 association with a parent annotation",
	},
	{
		Stereotype:  "Included_In",
		Description: "Time alignable annotations within the parent annotation's time interval, gaps are allowed",
	},
}
