package domain

// Domain is the top-level creative area a request or catalog element belongs to.
type Domain string

const (
	DomainPortrait Domain = "portrait"
	DomainArt      Domain = "art"
	DomainDesign   Domain = "design"
	DomainProduct  Domain = "product"
	DomainVideo    Domain = "video"
	DomainCommon   Domain = "common"

	// DomainAuto asks the intent extractor to infer the domain from text.
	DomainAuto Domain = "auto"
)

// DetectableDomains is the fixed enumeration order used by domain detection.
// Ties in the keyword vote resolve to the earliest entry.
var DetectableDomains = []Domain{
	DomainPortrait,
	DomainArt,
	DomainDesign,
	DomainProduct,
	DomainVideo,
}

// ValidDomains is the canonical set of catalog domain strings.
var ValidDomains = map[string]bool{
	"portrait": true, "art": true, "design": true,
	"product": true, "video": true, "common": true,
}

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ComposeMode controls how much the composer adds beyond the chosen elements.
type ComposeMode string

const (
	ModeSimple   ComposeMode = "simple"
	ModeAuto     ComposeMode = "auto"
	ModeDetailed ComposeMode = "detailed"
)

// ParseComposeMode maps a user-supplied mode string to a ComposeMode.
// Unrecognised values fall back to auto.
func ParseComposeMode(s string) ComposeMode {
	switch ComposeMode(s) {
	case ModeSimple, ModeDetailed:
		return ComposeMode(s)
	default:
		return ModeAuto
	}
}

// AppendsQualityTags reports whether the mode adds the quality-tag suffix.
func (m ComposeMode) AppendsQualityTags() bool {
	return m == ModeAuto || m == ModeDetailed
}
