package domain

// Intent is the structured interpretation of one free-text request.
// Which sections are populated depends on Domain.
type Intent struct {
	Domain     Domain `json:"domain"`
	RawRequest string `json:"raw_request"`

	// Portrait.
	Subject   *SubjectIntent   `json:"subject,omitempty"`
	Scene     *SceneIntent     `json:"scene,omitempty"`
	Styling   *StylingIntent   `json:"styling,omitempty"`
	Lighting  *LightingIntent  `json:"lighting,omitempty"`
	Technical *TechnicalIntent `json:"technical,omitempty"`

	// Art.
	ArtType     string `json:"art_type,omitempty"`
	SubjectType string `json:"subject_type,omitempty"`

	// Design.
	DesignType string `json:"design_type,omitempty"`

	// Product.
	ProductStyle string `json:"product_style,omitempty"`
}

type SubjectIntent struct {
	Gender    string `json:"gender"`
	Ethnicity string `json:"ethnicity"`
	AgeRange  string `json:"age_range"`
}

type SceneIntent struct {
	Era           string `json:"era"`
	DirectorStyle string `json:"director_style,omitempty"`
}

type StylingIntent struct {
	Clothing  string `json:"clothing"`
	Hairstyle string `json:"hairstyle"`
	Makeup    string `json:"makeup"`
}

type LightingIntent struct {
	LightingType string `json:"lighting_type"`
}

type TechnicalIntent struct {
	ArtStyle string `json:"art_style"`
}

// Ethnicity returns the subject ethnicity, or "" when the intent has no subject.
func (i *Intent) Ethnicity() string {
	if i == nil || i.Subject == nil {
		return ""
	}
	return i.Subject.Ethnicity
}

// Era returns the scene era, or "" when the intent has no scene.
func (i *Intent) Era() string {
	if i == nil || i.Scene == nil {
		return ""
	}
	return i.Scene.Era
}
