package models

// AboutContentID is the fixed id of the singleton about-page record.
const AboutContentID = "main-about-content"

// Achievement is one highlighted accomplishment on the about page.
// IconName is a lookup key into the icons table; unknown names render
// with the default icon rather than failing.
type Achievement struct {
	ID       string `json:"id"`
	IconName string `json:"icon_name"`
	Text     string `json:"text"`
}

// AboutContent is the singleton record backing the about page.
type AboutContent struct {
	ID           string        `json:"id"`
	MainText     string        `json:"main_text"`
	ImageURL     string        `json:"image_url,omitempty"`
	ImageHint    string        `json:"image_hint,omitempty"`
	Achievements []Achievement `json:"achievements"`
}
