package apl

// Content is what a response shows on a screen: a title and two text blocks.
type Content struct {
	Title     string
	Primary   string
	Secondary string
}

// Document is an APL document.
type Document struct {
	Type         string       `json:"type"`
	Version      string       `json:"version"`
	Theme        string       `json:"theme"`
	MainTemplate MainTemplate `json:"mainTemplate"`
}

// MainTemplate is the document's root layout.
type MainTemplate struct {
	Parameters []string    `json:"parameters"`
	Items      []Component `json:"items"`
}

// Component is an APL component. Only the properties used by the skill's
// layout are modelled.
type Component struct {
	Type              string      `json:"type"`
	ID                string      `json:"id,omitempty"`
	Width             string      `json:"width,omitempty"`
	Height            string      `json:"height,omitempty"`
	Data              string      `json:"data,omitempty"`
	Numbered          *bool       `json:"numbered,omitempty"`
	ScrollDirection   string      `json:"scrollDirection,omitempty"`
	BackgroundVisible *bool       `json:"backgroundVisible,omitempty"`
	PaddingTop        string      `json:"paddingTop,omitempty"`
	PaddingBottom     string      `json:"paddingBottom,omitempty"`
	PaddingLeft       string      `json:"paddingLeft,omitempty"`
	PaddingRight      string      `json:"paddingRight,omitempty"`
	TextAlign         string      `json:"textAlign,omitempty"`
	TextAlignVertical string      `json:"textAlignVertical,omitempty"`
	FontSize          string      `json:"fontSize,omitempty"`
	FontWeight        string      `json:"fontWeight,omitempty"`
	Text              string      `json:"text,omitempty"`
	Items             []Component `json:"items,omitempty"`
}

// SequenceItem is one row of the datasource.
type SequenceItem struct {
	TitleText     string `json:"titleText"`
	PrimaryText   string `json:"primaryText"`
	SecondaryText string `json:"secondaryText"`
}

// Datasources binds the row list to PayloadName.
type Datasources map[string]map[string][]SequenceItem
