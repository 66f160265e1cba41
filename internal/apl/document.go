package apl

func boolPtr(b bool) *bool { return &b }

// NewDocument returns the full-viewport scrollable layout with one row of
// three stacked text fields.
func NewDocument() Document {
	return Document{
		Type:    DocumentType,
		Version: DocumentVersion,
		Theme:   DocumentTheme,
		MainTemplate: MainTemplate{
			Parameters: []string{PayloadName},
			Items: []Component{
				{
					Type:   "Container",
					Width:  "100vw",
					Height: "100vh",
					Items: []Component{
						{
							Type:              "Sequence",
							Width:             "100%",
							Height:            "100%",
							Data:              "${" + PayloadName + "." + SequenceDataKey + "}",
							Numbered:          boolPtr(false),
							ScrollDirection:   "vertical",
							BackgroundVisible: boolPtr(false),
							Items: []Component{
								{
									Type:              "Text",
									ID:                "titleText",
									Width:             "100vw",
									PaddingTop:        "40dp",
									PaddingBottom:     "20dp",
									TextAlign:         "center",
									TextAlignVertical: "center",
									FontSize:          "24dp",
									FontWeight:        "bold",
									Text:              "${data.titleText}",
								},
								{
									Type:          "Text",
									ID:            "primaryText",
									Width:         "100vw",
									PaddingLeft:   "15dp",
									PaddingRight:  "15dp",
									PaddingBottom: "20dp",
									TextAlign:     "left",
									FontSize:      "20dp",
									Text:          "${data.primaryText}",
								},
								{
									Type:         "Text",
									ID:           "secondaryText",
									Width:        "100vw",
									PaddingLeft:  "15dp",
									PaddingRight: "15dp",
									TextAlign:    "left",
									FontSize:     "20dp",
									Text:         "${data.secondaryText}",
								},
							},
						},
					},
				},
			},
		},
	}
}

// NewDatasources binds c as the single sequence row.
func NewDatasources(c Content) Datasources {
	return Datasources{
		PayloadName: {
			SequenceDataKey: {
				{
					TitleText:     c.Title,
					PrimaryText:   c.Primary,
					SecondaryText: c.Secondary,
				},
			},
		},
	}
}
