package apl

// Document constants. The layout is fixed; only the bound data changes.
const (
	DocumentType    = "APL"
	DocumentVersion = "1.5"
	DocumentTheme   = "dark"
	DirectiveToken  = "chatgptToken"

	// PayloadName is the mainTemplate parameter the datasource binds to.
	PayloadName = "payload"
	// SequenceDataKey holds the single row rendered by the Sequence.
	SequenceDataKey = "sequenceData"
)

// Log prefixes
const (
	LogPrefixSupportsVisual = "internal.apl.SupportsVisual"
	LogPrefixBuildVisual    = "internal.apl.BuildVisual"
)
