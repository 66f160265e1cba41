package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Fallback reasons
const (
	ReasonUnknownIntent = "unrecognized intent, routed to fallback"
	ReasonMissingIntent = "intent request without intent, routed to fallback"
	ReasonEmptyQuery    = "query slot empty, routed to fallback"
)
