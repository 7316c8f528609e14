package domain

// Disclaimer must be surfaced verbatim alongside every advisory response
// and every pest-identification output.
const Disclaimer = "Verify recommendations with local agricultural experts before application."

// AdvisoryRule maps a keyword set to a curated answer with references.
// Keywords match via substring containment against the lowercased query
// text; multi-word keywords ("minimum support price") match as one literal
// substring. Rule table order is the tie-break and must be preserved.
type AdvisoryRule struct {
	Keywords []string
	Answer   string
	Sources  []string
}

// Query is a free-text farmer question.
type Query struct {
	Text     string
	Language string // language tag, default "en"; echoed, never acted on
	Location string // optional, triggers the local-office follow-up
}

// Response is the advisory answer returned for a query. Disclaimer always
// carries the fixed constant.
type Response struct {
	Answer     string
	Sources    []string
	Language   string
	Disclaimer string
}
