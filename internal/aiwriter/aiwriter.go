package aiwriter

// Source tags which execution path produced a Result, so callers and tests
// can tell an external rewrite from the local fallback without reading logs.
type Source string

const (
	// SourceOpenAI marks results produced by the external capability.
	SourceOpenAI Source = "openai"
	// SourceFallback marks results produced by the local transformation.
	SourceFallback Source = "fallback"
)

// Request carries the per-call rewrite parameters.
type Request struct {
	TargetRole         string
	Language           string
	JobDescriptionText string
}

// Result is the rewrite outcome. Optimize always returns a usable Result;
// there is no error path visible to callers.
type Result struct {
	OptimizedDescription string   `json:"optimizedDescription"`
	SuggestedBullets     []string `json:"suggestedBullets"`
	Source               Source   `json:"-"`
}

// Config selects the external rewrite capability. An empty APIKey disables
// the external path entirely; the adapter never reads ambient configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}
