package layers

// SampleLimit caps how many hits a summary carries. Count still reflects
// every match.
const SampleLimit = 10

// Hit is one matched feature in normalized form.
type Hit struct {
	ID         string                 `json:"id,omitempty"`
	Label      string                 `json:"label,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Summary aggregates the hits of one layer or classification bucket. A
// degraded layer carries the upstream failure text in Error and keeps its
// siblings untouched.
type Summary struct {
	Pretty string `json:"pretty"`
	Source string `json:"source"`
	Count  int    `json:"count"`
	Hits   []Hit  `json:"hits"`
	Error  string `json:"error,omitempty"`
}

// NewSummary creates an empty summary that marshals with an empty hits
// array rather than null.
func NewSummary(pretty, source string) *Summary {
	return &Summary{Pretty: pretty, Source: source, Hits: make([]Hit, 0, SampleLimit)}
}

// Add counts a hit, keeping at most SampleLimit samples.
func (s *Summary) Add(hit Hit) {
	s.Count++
	if len(s.Hits) < SampleLimit {
		s.Hits = append(s.Hits, hit)
	}
}
