package relevance

// FilterMonitor provides hooks to observe paragraph filtering.
// Implement this interface to trace why paragraphs were kept or dropped.
type FilterMonitor interface {
	Start(kw *Keywords)
	ParagraphTooShort(text string)
	ParagraphEvaluated(result MatchResult)
	Finish(result Result)
}

// noopMonitor is a no-op implementation of FilterMonitor
type noopMonitor struct{}

var _ FilterMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *Keywords)                {}
func (n *noopMonitor) ParagraphTooShort(_ string)       {}
func (n *noopMonitor) ParagraphEvaluated(_ MatchResult) {}
func (n *noopMonitor) Finish(_ Result)                  {}
