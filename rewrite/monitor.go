package rewrite

import "github.com/poiesic/widen/core"

// Monitor provides hooks to observe the expansion pipeline.
// Implement this interface to track intermediate steps during a search.
type Monitor interface {
	Start(term string)
	AfterRewrite(terms []string)
	RewriteDegraded(term string, err error)
	AfterTermSearch(term string, hits []core.Hit)
	Finish(results []core.Hit)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterRewrite(_ []string)             {}
func (n *noopMonitor) RewriteDegraded(_ string, _ error)   {}
func (n *noopMonitor) AfterTermSearch(_ string, _ []core.Hit) {}
func (n *noopMonitor) Finish(_ []core.Hit)                 {}
