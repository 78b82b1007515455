package search

import (
	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterFilterExtraction(filter *core.QueryFilter)
	AfterVectorSearch(candidates []*storage.Candidate)
	CandidateDropped(title string, storedLevels []string)
	Finish(results []*core.MatchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                            {}
func (n *noopMonitor) AfterFilterExtraction(_ *core.QueryFilter) {}
func (n *noopMonitor) AfterVectorSearch(_ []*storage.Candidate)  {}
func (n *noopMonitor) CandidateDropped(_ string, _ []string)     {}
func (n *noopMonitor) Finish(_ []*core.MatchResult)              {}
