package app

import (
	"tableflip.dev/outliner/pkg/glyph"
)

// ReportItem is a node listed in a report. Ancestors of marked nodes are
// listed too, unmarked, so the report reads as an outline.
type ReportItem struct {
	Pos     int
	Level   int
	Heading string
	Marked  bool
	Line    int
}

// ReportSection groups marked nodes under their top level node.
type ReportSection struct {
	Heading string
	Items   []ReportItem
}

// ReportResult summarises the marked nodes of a document.
type ReportResult struct {
	Nodes    int
	Sections []ReportSection
	// Total counts marked nodes.
	Total int
}

// Report lists the marked nodes, grouped by top level section.
func (s *Session) Report() ReportResult {
	o := s.outline
	res := ReportResult{Nodes: o.Len() - 1}

	grouped := make(map[int]map[int]*ReportItem)
	var order []int
	for p := 2; p <= o.Len(); p++ {
		if !glyph.IsMarked(o.Tree(p)) {
			continue
		}
		chain := append(o.Parents(p), p)
		top := chain[0]
		if _, ok := grouped[top]; !ok {
			order = append(order, top)
		}
		for _, q := range chain {
			ensureReportItem(grouped, top, s, q)
		}
		grouped[top][p].Marked = true
		res.Total++
	}

	for _, top := range order {
		items := make([]ReportItem, 0, len(grouped[top]))
		for p := top; p <= o.Len(); p++ {
			if item, ok := grouped[top][p]; ok {
				items = append(items, *item)
			}
		}
		res.Sections = append(res.Sections, ReportSection{Heading: o.Heading(top), Items: items})
	}
	return res
}

func ensureReportItem(grouped map[int]map[int]*ReportItem, top int, s *Session, pos int) *ReportItem {
	bucket, ok := grouped[top]
	if !ok {
		bucket = make(map[int]*ReportItem)
		grouped[top] = bucket
	}
	if item, ok := bucket[pos]; ok {
		return item
	}
	o := s.outline
	item := &ReportItem{Pos: pos, Level: o.Level(pos), Heading: o.Heading(pos), Line: o.Node(pos)}
	bucket[pos] = item
	return item
}
