// ABOUTME: Summary statistics over interaction log entries
// ABOUTME: Distributions ordered by count, then label, for stable output
package auditlog

import "sort"

// LabelCount is one bucket of a distribution.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates a set of log entries.
type Summary struct {
	Total         int          `json:"total"`
	Intents       []LabelCount `json:"intents"`
	Sources       []LabelCount `json:"sources"`
	AvgProcessing float64      `json:"avg_processing"` // seconds
	Sessions      int          `json:"sessions"`
}

// Summarize computes distribution and timing statistics over entries.
func Summarize(entries []Entry) Summary {
	summary := Summary{Total: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	intents := make(map[string]int)
	sources := make(map[string]int)
	sessions := make(map[string]struct{})
	var totalProcessing float64

	for _, entry := range entries {
		intents[string(entry.Intent)]++
		sources[string(entry.Source)]++
		sessions[entry.SessionID] = struct{}{}
		totalProcessing += entry.ProcessingTime
	}

	summary.Intents = toSortedCounts(intents)
	summary.Sources = toSortedCounts(sources)
	summary.AvgProcessing = totalProcessing / float64(len(entries))
	summary.Sessions = len(sessions)

	return summary
}

func toSortedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
