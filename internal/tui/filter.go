package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type scoredIndex struct {
	index int
	score int
	dist  int
}

// filterIndices returns the indices of labels matching the query as a
// case-insensitive subsequence, best matches first. Levenshtein distance
// breaks score ties so the label closest to what was typed wins.
func filterIndices(labels []string, query string) []int {
	q := strings.TrimSpace(query)
	if q == "" {
		out := make([]int, len(labels))
		for i := range labels {
			out[i] = i
		}
		return out
	}

	scored := make([]scoredIndex, 0, len(labels))
	for i, label := range labels {
		matched, score := fuzzyMatchScore(label, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredIndex{
			index: i,
			score: score,
			dist:  levenshtein.ComputeDistance(strings.ToLower(q), strings.ToLower(label)),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].dist != scored[j].dist {
			return scored[i].dist < scored[j].dist
		}
		return scored[i].index < scored[j].index
	})

	out := make([]int, len(scored))
	for i, row := range scored {
		out[i] = row.index
	}
	return out
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
