package model

import "sort"

// SortBySize sorts totals by size descending, then by path ascending
func SortBySize(totals []Total) {
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Blocks != totals[j].Blocks {
			return totals[i].Blocks > totals[j].Blocks
		}
		return totals[i].Path < totals[j].Path
	})
}
