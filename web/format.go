package web

import "strconv"

func formatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', 3, 64)
	if w >= 0 {
		return "+" + s
	}
	return s
}

// weightClass is the CSS class for a cue chip.
func weightClass(w float64) string {
	if w < 0 {
		return "neg"
	}
	return "pos"
}
