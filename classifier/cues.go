package classifier

import (
	"sort"

	"url-classifier/models"
)

// DefaultTopCues is how many cues a prediction carries.
const DefaultTopCues = 6

// TopCues ranks the stems found in coef by weight: highest first for a GOOD
// prediction, lowest first for BAD. Duplicate stems are kept. Ties keep
// input order.
func TopCues(stems []string, coef map[string]float64, predictedBad bool, k int) []models.Cue {
	cues := make([]models.Cue, 0, len(stems))
	for _, s := range stems {
		if w, ok := coef[s]; ok {
			cues = append(cues, models.Cue{Token: s, Weight: w})
		}
	}

	if predictedBad {
		sort.SliceStable(cues, func(i, j int) bool { return cues[i].Weight < cues[j].Weight })
	} else {
		sort.SliceStable(cues, func(i, j int) bool { return cues[i].Weight > cues[j].Weight })
	}

	if k >= 0 && len(cues) > k {
		cues = cues[:k]
	}
	return cues
}
