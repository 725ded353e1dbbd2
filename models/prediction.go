package models

// Cue is a stem surfaced as evidence for a prediction.
type Cue struct {
	Token  string  `json:"token"`
	Weight float64 `json:"weight"`
}

type Prediction struct {
	URL        string   `json:"url"`
	ProbGood   float64  `json:"prob_good"`
	ProbBad    float64  `json:"prob_bad"`
	IsGood     bool     `json:"is_good"`
	Status     string   `json:"status"`
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Cues       []Cue    `json:"cues"`
	Tokens     []string `json:"tokens"`
	Stems      []string `json:"stems"`
}

// ClassifyRequest is the body of POST /api/classify.
type ClassifyRequest struct {
	URL string `json:"url"`
}

type ModelInfo struct {
	VocabularySize int       `json:"vocabulary_size"`
	Intercept      float64   `json:"intercept"`
	Classes        [2]string `json:"classes"`
	Language       string    `json:"stemmer_language"`
	TopCues        int       `json:"top_cues"`
	MaxURLLength   int       `json:"max_url_length"`
}
