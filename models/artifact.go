package models

// Rows of a SQLite artifact store. A store may hold the vectorizer, the
// model, or both.

type VocabularyTerm struct {
	Term         string `gorm:"primaryKey"`
	FeatureIndex int    `gorm:"uniqueIndex"`
}

// VectorizerParams holds analyzer settings. StopWords is newline-separated;
// empty means no stop list.
type VectorizerParams struct {
	ID           uint `gorm:"primaryKey"`
	Analyzer     string
	Lowercase    bool
	Binary       bool
	TokenPattern string
	NgramMin     int
	NgramMax     int
	StopWords    string
}

type Coefficient struct {
	FeatureIndex int `gorm:"primaryKey;autoIncrement:false"`
	Weight       float64
}

type ModelParams struct {
	ID            uint `gorm:"primaryKey"`
	Intercept     float64
	NegativeClass string
	PositiveClass string
}
