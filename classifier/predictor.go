package classifier

import (
	"fmt"
	"strings"

	"url-classifier/models"
	"url-classifier/textproc"
)

const (
	StatusGood = "good"
	StatusBad  = "bad"

	LabelGood = "GOOD (1)"
	LabelBad  = "BAD (0)"
)

type Options struct {
	// TopCues caps the cue list. Zero means DefaultTopCues.
	TopCues int
	// CheckConsistency rejects a vectorizer and model of different sizes.
	CheckConsistency bool
}

// Features is the featurized form of one input.
type Features struct {
	Tokens []string
	Stems  []string
	Text   string
	Vector SparseVector
}

// Predictor runs the tokenize, stem, vectorize, predict, rank pipeline. It
// is immutable once built and safe for concurrent use.
type Predictor struct {
	stemmer    *textproc.Stemmer
	vectorizer *Vectorizer
	model      *Model
	coefMap    map[string]float64
	topCues    int
}

func NewPredictor(stemmer *textproc.Stemmer, vectorizer *Vectorizer, model *Model, opts Options) (*Predictor, error) {
	if opts.CheckConsistency {
		if err := CheckConsistency(vectorizer, model); err != nil {
			return nil, err
		}
	}

	topCues := opts.TopCues
	if topCues <= 0 {
		topCues = DefaultTopCues
	}

	// Pairs names with weights up to the shorter of the two.
	names := vectorizer.FeatureNames()
	coef := model.Coefficients()
	coefMap := make(map[string]float64, len(names))
	for i, name := range names {
		if i >= len(coef) {
			break
		}
		coefMap[name] = coef[i]
	}

	return &Predictor{
		stemmer:    stemmer,
		vectorizer: vectorizer,
		model:      model,
		coefMap:    coefMap,
		topCues:    topCues,
	}, nil
}

// Load reads both artifacts and builds a Predictor.
func Load(vectorizerPath, modelPath, language string, opts Options) (*Predictor, error) {
	stemmer, err := textproc.NewStemmer(language)
	if err != nil {
		return nil, err
	}
	vectorizer, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	return NewPredictor(stemmer, vectorizer, model, opts)
}

// CheckConsistency verifies that every vocabulary feature has exactly one
// coefficient.
func CheckConsistency(v *Vectorizer, m *Model) error {
	if v.Size() != len(m.coef) {
		return fmt.Errorf("%w: vocabulary has %d terms, model has %d coefficients",
			ErrInconsistentArtifacts, v.Size(), len(m.coef))
	}
	return nil
}

func (p *Predictor) Featurize(raw string) Features {
	tokens := textproc.Tokenize(raw)
	stems := p.stemmer.StemAll(tokens)
	text := strings.Join(stems, " ")
	return Features{
		Tokens: tokens,
		Stems:  stems,
		Text:   text,
		Vector: p.vectorizer.Transform(text),
	}
}

func (p *Predictor) Predict(raw string) models.Prediction {
	f := p.Featurize(raw)

	probGood := p.model.PredictProba(f.Vector)
	probBad := 1.0 - probGood
	isGood := probGood >= 0.5

	pred := models.Prediction{
		URL:      raw,
		ProbGood: probGood,
		ProbBad:  probBad,
		IsGood:   isGood,
		Tokens:   f.Tokens,
		Stems:    f.Stems,
		Cues:     TopCues(f.Stems, p.coefMap, !isGood, p.topCues),
	}
	if isGood {
		pred.Status, pred.Label, pred.Confidence = StatusGood, LabelGood, probGood
	} else {
		pred.Status, pred.Label, pred.Confidence = StatusBad, LabelBad, probBad
	}
	return pred
}

// Weight returns the learned coefficient for a vocabulary term.
func (p *Predictor) Weight(term string) (float64, bool) {
	w, ok := p.coefMap[term]
	return w, ok
}

func (p *Predictor) Info() models.ModelInfo {
	return models.ModelInfo{
		VocabularySize: p.vectorizer.Size(),
		Intercept:      p.model.Intercept(),
		Classes:        p.model.Classes(),
		Language:       p.stemmer.Language(),
		TopCues:        p.topCues,
	}
}

// Percent formats a probability as a percentage with one decimal.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f", p*100)
}
