package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"url-classifier/database"
	"url-classifier/models"
)

type format int

const (
	formatJSON format = iota
	formatSQLite
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return formatSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func requireSQLite(path string) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	if f != formatSQLite {
		return fmt.Errorf("%w: %s is not a SQLite path", ErrUnsupportedFormat, path)
	}
	return nil
}

// LoadVectorizer reads a vectorizer artifact from a JSON export or a SQLite
// artifact store, chosen by file extension.
func LoadVectorizer(path string) (*Vectorizer, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	var a VectorizerArtifact
	switch f {
	case formatJSON:
		if err := readJSON(path, &a); err != nil {
			return nil, fmt.Errorf("load vectorizer: %w", err)
		}
	case formatSQLite:
		a, err = readVectorizerSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("load vectorizer: %w", err)
		}
	}

	v, err := NewVectorizer(a)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer %s: %w", path, err)
	}
	return v, nil
}

// LoadModel reads a logistic regression artifact.
func LoadModel(path string) (*Model, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	var a ModelArtifact
	switch f {
	case formatJSON:
		if err := readJSON(path, &a); err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
	case formatSQLite:
		a, err = readModelSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
	}

	m, err := NewModel(a)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptArtifact, path, err)
	}
	return nil
}

func readVectorizerSQLite(path string) (VectorizerArtifact, error) {
	var a VectorizerArtifact

	db, err := database.Open(path)
	if err != nil {
		return a, err
	}
	defer database.Close(db)

	params, terms, err := database.ReadVectorizer(db)
	if err != nil {
		return a, fmt.Errorf("%w: %w", ErrCorruptArtifact, err)
	}

	a.Vocabulary = make(map[string]int, len(terms))
	for _, t := range terms {
		a.Vocabulary[t.Term] = t.FeatureIndex
	}
	a.Analyzer = params.Analyzer
	lowercase := params.Lowercase
	a.Lowercase = &lowercase
	a.Binary = params.Binary
	a.TokenPattern = params.TokenPattern
	if params.NgramMin != 0 || params.NgramMax != 0 {
		a.NgramRange = []int{params.NgramMin, params.NgramMax}
	}
	if params.StopWords != "" {
		a.StopWords, err = json.Marshal(strings.Split(params.StopWords, "\n"))
		if err != nil {
			return a, err
		}
	}
	return a, nil
}

func readModelSQLite(path string) (ModelArtifact, error) {
	var a ModelArtifact

	db, err := database.Open(path)
	if err != nil {
		return a, err
	}
	defer database.Close(db)

	params, coefs, err := database.ReadModel(db)
	if err != nil {
		return a, fmt.Errorf("%w: %w", ErrCorruptArtifact, err)
	}

	row := make([]float64, len(coefs))
	for i, c := range coefs {
		if c.FeatureIndex != i {
			return a, fmt.Errorf("%w: coefficient for feature %d missing", ErrCorruptArtifact, i)
		}
		row[i] = c.Weight
	}
	a.Coef = [][]float64{row}
	a.Intercept = []float64{params.Intercept}
	a.Classes = []ClassLabel{ClassLabel(params.NegativeClass), ClassLabel(params.PositiveClass)}
	return a, nil
}

// SaveVectorizerSQLite writes v into the artifact store at path.
func SaveVectorizerSQLite(path string, v *Vectorizer) error {
	if err := requireSQLite(path); err != nil {
		return err
	}
	db, err := database.Create(path)
	if err != nil {
		return err
	}
	defer database.Close(db)

	a := v.Artifact()
	terms := make([]models.VocabularyTerm, 0, len(a.Vocabulary))
	for i, name := range v.FeatureNames() {
		terms = append(terms, models.VocabularyTerm{Term: name, FeatureIndex: i})
	}
	params := models.VectorizerParams{
		Analyzer:     a.Analyzer,
		Lowercase:    *a.Lowercase,
		Binary:       a.Binary,
		TokenPattern: a.TokenPattern,
		NgramMin:     1,
		NgramMax:     1,
		StopWords:    strings.Join(v.StopWords(), "\n"),
	}
	if err := database.WriteVectorizer(db, params, terms); err != nil {
		return fmt.Errorf("save vectorizer %s: %w", path, err)
	}
	return nil
}

// SaveModelSQLite writes m into the artifact store at path.
func SaveModelSQLite(path string, m *Model) error {
	if err := requireSQLite(path); err != nil {
		return err
	}
	db, err := database.Create(path)
	if err != nil {
		return err
	}
	defer database.Close(db)

	coefs := make([]models.Coefficient, 0, len(m.coef))
	for i, w := range m.coef {
		coefs = append(coefs, models.Coefficient{FeatureIndex: i, Weight: w})
	}
	params := models.ModelParams{
		Intercept:     m.intercept,
		NegativeClass: m.classes[0],
		PositiveClass: m.classes[1],
	}
	if err := database.WriteModel(db, params, coefs); err != nil {
		return fmt.Errorf("save model %s: %w", path, err)
	}
	return nil
}
