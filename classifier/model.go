package classifier

import (
	"encoding/json"
	"fmt"
	"math"
)

// ClassLabel accepts class labels exported as JSON numbers or strings.
type ClassLabel string

func (l *ClassLabel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ClassLabel(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("class label %s: %w", data, err)
	}
	*l = ClassLabel(n.String())
	return nil
}

// ModelArtifact is the exported form of a trained binary logistic
// regression. Coef has one row; Classes[1] is the positive class.
type ModelArtifact struct {
	Coef      [][]float64  `json:"coef"`
	Intercept []float64    `json:"intercept"`
	Classes   []ClassLabel `json:"classes,omitempty"`
}

type Model struct {
	coef      []float64
	intercept float64
	classes   [2]string
}

func NewModel(a ModelArtifact) (*Model, error) {
	if len(a.Coef) != 1 {
		return nil, fmt.Errorf("%w: expected 1 coefficient row, got %d", ErrUnsupportedArtifact, len(a.Coef))
	}
	if len(a.Coef[0]) == 0 {
		return nil, fmt.Errorf("%w: no coefficients", ErrCorruptArtifact)
	}
	if len(a.Intercept) != 1 {
		return nil, fmt.Errorf("%w: expected 1 intercept, got %d", ErrUnsupportedArtifact, len(a.Intercept))
	}

	classes := [2]string{"0", "1"}
	switch len(a.Classes) {
	case 0:
	case 2:
		classes = [2]string{string(a.Classes[0]), string(a.Classes[1])}
	default:
		return nil, fmt.Errorf("%w: binary model expected, got %d classes", ErrUnsupportedArtifact, len(a.Classes))
	}

	for i, w := range a.Coef[0] {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is %v", ErrCorruptArtifact, i, w)
		}
	}

	coef := make([]float64, len(a.Coef[0]))
	copy(coef, a.Coef[0])
	return &Model{coef: coef, intercept: a.Intercept[0], classes: classes}, nil
}

// DecisionFunction returns intercept + coef·x. Features beyond the
// coefficient vector are ignored.
func (m *Model) DecisionFunction(x SparseVector) float64 {
	z := m.intercept
	for _, f := range x {
		if f.Index < 0 || f.Index >= len(m.coef) {
			continue
		}
		z += m.coef[f.Index] * f.Value
	}
	return z
}

// PredictProba returns the probability of the positive (GOOD) class.
func (m *Model) PredictProba(x SparseVector) float64 {
	return sigmoid(m.DecisionFunction(x))
}

func (m *Model) Coefficients() []float64 {
	out := make([]float64, len(m.coef))
	copy(out, m.coef)
	return out
}

func (m *Model) Intercept() float64 {
	return m.intercept
}

func (m *Model) Classes() [2]string {
	return m.classes
}

func (m *Model) Artifact() ModelArtifact {
	return ModelArtifact{
		Coef:      [][]float64{m.Coefficients()},
		Intercept: []float64{m.intercept},
		Classes:   []ClassLabel{ClassLabel(m.classes[0]), ClassLabel(m.classes[1])},
	}
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
