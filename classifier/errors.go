package classifier

import "errors"

var (
	ErrCorruptArtifact       = errors.New("corrupt artifact")
	ErrUnsupportedArtifact   = errors.New("unsupported artifact")
	ErrUnsupportedFormat     = errors.New("unsupported artifact format")
	ErrInconsistentArtifacts = errors.New("vectorizer and model do not match")
)
