package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrDataset marks every startup failure caused by the training data.
	ErrDataset          = fmt.Errorf("dataset error")
	ErrEmptyDataset     = fmt.Errorf("%w: no training examples", ErrDataset)
	ErrMalformedDataset = fmt.Errorf("%w: malformed row", ErrDataset)
	ErrEmptyVocabulary  = fmt.Errorf("%w: no tokens found in training texts", ErrDataset)
	ErrNoLabels         = fmt.Errorf("%w: no labels found", ErrDataset)

	ErrInvalidInput = fmt.Errorf("invalid input: text must not be blank")
	ErrTextTooLong  = fmt.Errorf("invalid input: text too long")
	ErrNotReady     = fmt.Errorf("prediction engine has no trained model")

	ErrSpecialistUnavailable = fmt.Errorf("sentiment specialist unavailable")
)
