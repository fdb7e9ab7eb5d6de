package dataset

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sentiment-lab/domain"
	"sentiment-lab/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	header   = []string{"text", "label"}
)

// Load reads the training dataset at path: a comma separated file with a
// "text,label" header followed by one example per row.
// Every failure is reported as errors.ErrDataset.
func Load(path string) ([]domain.TrainingExample, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDataset, err)
	}
	if !isText(mtype) {
		return nil, fmt.Errorf("%w: %s is %s, expected text", errors.ErrDataset, path, mtype.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDataset, err)
	}
	defer f.Close()

	examples, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return examples, nil
}

// Read parses a training dataset from r.
func Read(r io.Reader) ([]domain.TrainingExample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	head, err := reader.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDataset, err)
	}
	for i, name := range header {
		if !strings.EqualFold(cleanCell(head[i]), name) {
			return nil, fmt.Errorf("%w: header must be %q, got %q",
				errors.ErrMalformedDataset, strings.Join(header, ","), strings.Join(head, ","))
		}
	}

	var examples []domain.TrainingExample
	for {
		record, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDataset, err)
		}
		line, _ := reader.FieldPos(0)
		example := domain.TrainingExample{Text: record[0], Label: cleanCell(record[1])}
		if err := validate.Struct(domain.TrainingExample{
			Text:  strings.TrimSpace(example.Text),
			Label: example.Label,
		}); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errors.ErrMalformedDataset, line, err)
		}
		examples = append(examples, example)
	}
	if len(examples) == 0 {
		return nil, errors.ErrEmptyDataset
	}
	return examples, nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func cleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}
