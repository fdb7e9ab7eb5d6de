package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sentiment-lab/domain"
	"sentiment-lab/errors"

	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "training_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidDataset(t *testing.T) {
	req := require.New(t)

	// Given a dataset with a BOM, quoted commas and padded labels
	path := writeDataset(t, "\ufefftext,label\n"+
		"ótimo atendimento,Positivo\n"+
		"\"ruim, muito ruim\", Negativo \n")

	// When it is loaded
	examples, err := Load(path)

	// Then texts are kept verbatim and labels are trimmed
	req.NoError(err)
	req.Equal([]domain.TrainingExample{
		{Text: "ótimo atendimento", Label: "Positivo"},
		{Text: "ruim, muito ruim", Label: "Negativo"},
	}, examples)
}

func TestLoad_BundledDataset(t *testing.T) {
	req := require.New(t)

	examples, err := Load(filepath.Join("..", "data", "training_data.csv"))

	req.NoError(err)
	req.NotEmpty(examples)
	req.Equal(domain.TrainingExample{Text: "ótimo atendimento", Label: "Positivo"}, examples[0])
}

func TestLoad_Errors(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"Empty file", "", errors.ErrDataset},
		{"Header only", "text,label\n", errors.ErrEmptyDataset},
		{"Wrong header", "label,text\nmuito bom,Positivo\n", errors.ErrMalformedDataset},
		{"Too many columns", "text,label\nmuito bom,Positivo,extra\n", errors.ErrMalformedDataset},
		{"Too few columns", "text,label\nmuito bom\n", errors.ErrMalformedDataset},
		{"Blank label", "text,label\nmuito bom,  \n", errors.ErrMalformedDataset},
		{"Blank text", "text,label\n   ,Positivo\n", errors.ErrMalformedDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDataset(t, tt.content))
			req.ErrorIs(err, tt.expected)
			req.ErrorIs(err, errors.ErrDataset)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	req := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))

	req.ErrorIs(err, errors.ErrDataset)
}

func TestLoad_BinaryFile(t *testing.T) {
	req := require.New(t)

	// Given a PNG renamed to .csv
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}
	path := filepath.Join(t.TempDir(), "training_data.csv")
	req.NoError(os.WriteFile(path, png, 0o644))

	// Then it is rejected before parsing
	_, err := Load(path)
	req.ErrorIs(err, errors.ErrDataset)
	req.Contains(err.Error(), "image/png")
}

func TestRead_ReportsLine(t *testing.T) {
	req := require.New(t)

	_, err := Read(strings.NewReader("text,label\nmuito bom,Positivo\nmuito ruim,\n"))

	req.ErrorIs(err, errors.ErrMalformedDataset)
	req.Contains(err.Error(), "line 3")
}
