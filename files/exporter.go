package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sber/domain"
)

type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

func ExportTransactions(txs []domain.Transaction, path string, enc Encoder) error {
	b, err := enc.EncodeRows(FromTransactions(txs))
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// EncoderFor and ImportFile pick the format by file extension.
func EncoderFor(path string) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSVEncoder{}, nil
	case ".json":
		return JSONEncoder{}, nil
	case ".yaml", ".yml":
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

func ImportFile(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ImportTransactionsCSV(path)
	case ".json":
		return ImportTransactionsJSON(path)
	case ".yaml", ".yml":
		return ImportTransactionsYAML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}
