package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

// Decode reads a YAML or JSON dataset and validates it.
func Decode(r io.Reader) (*chartdata.Dataset, error) {
	var ds chartdata.Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, chartdata.ErrNoData
		}
		return nil, fmt.Errorf("failed decoding dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// decoderFor picks the decoder for a file name. Anything that is not CSV
// is read as YAML, which also covers JSON.
func decoderFor(name string) func(io.Reader) (*chartdata.Dataset, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return DecodeCSV
	}
	return Decode
}

// DecodeFile reads the dataset stored at path.
func DecodeFile(path string) (*chartdata.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed opening dataset: %w", err)
	}
	defer f.Close()
	ds, err := decoderFor(path)(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Encode writes ds as YAML.
func Encode(w io.Writer, ds *chartdata.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("failed encoding dataset: %w", err)
	}
	return enc.Close()
}
