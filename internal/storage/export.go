package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/mapty/internal/models"
)

// Dump is the TOML export layout: one [[workout]] table per record.
type Dump struct {
	Workouts []models.Record `toml:"workout"`
}

// ExportToTOML writes the records to outputPath as a TOML dump.
func ExportToTOML(records []models.Record, outputPath string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(Dump{Workouts: records}); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// ImportFromTOML reads a dump written by ExportToTOML.
func ImportFromTOML(filePath string) ([]models.Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dump Dump
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}
	return dump.Workouts, nil
}
