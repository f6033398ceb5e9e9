package config

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed robottelo.properties.sample
var sampleProperties []byte

//go:embed schema.json
var documentSchema []byte

// Sample returns the shipped robottelo.properties.sample template.
func Sample() []byte {
	return sampleProperties
}

// DocumentSchema returns the JSON Schema describing the exported form of
// the effective configuration.
func DocumentSchema() []byte {
	return documentSchema
}

// WriteSample materializes the sample template at path. It refuses to
// overwrite an existing file so an operator's edited configuration is
// never clobbered.
func WriteSample(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("refusing to overwrite existing file: %s", path)
		}
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(sampleProperties); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
