package eaf

import (
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/skillsenselab/eafgen/errors"
	"github.com/skillsenselab/eafgen/logger"
)

// Bytes serializes the document as pretty-printed UTF-8 XML with a
// declaration and trailing newline.
func (d *Document) Bytes() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "    ")
	if err != nil {
		return nil, errors.InternalConsistency("failed to marshal annotation document").WithCause(err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// WriteFile writes the serialized document to path, creating the parent
// directory if needed.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Filesystem("mkdir", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Filesystem("write", path, err)
	}

	logger.WithComponent("eaf-writer").Info("document written", logger.Fields(
		logger.FieldOutput, path,
		"bytes", len(data),
	))
	return nil
}
