package buildspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load читает спеки из одного файла.
//
// Формат определяется расширением: .json, .yaml или .yml.
// Файл может содержать один спек либо список спеков.
func Load(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(path, data)
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadAll читает спеки из нескольких файлов, сохраняя порядок:
// сначала все спеки первого файла, затем второго и так далее.
// Порядок важен — он определяет выбор кандидата при разрешении.
func LoadAll(paths []string) ([]Spec, error) {
	specs := make([]Spec, 0)
	for _, path := range paths {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		specs = append(specs, loaded...)
	}
	return specs, nil
}

func decodeJSON(path string, data []byte) ([]Spec, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var specs []Spec
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		return specs, nil
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return []Spec{spec}, nil
}

func decodeYAML(path string, data []byte) ([]Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	// Пустой файл — пустой набор.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []Spec{}, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var specs []Spec
		if err := root.Decode(&specs); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		return specs, nil
	}

	var spec Spec
	if err := root.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return []Spec{spec}, nil
}
