package env

import (
	"EnvFileGenerator/internal/envutil"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// readOptional returns the content of path. found is false when the file
// does not exist; any other failure is a ReadError.
func readOptional(path string) (data []byte, found bool, err error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, false, &ReadError{Path: path, Err: errIsDirectory}
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, false, &ReadError{Path: path, Err: err}
	}
	return data, true, nil
}

// LoadEnvFile parses an existing env file. A missing file yields an empty mapping.
func LoadEnvFile(path string) (*envutil.Mapping, error) {
	data, found, err := readOptional(path)
	if err != nil || !found {
		return envutil.NewMapping(), err
	}
	return envutil.Parse(string(data)), nil
}

// LoadYAMLFile parses a placeholder YAML file. A missing file yields an empty mapping.
func LoadYAMLFile(path string) (*envutil.Mapping, error) {
	data, found, err := readOptional(path)
	if err != nil || !found {
		return envutil.NewMapping(), err
	}

	m, err := ParseYAML(data)
	if err != nil {
		return envutil.NewMapping(), &ReadError{Path: path, Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	return m, nil
}

// ParseYAML reads a flat YAML mapping of placeholder names to scalars.
//
// Only string and integer keys are kept, and only scalar values; nested
// sequences and mappings are dropped. null values become "". A document
// that is empty or not a mapping yields an empty result.
func ParseYAML(data []byte) (*envutil.Mapping, error) {
	m := envutil.NewMapping()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return m, nil
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return m, nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		value := resolveAlias(root.Content[i+1])

		if key.Kind != yaml.ScalarNode {
			continue
		}
		switch key.ShortTag() {
		case "!!str", "!!int":
		default:
			continue
		}

		if value.Kind != yaml.ScalarNode {
			continue
		}
		if value.ShortTag() == "!!null" {
			m.Set(key.Value, "")
			continue
		}
		m.Set(key.Value, value.Value)
	}
	return m, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
