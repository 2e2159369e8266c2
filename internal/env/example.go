package env

import (
	"EnvFileGenerator/internal/constants"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ExampleYAML returns a YAML scaffold with every placeholder set to 'foobar'.
func ExampleYAML() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range Placeholders {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.SingleQuotedStyle, Value: constants.ExamplePlaceholderValue},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteExample writes the YAML scaffold to path. An existing file is only
// replaced when force is set.
func WriteExample(ctx context.Context, path string, force bool) error {
	target, err := RequirePath("example file", path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("%w: '%s'", ErrExampleExists, target)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ReadError{Path: target, Err: err}
	}

	content, err := ExampleYAML()
	if err != nil {
		return err
	}
	return WriteFile(ctx, target, content)
}
