package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the batch as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(batch *Batch) ([]byte, error) {
	return yaml.Marshal(batch)
}
