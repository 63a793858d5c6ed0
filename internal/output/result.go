package output

import "github.com/rpgo/money-mask/pkg/mask"

// Result is one processed input.
type Result struct {
	Input  string  `json:"input" yaml:"input"`
	Masked string  `json:"masked" yaml:"masked"`
	Value  float64 `json:"value" yaml:"value"`
	// Caret is the caret offset in Masked, set only for edit simulations.
	Caret *int `json:"caret,omitempty" yaml:"caret,omitempty"`
}

// Kinds of batch.
const (
	KindFormat   = "format"
	KindUnformat = "unformat"
	KindCaret    = "caret"
)

// Batch groups results produced with one configuration.
type Batch struct {
	Kind    string      `json:"kind" yaml:"kind"`
	Config  mask.Config `json:"config" yaml:"config"`
	Results []Result    `json:"results" yaml:"results"`
}
