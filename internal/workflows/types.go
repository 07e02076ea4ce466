package workflows

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CallableTrigger is the trigger kind that makes a workflow reusable.
const CallableTrigger = "workflow_call"

// NoDescription is used when a workflow file carries no leading comment.
const NoDescription = "No description provided."

// Parameter types accepted by workflow_call inputs.
const (
	TypeString      = "string"
	TypeNumber      = "number"
	TypeBoolean     = "boolean"
	TypeChoice      = "choice"
	TypeEnvironment = "environment"
)

// Record is the documented interface of one workflow file.
//
// A Record is built once by Parse and treated as read-only afterwards;
// renderers only read it.
type Record struct {
	Name        string // Display name
	Description string // Leading comment text or NoDescription
	FilePath    string // Slash-separated path relative to the repository root
	FileName    string // Base name including extension
	Inputs      Params
	Outputs     Params
	Secrets     Params
	IsReusable  bool
}

// ParamSpec describes a single input, output or secret.
type ParamSpec struct {
	Description string   `yaml:"description,omitempty"`
	Required    bool     `yaml:"required,omitempty"`
	Type        string   `yaml:"type,omitempty"`
	Default     *string  `yaml:"default,omitempty"`
	Options     []string `yaml:"options,omitempty"`
	Value       string   `yaml:"value,omitempty"` // outputs only
}

// Param is a named ParamSpec.
type Param struct {
	Name string
	Spec ParamSpec
}

// Params is an ordered parameter mapping. Order follows the source file.
type Params []Param

// Names returns parameter names in declaration order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}

// Get looks up a parameter by name.
func (p Params) Get(name string) (ParamSpec, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Spec, true
		}
	}
	return ParamSpec{}, false
}

// document is the subset of the workflow schema actiondoc reads.
type document struct {
	Name *string   `yaml:"name"`
	On   yaml.Node `yaml:"on"`
}

// callable is the workflow_call trigger body.
type callable struct {
	Inputs  yaml.Node `yaml:"inputs"`
	Outputs yaml.Node `yaml:"outputs"`
	Secrets yaml.Node `yaml:"secrets"`
}

// decodeSpec reads the known keys of a parameter body as scalar text.
// Unknown keys and non-scalar values are ignored; a body never fails to decode.
func decodeSpec(node *yaml.Node) ParamSpec {
	var spec ParamSpec
	if node.Kind != yaml.MappingNode {
		return spec
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, resolveAlias(node.Content[i+1])
		switch key {
		case "description":
			spec.Description = scalar(val)
		case "required":
			spec.Required = strings.EqualFold(strings.TrimSpace(scalar(val)), "true")
		case "type":
			spec.Type = scalar(val)
		case "default":
			if val.Kind == yaml.ScalarNode && val.Tag != "!!null" {
				d := val.Value
				spec.Default = &d
			}
		case "options":
			if val.Kind == yaml.SequenceNode {
				for _, item := range val.Content {
					if item = resolveAlias(item); item.Kind == yaml.ScalarNode {
						spec.Options = append(spec.Options, item.Value)
					}
				}
			}
		case "value":
			spec.Value = scalar(val)
		}
	}
	return spec
}

func scalar(node *yaml.Node) string {
	if node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}

// decodeParams reads a mapping node into ordered Params.
func decodeParams(node *yaml.Node) (Params, error) {
	node = resolveAlias(node)
	if isEmpty(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	params := make(Params, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], resolveAlias(node.Content[i+1])
		if seen[key.Value] {
			return nil, fmt.Errorf("line %d: duplicate parameter %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		params = append(params, Param{Name: key.Value, Spec: decodeSpec(val)})
	}
	return params, nil
}

// findCallable locates the workflow_call trigger in an "on" node.
// The trigger section may be a scalar, a sequence or a mapping.
func findCallable(on *yaml.Node) (*yaml.Node, bool) {
	on = resolveAlias(on)
	switch on.Kind {
	case yaml.ScalarNode:
		return nil, on.Value == CallableTrigger
	case yaml.SequenceNode:
		for _, item := range on.Content {
			if item = resolveAlias(item); item.Kind == yaml.ScalarNode && item.Value == CallableTrigger {
				return nil, true
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(on.Content); i += 2 {
			if on.Content[i].Value == CallableTrigger {
				return resolveAlias(on.Content[i+1]), true
			}
		}
	}
	return nil, false
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isEmpty(node *yaml.Node) bool {
	return node == nil || node.Kind == 0 ||
		(node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}
