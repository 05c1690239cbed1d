package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/jokarl/owbrules/internal/label"
)

// Categories are the slug prefixes exposed to configuration expressions as
// category.<name>
var Categories = map[string]string{
	"characters":     "characters",
	"command_groups": "command-groups",
	"magic":          "magic",
	"shooting_phase": "the-shooting-phase",
	"special_rules":  "special-rules",
	"weapons_of_war": "weapons-of-war",
}

// SlugFunc converts a label to a slug segment, e.g. slug("Great Weapon")
var SlugFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "label", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		return cty.StringVal(label.Slug(args[0].AsString())), nil
	},
})

// evalContext returns the variables and functions available to expressions
func evalContext() *hcl.EvalContext {
	categories := make(map[string]cty.Value, len(Categories))
	for k, v := range Categories {
		categories[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"category": cty.ObjectVal(categories),
		},
		Functions: map[string]function.Function{
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"lower":     stdlib.LowerFunc,
			"replace":   stdlib.ReplaceFunc,
			"slug":      SlugFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"upper":     stdlib.UpperFunc,
		},
	}
}
