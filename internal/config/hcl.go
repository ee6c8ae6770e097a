package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/kjourdan1/fsdist/internal/distributor"
)

// ParseHCL parses HCL source into a distributor configuration. Only
// top-level attributes are allowed and expressions are evaluated without
// variables or functions.
func ParseHCL(data []byte, filename string) (distributor.Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config HCL %s: %w", filename, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading attributes from %s: %w", filename, diags)
	}

	cfg := make(distributor.Config, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %q in %s: %w", name, filename, diags)
		}
		v, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("converting %q in %s: %w", name, filename, err)
		}
		cfg[name] = v
	}
	return cfg, nil
}

// ctyToGo converts an evaluated cty value into plain Go values: string,
// float64, bool, []interface{} and map[string]interface{}.
func ctyToGo(val cty.Value) (interface{}, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if ty.IsPrimitiveType() {
		switch ty {
		case cty.String:
			return val.AsString(), nil
		case cty.Number:
			f, _ := val.AsBigFloat().Float64()
			return f, nil
		case cty.Bool:
			return val.True(), nil
		default:
			return nil, fmt.Errorf("unsupported primitive type: %s", ty.FriendlyName())
		}
	}

	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		out := make([]interface{}, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			gv, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	}

	if ty.IsObjectType() || ty.IsMapType() {
		out := make(map[string]interface{}, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			gv, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = gv
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported type: %s", ty.FriendlyName())
}
