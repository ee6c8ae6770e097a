package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/kjourdan1/fsdist/internal/distributor"
)

// Save writes cfg to path, as HCL when path has an .hcl extension and as
// YAML otherwise.
func Save(cfg distributor.Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var (
		data []byte
		err  error
	)
	if IsHCL(path) {
		data, err = MarshalHCL(cfg)
	} else {
		data, err = yaml.Marshal(map[string]interface{}(cfg))
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// MarshalHCL renders cfg as top-level HCL attributes in key order.
func MarshalHCL(cfg distributor.Config) ([]byte, error) {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, k := range keys {
		v, err := goToCty(cfg[k])
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		body.SetAttributeValue(k, v)
	}
	return f.Bytes(), nil
}

func goToCty(v interface{}) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(val), nil
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []string:
		elems := make([]cty.Value, len(val))
		for i, s := range val {
			elems[i] = cty.StringVal(s)
		}
		return cty.TupleVal(elems), nil
	case []interface{}:
		elems := make([]cty.Value, len(val))
		for i, e := range val {
			cv, err := goToCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = cv
		}
		return cty.TupleVal(elems), nil
	case map[string]interface{}:
		attrs := make(map[string]cty.Value, len(val))
		for k, e := range val {
			cv, err := goToCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}
