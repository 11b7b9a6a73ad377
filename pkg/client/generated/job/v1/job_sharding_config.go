package client

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/bacalhau-project/bacalhau-apiclient/pkg/schemas/mapper"
	"github.com/pkg/errors"
	"github.com/rancher/norman/types/convert"
	"k8s.io/apimachinery/pkg/api/equality"
)

var jobShardingConfigAliases = mapper.AttributeAlias{
	Aliases: attributeAliases(jobShardingConfigFields),
}

// String renders ToMap as indented JSON. Keys are sorted, so the output only
// depends on the field values.
func (o JobShardingConfig) String() string {
	m := o.ToMap()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(data)
}

// Equal reports whether other is a JobShardingConfig (or a pointer to one)
// with the same field values. Values of any other type are never equal.
func (o *JobShardingConfig) Equal(other interface{}) bool {
	var that *JobShardingConfig
	switch t := other.(type) {
	case JobShardingConfig:
		that = &t
	case *JobShardingConfig:
		that = t
	default:
		return false
	}
	if o == nil || that == nil {
		return o == nil && that == nil
	}
	return equality.Semantic.DeepEqual(o.ToMap(), that.ToMap())
}

func (o *JobShardingConfig) NotEqual(other interface{}) bool {
	return !o.Equal(other)
}

// JobShardingConfigFromMap decodes a mapping keyed by wire names or by
// attribute names. Nil values and unknown keys are ignored.
func JobShardingConfigFromMap(data map[string]interface{}) (*JobShardingConfig, error) {
	values := make(map[string]interface{}, len(data))
	for k, v := range data {
		values[k] = v
	}
	if err := jobShardingConfigAliases.ToInternal(values); err != nil {
		return nil, errors.Wrap(err, "decoding "+JobShardingConfigType)
	}

	o := NewJobShardingConfig()
	for _, field := range jobShardingConfigFields {
		raw, ok := values[field.Key]
		if !ok || raw == nil {
			continue
		}
		switch field.Type {
		case FieldTypeInt:
			n, err := toInt64(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "field %s", field.Key)
			}
			o.setInt(field.Key, n)
		case FieldTypeString:
			s, ok := raw.(string)
			if !ok {
				return nil, errors.Errorf("field %s: expected string, got %T", field.Key, raw)
			}
			o.setString(field.Key, s)
		}
	}
	return o, nil
}

func (o *JobShardingConfig) setInt(key string, v int64) {
	switch key {
	case JobShardingConfigFieldBatchSize:
		o.SetBatchSize(v)
	}
}

func (o *JobShardingConfig) setString(key, v string) {
	switch key {
	case JobShardingConfigFieldGlobPattern:
		o.SetGlobPattern(v)
	case JobShardingConfigFieldGlobPatternBasePath:
		o.SetGlobPatternBasePath(v)
	}
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || v >= 1<<63 || v < -(1<<63) {
			return 0, errors.Errorf("%v is not an integer", v)
		}
		return int64(v), nil
	case string, json.Number:
		n, err := convert.ToNumber(convert.ToString(v))
		if err != nil {
			return 0, errors.Errorf("%q is not an integer", v)
		}
		return n, nil
	default:
		return 0, errors.Errorf("expected integer, got %T", value)
	}
}
