package client

type FieldType string

const (
	FieldTypeInt    FieldType = "int"
	FieldTypeString FieldType = "string"
)

// Field is one row of a model's field table.
type Field struct {
	// Attribute is the snake_case name used by generated clients.
	Attribute string
	// Key is the name on the wire.
	Key         string
	Type        FieldType
	Nullable    bool
	Description string
}

type mappable interface {
	ToMap() map[string]interface{}
}

func toMapValue(value interface{}) interface{} {
	switch v := value.(type) {
	case *JobShardingConfig:
		if v == nil {
			return nil
		}
		return v.ToMap()
	case mappable:
		return v.ToMap()
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = toMapValue(item)
		}
		return result
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, item := range v {
			result[k] = toMapValue(item)
		}
		return result
	default:
		return value
	}
}

func attributeAliases(fields []Field) map[string]string {
	aliases := make(map[string]string, len(fields))
	for _, field := range fields {
		aliases[field.Attribute] = field.Key
	}
	return aliases
}
