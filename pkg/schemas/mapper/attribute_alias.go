package mapper

import (
	"github.com/pkg/errors"
	"github.com/rancher/norman/types"
)

// AttributeAlias accepts the snake_case attribute names used by generated
// API clients as input and rewrites them to their wire keys.
type AttributeAlias struct {
	// Aliases maps an attribute name to its wire key.
	Aliases map[string]string
}

func (a AttributeAlias) FromInternal(data map[string]interface{}) {
}

func (a AttributeAlias) ToInternal(data map[string]interface{}) error {
	if data == nil {
		return nil
	}
	for attr, key := range a.Aliases {
		value, ok := data[attr]
		if !ok {
			continue
		}
		if _, conflict := data[key]; conflict {
			return errors.Errorf("both %q and %q are set", attr, key)
		}
		data[key] = value
		delete(data, attr)
	}
	return nil
}

func (a AttributeAlias) ModifySchema(schema *types.Schema, schemas *types.Schemas) error {
	for attr, key := range a.Aliases {
		if _, ok := schema.ResourceFields[key]; !ok {
			return errors.Errorf("alias %q points to unknown field %q on schema %s", attr, key, schema.ID)
		}
	}
	return nil
}
