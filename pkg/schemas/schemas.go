package schemas

import (
	client "github.com/bacalhau-project/bacalhau-apiclient/pkg/client/generated/job/v1"
	"github.com/bacalhau-project/bacalhau-apiclient/pkg/schemas/mapper"
	"github.com/pkg/errors"
	"github.com/rancher/norman/types"
	"github.com/rancher/norman/types/convert"
)

var Version = types.APIVersion{
	Version: "v1",
	Group:   "bacalhau.org",
	Path:    "/api/v1",
}

// JobShardingConfig builds the API schema of the sharding config from the
// model's field table.
func JobShardingConfig() (*types.Schema, error) {
	return fromFields(client.JobShardingConfigType, client.JobShardingConfigFields())
}

func fromFields(id string, fields []client.Field) (*types.Schema, error) {
	schema := &types.Schema{
		ID:                id,
		CodeName:          convert.Capitalize(id),
		PluralName:        id + "s",
		Version:           Version,
		ResourceFields:    map[string]types.Field{},
		ResourceMethods:   []string{},
		CollectionMethods: []string{},
	}

	aliases := map[string]string{}
	for _, field := range fields {
		if _, ok := schema.ResourceFields[field.Key]; ok {
			return nil, errors.Errorf("duplicate field %s on schema %s", field.Key, id)
		}
		schema.ResourceFields[field.Key] = types.Field{
			Type:        string(field.Type),
			Nullable:    field.Nullable,
			Create:      true,
			Update:      true,
			Description: field.Description,
			CodeName:    field.Key,
		}
		aliases[field.Attribute] = field.Key
	}

	alias := mapper.AttributeAlias{Aliases: aliases}
	if err := alias.ModifySchema(schema, nil); err != nil {
		return nil, err
	}
	schema.Mapper = alias
	return schema, nil
}
