package schemas

import (
	"testing"

	client "github.com/bacalhau-project/bacalhau-apiclient/pkg/client/generated/job/v1"
	"github.com/rancher/norman/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobShardingConfigSchema(t *testing.T) {
	schema, err := JobShardingConfig()
	require.NoError(t, err)

	assert.Equal(t, "jobShardingConfig", schema.ID)
	assert.Equal(t, "JobShardingConfig", schema.CodeName)
	assert.Equal(t, Version, schema.Version)
	require.Len(t, schema.ResourceFields, 3)

	batch := schema.ResourceFields[client.JobShardingConfigFieldBatchSize]
	assert.Equal(t, "int", batch.Type)
	assert.True(t, batch.Nullable)
	assert.True(t, batch.Create)
	assert.True(t, batch.Update)

	for _, key := range []string{client.JobShardingConfigFieldGlobPattern, client.JobShardingConfigFieldGlobPatternBasePath} {
		field, ok := schema.ResourceFields[key]
		require.True(t, ok, key)
		assert.Equal(t, "string", field.Type)
		assert.True(t, field.Nullable)
		assert.NotEmpty(t, field.Description)
	}
}

func TestSchemaMapperRewritesAttributes(t *testing.T) {
	schema, err := JobShardingConfig()
	require.NoError(t, err)
	require.NotNil(t, schema.Mapper)

	data := map[string]interface{}{"batch_size": 4, "GlobPattern": "/*"}
	require.NoError(t, schema.Mapper.ToInternal(data))
	assert.Equal(t, map[string]interface{}{"BatchSize": 4, "GlobPattern": "/*"}, data)
}

func TestFromFieldsDuplicateKey(t *testing.T) {
	fields := []client.Field{
		{Attribute: "a", Key: "A", Type: client.FieldTypeString},
		{Attribute: "b", Key: "A", Type: client.FieldTypeString},
	}
	_, err := fromFields("dup", fields)
	assert.EqualError(t, err, "duplicate field A on schema dup")
}

func TestFromFieldsEmpty(t *testing.T) {
	schema, err := fromFields("empty", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]types.Field{}, schema.ResourceFields)
}
