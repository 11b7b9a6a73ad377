package client

import (
	"encoding/json"
)

const (
	JobShardingConfigType                     = "jobShardingConfig"
	JobShardingConfigFieldBatchSize           = "BatchSize"
	JobShardingConfigFieldGlobPattern         = "GlobPattern"
	JobShardingConfigFieldGlobPatternBasePath = "GlobPatternBasePath"
)

// JobShardingConfig describes how the inputs of a job are split into shards.
type JobShardingConfig struct {
	// how many "items" are to be processed in each shard
	// we first apply the glob pattern which will result in a flat list of items
	// this number decides how to group that flat list into actual shards run by compute nodes
	BatchSize *int64 `json:"BatchSize,omitempty" yaml:"BatchSize,omitempty"`
	// divide the inputs up into the smallest possible unit
	// for example /* would mean "all top level files or folders"
	// this being an empty string means "no sharding"
	GlobPattern *string `json:"GlobPattern,omitempty" yaml:"GlobPattern,omitempty"`
	// when using multiple input volumes
	// what path do we treat as the common mount path to apply the glob pattern to
	GlobPatternBasePath *string `json:"GlobPatternBasePath,omitempty" yaml:"GlobPatternBasePath,omitempty"`
}

var jobShardingConfigFields = []Field{
	{
		Attribute:   "batch_size",
		Key:         JobShardingConfigFieldBatchSize,
		Type:        FieldTypeInt,
		Nullable:    true,
		Description: `how many "items" are to be processed in each shard`,
	},
	{
		Attribute:   "glob_pattern",
		Key:         JobShardingConfigFieldGlobPattern,
		Type:        FieldTypeString,
		Nullable:    true,
		Description: `divide the inputs up into the smallest possible unit, an empty string means "no sharding"`,
	},
	{
		Attribute:   "glob_pattern_base_path",
		Key:         JobShardingConfigFieldGlobPatternBasePath,
		Type:        FieldTypeString,
		Nullable:    true,
		Description: "the common mount path to apply the glob pattern to when using multiple input volumes",
	},
}

// JobShardingConfigFields returns the field table of JobShardingConfig in declaration order.
func JobShardingConfigFields() []Field {
	return append([]Field(nil), jobShardingConfigFields...)
}

// JobShardingConfigOption sets one field of a JobShardingConfig at construction.
type JobShardingConfigOption func(*JobShardingConfig)

func WithBatchSize(v int64) JobShardingConfigOption {
	return func(o *JobShardingConfig) {
		o.SetBatchSize(v)
	}
}

func WithGlobPattern(v string) JobShardingConfigOption {
	return func(o *JobShardingConfig) {
		o.SetGlobPattern(v)
	}
}

func WithGlobPatternBasePath(v string) JobShardingConfigOption {
	return func(o *JobShardingConfig) {
		o.SetGlobPatternBasePath(v)
	}
}

// NewJobShardingConfig instantiates a new JobShardingConfig. Fields without
// an option stay unset.
func NewJobShardingConfig(opts ...JobShardingConfigOption) *JobShardingConfig {
	this := JobShardingConfig{}
	for _, opt := range opts {
		opt(&this)
	}
	return &this
}

// GetBatchSize returns the BatchSize field value if set, zero value otherwise.
func (o *JobShardingConfig) GetBatchSize() int64 {
	if o == nil || o.BatchSize == nil {
		var ret int64
		return ret
	}
	return *o.BatchSize
}

// GetBatchSizeOk returns a tuple with the BatchSize field value if set, nil otherwise
// and a boolean to check if the value has been set.
func (o *JobShardingConfig) GetBatchSizeOk() (*int64, bool) {
	if o == nil || o.BatchSize == nil {
		return nil, false
	}
	return o.BatchSize, true
}

// HasBatchSize returns a boolean if a field has been set.
func (o *JobShardingConfig) HasBatchSize() bool {
	return o != nil && o.BatchSize != nil
}

// SetBatchSize gets a reference to the given int64 and assigns it to the BatchSize field.
func (o *JobShardingConfig) SetBatchSize(v int64) {
	o.BatchSize = &v
}

func (o *JobShardingConfig) UnsetBatchSize() {
	o.BatchSize = nil
}

// GetGlobPattern returns the GlobPattern field value if set, zero value otherwise.
func (o *JobShardingConfig) GetGlobPattern() string {
	if o == nil || o.GlobPattern == nil {
		var ret string
		return ret
	}
	return *o.GlobPattern
}

// GetGlobPatternOk returns a tuple with the GlobPattern field value if set, nil otherwise
// and a boolean to check if the value has been set.
func (o *JobShardingConfig) GetGlobPatternOk() (*string, bool) {
	if o == nil || o.GlobPattern == nil {
		return nil, false
	}
	return o.GlobPattern, true
}

// HasGlobPattern returns a boolean if a field has been set.
func (o *JobShardingConfig) HasGlobPattern() bool {
	return o != nil && o.GlobPattern != nil
}

// SetGlobPattern gets a reference to the given string and assigns it to the GlobPattern field.
func (o *JobShardingConfig) SetGlobPattern(v string) {
	o.GlobPattern = &v
}

func (o *JobShardingConfig) UnsetGlobPattern() {
	o.GlobPattern = nil
}

// GetGlobPatternBasePath returns the GlobPatternBasePath field value if set, zero value otherwise.
func (o *JobShardingConfig) GetGlobPatternBasePath() string {
	if o == nil || o.GlobPatternBasePath == nil {
		var ret string
		return ret
	}
	return *o.GlobPatternBasePath
}

// GetGlobPatternBasePathOk returns a tuple with the GlobPatternBasePath field value if set, nil otherwise
// and a boolean to check if the value has been set.
func (o *JobShardingConfig) GetGlobPatternBasePathOk() (*string, bool) {
	if o == nil || o.GlobPatternBasePath == nil {
		return nil, false
	}
	return o.GlobPatternBasePath, true
}

// HasGlobPatternBasePath returns a boolean if a field has been set.
func (o *JobShardingConfig) HasGlobPatternBasePath() bool {
	return o != nil && o.GlobPatternBasePath != nil
}

// SetGlobPatternBasePath gets a reference to the given string and assigns it to the GlobPatternBasePath field.
func (o *JobShardingConfig) SetGlobPatternBasePath(v string) {
	o.GlobPatternBasePath = &v
}

func (o *JobShardingConfig) UnsetGlobPatternBasePath() {
	o.GlobPatternBasePath = nil
}

// ToMap returns every field of the model keyed by its wire name. Unset
// fields are present with a nil value.
func (o JobShardingConfig) ToMap() map[string]interface{} {
	result := make(map[string]interface{}, len(jobShardingConfigFields))
	for _, field := range jobShardingConfigFields {
		result[field.Key] = toMapValue(o.valueOf(field.Key))
	}
	return result
}

func (o JobShardingConfig) valueOf(key string) interface{} {
	switch key {
	case JobShardingConfigFieldBatchSize:
		if o.BatchSize != nil {
			return *o.BatchSize
		}
	case JobShardingConfigFieldGlobPattern:
		if o.GlobPattern != nil {
			return *o.GlobPattern
		}
	case JobShardingConfigFieldGlobPatternBasePath:
		if o.GlobPatternBasePath != nil {
			return *o.GlobPatternBasePath
		}
	}
	return nil
}

func (o JobShardingConfig) MarshalJSON() ([]byte, error) {
	toSerialize := map[string]interface{}{}
	if o.BatchSize != nil {
		toSerialize[JobShardingConfigFieldBatchSize] = o.BatchSize
	}
	if o.GlobPattern != nil {
		toSerialize[JobShardingConfigFieldGlobPattern] = o.GlobPattern
	}
	if o.GlobPatternBasePath != nil {
		toSerialize[JobShardingConfigFieldGlobPatternBasePath] = o.GlobPatternBasePath
	}
	return json.Marshal(toSerialize)
}

type NullableJobShardingConfig struct {
	value *JobShardingConfig
	isSet bool
}

func (v NullableJobShardingConfig) Get() *JobShardingConfig {
	return v.value
}

func (v *NullableJobShardingConfig) Set(val *JobShardingConfig) {
	v.value = val
	v.isSet = true
}

func (v NullableJobShardingConfig) IsSet() bool {
	return v.isSet
}

func (v *NullableJobShardingConfig) Unset() {
	v.value = nil
	v.isSet = false
}

func NewNullableJobShardingConfig(val *JobShardingConfig) *NullableJobShardingConfig {
	return &NullableJobShardingConfig{value: val, isSet: true}
}

func (v NullableJobShardingConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

func (v *NullableJobShardingConfig) UnmarshalJSON(src []byte) error {
	v.isSet = true
	return json.Unmarshal(src, &v.value)
}
