package pure

import "go.uber.org/zap"

// TableConfig tunes a memo Table.
type TableConfig struct {
	Name      string      // shows up in debug logs
	NumShards int         // default: 1
	Logger    *zap.Logger // default: no-op
}

// NewTableConfig returns a TableConfig with defaults applied to unset fields.
func NewTableConfig(name string, numShards int, logger *zap.Logger) TableConfig {
	return TableConfig{
		Name:      name,
		NumShards: numShards,
		Logger:    logger,
	}.normalize()
}

func (c TableConfig) normalize() TableConfig {
	if c.NumShards <= 0 {
		c.NumShards = 1
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Name == "" {
		c.Name = "anonymous"
	}
	return c
}
