package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"

	ConfigTablePrefix    = ConfigPrefix + delimiter + "table"
	ConfigTableName      = ConfigTablePrefix + delimiter + "name"
	ConfigTableNumShards = ConfigTablePrefix + delimiter + "num_shards"
)
