package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigMemoPrefix = ConfigPrefix + delimiter + "memo"

	ConfigMemoNormalizer = ConfigMemoPrefix + delimiter + "normalizer"

	ConfigMemoLogPrefix = ConfigMemoPrefix + delimiter + "log"
	ConfigMemoLogLevel  = ConfigMemoLogPrefix + delimiter + "level"
)
