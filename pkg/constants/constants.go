package constants

const (
	AppName      = "emtaxi"
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "EMTAXI"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)
