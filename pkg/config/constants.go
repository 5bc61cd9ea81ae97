package config

// EnvPrefix is empty because every envconfig tag already carries the
// MODALINE_ prefix.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "MODALINE_DB_DSN"
	EnvDBHost = "MODALINE_DB_HOST"
	EnvDBUser = "MODALINE_DB_USER"
	EnvDBName = "MODALINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
