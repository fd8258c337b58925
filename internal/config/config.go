package config

type Config interface {
	EnvConfig
	OAuthConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetDatabaseDSN() string
	GetSmtpHost() string
	GetSmtpPort() string
	GetSmtpAccount() string
	GetSmtpPassword() string
	GetEnv() string
}

type OAuthConfig interface {
	GetGoogleClientID() string
	GetGoogleClientSecret() string
	GetGitHubClientID() string
	GetGitHubClientSecret() string
}

type mainConfig struct {
	EnvVars
	OAuth
}

func New() Config {
	return mainConfig{}
}
