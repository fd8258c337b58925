package config

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetGoogleClientID() string {
	return GetEnv("GOOGLE_CLIENT_ID", "")
}

func (OAuth) GetGoogleClientSecret() string {
	return GetEnv("GOOGLE_CLIENT_SECRET", "")
}

func (OAuth) GetGitHubClientID() string {
	return GetEnv("GITHUB_CLIENT_ID", "")
}

func (OAuth) GetGitHubClientSecret() string {
	return GetEnv("GITHUB_CLIENT_SECRET", "")
}
