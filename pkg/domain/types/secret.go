package types

// GitHubToken is an API credential. Values of this type are masked in logs.
type GitHubToken string

func (t GitHubToken) String() string {
	return string(t)
}

// GitHubAppPrivateKey is a PEM encoded GitHub App private key. Masked in logs.
type GitHubAppPrivateKey string
