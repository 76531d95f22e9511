package infra

import "os"

// AuthConfig carries the secrets the auth service needs. Both fields are
// required; there are no defaults.
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// ProductKeySecret is the shared secret behind privileged-signup
	// product keys.
	ProductKeySecret string
}

// LoadAuthConfig reads SECRET_KEY and PRODUCT_KEY_SECRET from the
// environment and panics if either is missing.
func LoadAuthConfig() AuthConfig {
	config := AuthConfig{
		JWTSecret:        os.Getenv("SECRET_KEY"),
		ProductKeySecret: os.Getenv("PRODUCT_KEY_SECRET"),
	}
	if config.JWTSecret == "" {
		panic("SECRET_KEY must be set")
	}
	if config.ProductKeySecret == "" {
		panic("PRODUCT_KEY_SECRET must be set")
	}
	return config
}
