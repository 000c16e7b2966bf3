package auth

// Config seeds the demo credential.
type Config struct {
	DemoIdentifier string `env:"AUTH_DEMO_IDENTIFIER" envDefault:"admin@test.com"`
	DemoSecret     string `env:"AUTH_DEMO_SECRET" envDefault:"123456"`
	BcryptCost     int    `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}

// NewDemoStore builds a credential table holding the single configured record.
func NewDemoStore(cfg Config) (*MemoryCredentials, error) {
	cred, err := NewCredential(cfg.DemoIdentifier, cfg.DemoSecret, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return NewMemoryCredentials(cred)
}
