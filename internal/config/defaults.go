package config

import "time"

const (
	defaultHTTPAddress        = "localhost:8080"
	defaultRequestTimeout     = 30 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
	defaultTokenIssuer        = "mentem-portal"
	defaultTokenDuration      = 30 * 24 * time.Hour
	defaultRelayTimeout       = 30 * time.Second
	defaultLoginRatePerMinute = 10
	defaultLoginBurst         = 5
	defaultClientTimeout      = 60 * time.Second
	defaultClientLogFile      = "mentem-client.log"
	defaultMaxOpenConns       = 10
	defaultMaxIdleConns       = 4
	defaultConnMaxLifetime    = 30 * time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			ShutdownTimeout:    defaultShutdownTimeout,
			LoginRatePerMinute: defaultLoginRatePerMinute,
			LoginBurst:         defaultLoginBurst,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
		},
		Relay: Relay{
			RequestTimeout: defaultRelayTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultClientTimeout,
			LogFile:        defaultClientLogFile,
		},
	}
}
