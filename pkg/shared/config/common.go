package config

import (
	"crypto/tls"
	"time"
)

const (
	defaultTimeout          = 30 * time.Second
	defaultRetryWaitTime    = time.Second
	defaultRetryMaxWaitTime = 2 * time.Second
)

// TransportSettings is the resolved http_client section as the tracker transport consumes it.
// Proxy is "host:port" or empty.
type TransportSettings struct {
	Debug            bool
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	Timeout          time.Duration
	TLSClientConfig  *tls.Config
	Proxy            string
}

// DefaultTransportSettings never retries and requires TLS 1.2 or newer.
func DefaultTransportSettings() TransportSettings {
	return TransportSettings{
		RetryWaitTime:    defaultRetryWaitTime,
		RetryMaxWaitTime: defaultRetryMaxWaitTime,
		Timeout:          defaultTimeout,
		TLSClientConfig:  &tls.Config{MinVersion: tls.VersionTLS12},
	}
}
