package main

type Config struct {
	HTTPPort        string
	LogLevel        string
	DBUsername      string
	DBPassword      string
	DBPort          string
	DBHost          string
	DBName          string
	UpstreamBaseURL string
	CheckoutBaseURL string
	CacheTTLSeconds int
	FetchRetries    int
	WarmCacheOnBoot bool
}
