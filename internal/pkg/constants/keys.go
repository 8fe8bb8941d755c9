package constants

// Viper keys.
const (
	ViperHTTPAddr    = "http.addr"
	ViperPgDSN       = "pg.dsn"
	ViperDataDir     = "data.dir"
	ViperSecretKey   = "auth.secret"
	ViperGrantsURL   = "calls.grants_url"
	ViperCORSOrigins = "http.cors_origins"
)

// Context and cookie keys.
const (
	CookieKeySecretToken = "secret_token"
	CtxKeyUserID         = "user_id"
)
