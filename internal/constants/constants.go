package constants

import "time"

const (
	ViaCEPTimeout   = 10 * time.Second
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

// FlashMaxAge bounds how long an unread flash cookie survives.
const FlashMaxAge = 60 * time.Second
