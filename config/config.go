package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS         = ""        // e.g. "example.com,example2.com"
	MYSQL_DSN           = ""        // MySQL will be used if this is set
	SQLITE_FILE         = "blog.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS        = "0.0.0.0:8080"
	MEDIA_DIR           = "media" // Root directory for uploaded post images
	S3_BUCKET           = ""      // S3 will be used for media if this is set
	S3_REGION           = "us-east-1"
	S3_ENDPOINT         = "" // Optional, for S3-compatible stores
	S3_ACCESS_KEY       = ""
	S3_SECRET_KEY       = ""
	SESSION_KEY         = "change me in production"
	DEBUG_MODE          = true
	INDEX_CACHE_SECONDS = 20 // TTL for the cached front page
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("S3_SECRET_KEY", &S3_SECRET_KEY)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("INDEX_CACHE_SECONDS", &INDEX_CACHE_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
