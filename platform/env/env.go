package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of an env var, or def when the env var is empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}

// Must return the value of an env var, panics if it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Errorw("config", "env", env, "ERROR", "required env var not set")
		panic("required env var not set: " + env)
	}
	return v
}
