package core

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all the knobs of the gateway. Values come from defaults, an
// optional .env file and ENV-prefixed environment variables, in increasing
// order of precedence.
type Config struct {
	Env       string
	Debug     bool
	TestMode  bool
	AppName   string
	Build     string
	SecretKey string

	Server struct {
		Addr            string
		ShutdownTimeout time.Duration
	}

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	Session struct {
		CookieName string
		MaxAge     time.Duration
		RedisAddr  string // empty: sessions live in the cookie itself
	}

	RollbarToken string
}

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Darsxona")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "almashtiring-bu-kalitni-57=dz&uoxh2(h!x)#*c2(#yg4h^$c")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("api.baseURL", "http://localhost:8080/api")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("session.cookieName", "darsxona_session")
	v.SetDefault("session.maxAge", 7*24*time.Hour)
	v.SetDefault("session.redisAddr", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "QA", "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := ".env." + strings.ToLower(env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{Env: env}
	if err := v.Unmarshal(conf); err != nil {
		log.Fatalf("config.Unmarshal: %v", err)
	}
	return conf
}

// NewTestConfig returns a Config suitable for handler tests: debug off so
// error payloads match production, testMode on so panics surface.
func NewTestConfig() *Config {
	conf := &Config{Env: "TEST", TestMode: true, AppName: "Darsxona", SecretKey: "test-secret-key-32-bytes-long!!!"}
	conf.Server.Addr = ":0"
	conf.Server.ShutdownTimeout = time.Second
	conf.API.Timeout = 5 * time.Second
	conf.Session.CookieName = "darsxona_session"
	conf.Session.MaxAge = time.Hour
	return conf
}
