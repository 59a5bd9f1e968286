package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

type Config struct {
	Debug            bool
	TestMode         bool
	Env              string
	Build            string
	AppName          string
	SecretKey        string
	DefaultFromEmail mail.Address
	SendgridApiKey   string
	RollbarToken     string
	WorkDir          string

	// SessionFile is where the current session is persisted across restarts.
	SessionFile string

	Server struct {
		Host               string
		Addr               string
		JWTExpirationDelta time.Duration
	}
}

func init() {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Cardlect")
	conf.SetDefault("secretKey", "x3m9-vbq)wld$+04=kf&yrsn8(j!p)#*d7(#hw2q^$msoc4kpt")
	conf.SetDefault("defaultFromEmail", "noreply@cardlect.io")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("sessionFile", filepath.Join(Getwd(), ".cardlect", "session.json"))

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	Conf = &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		Env:              env,
		Build:            conf.GetString("build"),
		AppName:          conf.GetString("appName"),
		SecretKey:        conf.GetString("secretKey"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		WorkDir:          Getwd(),
		SessionFile:      conf.GetString("sessionFile"),
	}
	Conf.Server.Host = conf.GetString("serverHost")
	Conf.Server.Addr = conf.GetString("serverAddr")
	Conf.Server.JWTExpirationDelta = conf.GetDuration("jwtExpirationDelta")
}

// Getwd returns the app's working directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd: %v", err)
	}
	return wd
}
