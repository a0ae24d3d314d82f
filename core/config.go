package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", false)
	Conf.SetDefault("appName", "Darasa")
	Conf.SetDefault("dataDir", defaultDataDir())
	Conf.SetDefault("databaseFile", "darasa.db")
	Conf.SetDefault("logDir", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(".", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// Config is a typed snapshot of the viper configuration.
type Config struct {
	Debug        bool
	AppName      string
	DataDir      string
	DatabaseFile string
	LogDir       string
}

func NewConfig() *Config {
	return &Config{
		Debug:        Conf.GetBool("debug"),
		AppName:      Conf.GetString("appName"),
		DataDir:      Conf.GetString("dataDir"),
		DatabaseFile: Conf.GetString("databaseFile"),
		LogDir:       Conf.GetString("logDir"),
	}
}

// DatabasePath returns the full path of the embedded database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".darasa")
}
