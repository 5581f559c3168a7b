package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	BaseURL string `json:"base_url"` // used to build shareable survey links

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret     string `json:"jwt_secret"`
		TokenTTLHours int    `json:"token_ttl_hours"`
	} `json:"security"`

	AI struct {
		ApiKey         string `json:"api_key"`
		ChatModel      string `json:"chat_model"`    // fast tier: chat + alternative questions
		ProfileModel   string `json:"profile_model"` // heavy tier: full profile synthesis
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"ai"`

	Mail struct {
		ApiKey    string `json:"api_key"`
		FromEmail string `json:"from_email"`
		FromName  string `json:"from_name"`
	} `json:"mail"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:" + c.ApiPort
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Security.TokenTTLHours <= 0 {
		c.Security.TokenTTLHours = 24
	}
	if c.AI.ChatModel == "" {
		c.AI.ChatModel = "gemini-2.5-flash"
	}
	if c.AI.ProfileModel == "" {
		c.AI.ProfileModel = "gemini-2.5-pro"
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 120
	}
	if c.Mail.FromEmail == "" {
		c.Mail.FromEmail = "feedback@northstar.local"
	}
	if c.Mail.FromName == "" {
		c.Mail.FromName = "Northstar"
	}

	return c
}
