package config

import (
	"os"
	"sync"
)

type MailConfig struct {
	APIURL     string
	APIKey     string
	FromEmail  string
	AdminEmail string
}

var (
	mailConfig *MailConfig
	mailOnce   sync.Once
)

func LoadMailConfig() *MailConfig {
	mailOnce.Do(func() {
		mailConfig = &MailConfig{
			APIURL:     os.Getenv("MAIL_API_URL"),
			APIKey:     os.Getenv("MAIL_API_KEY"),
			FromEmail:  os.Getenv("MAIL_FROM_EMAIL"),
			AdminEmail: os.Getenv("MAIL_ADMIN_EMAIL"),
		}
	})
	return mailConfig
}
