package config

import (
	"encoding/json"
	"os"

	"github.com/peerprep/user-service/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Only fields present in
// the file override the current values.
type JsonConfig struct {
	DatabaseDSN        *string `json:"database_dsn"`
	ConfirmationSecret *string `json:"confirmation_secret"`
	ResetLinkBaseURI   *string `json:"reset_link_base_uri"`
	BcryptCost         *int    `json:"bcrypt_cost"`
	SMTPHost           *string `json:"smtp_host"`
	SMTPPort           *int    `json:"smtp_port"`
	SMTPUsername       *string `json:"smtp_username"`
	SMTPPassword       *string `json:"smtp_password"`
	SMTPFrom           *string `json:"smtp_from"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into config. When neither flag is set, nothing is loaded.
// An unreadable or invalid file panics, matching flag-parse failures.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.ConfirmationSecret != nil {
		config.ConfirmationSecret = *c.ConfirmationSecret
	}
	if c.ResetLinkBaseURI != nil {
		config.ResetLinkBaseURI = *c.ResetLinkBaseURI
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.SMTPHost != nil {
		config.SMTPHost = *c.SMTPHost
	}
	if c.SMTPPort != nil {
		config.SMTPPort = *c.SMTPPort
	}
	if c.SMTPUsername != nil {
		config.SMTPUsername = *c.SMTPUsername
	}
	if c.SMTPPassword != nil {
		config.SMTPPassword = *c.SMTPPassword
	}
	if c.SMTPFrom != nil {
		config.SMTPFrom = *c.SMTPFrom
	}
}
