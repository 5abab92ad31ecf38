package config

import (
	"flag"
	"os"

	"github.com/peerprep/user-service/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-s string   confirmation-code signing secret
//	-u string   password-reset link base URI
//	-w int      bcrypt cost (work factor)
//	-m string   SMTP host ("" selects the log-only notifier)
//	-p int      SMTP port
//	-f string   SMTP from address
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-u", "-w", "-m", "-p", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.ConfirmationSecret, "s", config.ConfirmationSecret, "confirmation signing secret")
	fs.StringVar(&config.ResetLinkBaseURI, "u", config.ResetLinkBaseURI, "password reset link base URI")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt cost factor")
	fs.StringVar(&config.SMTPHost, "m", config.SMTPHost, "SMTP host")
	fs.IntVar(&config.SMTPPort, "p", config.SMTPPort, "SMTP port")
	fs.StringVar(&config.SMTPFrom, "f", config.SMTPFrom, "SMTP from address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
