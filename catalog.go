package catalog

import "embed"

// EmailFS holds the notification email templates shipped with the binary.
//
//go:embed templates/emails
var EmailFS embed.FS
