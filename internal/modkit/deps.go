// Package modkit provides the shared wiring modules are built from
package modkit

import (
	"spamwatch/internal/modkit/repokit"
	"spamwatch/internal/platform/config"
	"spamwatch/internal/platform/logger"
	"spamwatch/internal/platform/mail"
)

// Deps carries the process-wide dependencies every module may draw on.
// Mail is optional and may be nil when SMTP is not configured
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	PG   repokit.TxRunner
	Mail mail.Sender
}
