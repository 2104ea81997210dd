package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/peoplekeeper/internal/audit"
	"github.com/dmitrijs2005/peoplekeeper/internal/backup"
	"github.com/dmitrijs2005/peoplekeeper/internal/cli"
	"github.com/dmitrijs2005/peoplekeeper/internal/config"
	"github.com/dmitrijs2005/peoplekeeper/internal/logging"
	"github.com/google/uuid"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	sessionID := uuid.NewString()
	log := logging.New(os.Stderr, cfg.LogLevel).With("session", sessionID)

	w, closeAudit, err := audit.OpenWriter(ctx, cfg)
	if err != nil {
		log.Error(ctx, "audit writer unavailable, falling back to file", logging.Err(err))
		w, closeAudit = audit.NewFileWriter(cfg.AuditFile), func() error { return nil }
	}
	defer func() {
		if err := closeAudit(); err != nil {
			log.Warn(ctx, "closing audit writer", logging.Err(err))
		}
	}()
	sink := audit.NewRecorder(w, log, sessionID)

	var uploader backup.Uploader
	if cfg.Backup.Enabled() {
		u, err := backup.NewS3UploaderFromConfig(ctx, cfg.Backup)
		if err != nil {
			log.Warn(ctx, "backup disabled", logging.Err(err))
		} else {
			uploader = u
		}
	}

	app, err := cli.NewApp(ctx, cfg, log, sink, uploader)
	if err != nil {
		log.Error(ctx, "startup failed", logging.Err(err))
		return
	}

	app.Run(ctx)

}
