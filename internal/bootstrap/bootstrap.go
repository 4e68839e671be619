// Package bootstrap wires configuration into repositories, delivery
// channels and services for the binaries under cmd/.
package bootstrap

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/config/db"
	"github.com/linskybing/storeops-go/internal/notify"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/internal/seed"
	"github.com/linskybing/storeops-go/internal/storage"
)

var logger = loggo.GetLogger("storeops.bootstrap")

type Runtime struct {
	Repos    *repository.Repos
	Services *application.Services
	Hub      *notify.Hub
}

// Deps builds the delivery channels from config. A nil emitter leaves
// in-app alerts persisted but not pushed.
func Deps(ctx context.Context, emitter application.Emitter) application.Deps {
	deps := application.Deps{
		Emitter:    emitter,
		Clock:      clock.WallClock,
		SenderName: config.SmtpFromName,
		BcryptCost: config.BcryptCost,
		Mailer: notify.NewSMTPMailer(notify.MailConfig{
			Host:     config.SmtpHost,
			Port:     config.SmtpPort,
			User:     config.SmtpUser,
			Password: config.SmtpPass,
			FromName: config.SmtpFromName,
		}),
		SMS: notify.NewTwilioSender(notify.SMSConfig{
			Enabled:    config.SmsEnabled,
			BaseURL:    config.TwilioBaseURL,
			AccountSID: config.TwilioAccountSID,
			AuthToken:  config.TwilioAuthToken,
			From:       config.TwilioFromNumber,
			RatePerSec: config.SmsRatePerSec,
		}, nil),
	}
	if !config.MailEnabled() {
		logger.Infof("SMTP not configured; email alerts disabled")
	}
	if !config.SMSConfigured() {
		logger.Infof("SMS alerts disabled")
	}

	if config.MinioEndpoint == "" {
		logger.Infof("MINIO_ENDPOINT not set; signatures will not be stored")
		return deps
	}
	store, err := storage.NewMinioSignatureStore(ctx, storage.MinioConfig{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
		PublicURL: config.MinioPublicURL,
	})
	if err != nil {
		logger.Warningf("signature storage unavailable: %v", err)
		return deps
	}
	deps.Signatures = store
	return deps
}

// Start connects the database and builds the services. withHub adds a
// WebSocket hub as the in-app alert channel.
func Start(ctx context.Context, withHub bool) (*Runtime, error) {
	if err := db.Init(); err != nil {
		return nil, errors.Annotate(err, "initializing database")
	}
	rt := &Runtime{Repos: repository.NewRepositories(db.DB)}

	var emitter application.Emitter
	if withHub {
		rt.Hub = notify.NewHub()
		emitter = rt.Hub
	}
	rt.Services = application.New(rt.Repos, Deps(ctx, emitter))
	return rt, nil
}

// Prime creates the configured Super-Admin and applies the seed file.
func (rt *Runtime) Prime() error {
	if config.SuperAdminUsername != "" {
		created, err := rt.Services.User.EnsureSuperAdmin(config.SuperAdminUsername, config.SuperAdminPassword)
		if err != nil {
			return errors.Annotate(err, "ensuring super admin")
		}
		if created {
			logger.Infof("created super admin %q", config.SuperAdminUsername)
		}
	}
	if config.SeedFile != "" {
		f, err := seed.Load(config.SeedFile)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(rt.Services, f); err != nil {
			return err
		}
	}
	return nil
}
