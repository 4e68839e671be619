package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/metrics"
	"github.com/linskybing/storeops-go/internal/notify"
	"github.com/linskybing/storeops-go/internal/repository"
	"golang.org/x/sync/errgroup"
)

var logger = loggo.GetLogger("storeops.application")

// maxParallelDeliveries bounds per-user deliveries within one fan-out.
const maxParallelDeliveries = 8

// Notifier fans an alert out to its recipients and returns the id of the
// last alert stored.
type Notifier interface {
	Dispatch(ctx context.Context, req alert.Request) (uint, error)
}

// Emitter pushes an event to a WebSocket room.
type Emitter interface {
	Emit(room string, event interface{}) (int, error)
}

type AlertService struct {
	Repos      *repository.Repos
	emitter    Emitter
	mailer     notify.Mailer
	sms        notify.SMSSender
	clock      clock.Clock
	senderName string
}

func NewAlertService(repos *repository.Repos, deps Deps) *AlertService {
	return &AlertService{
		Repos:      repos,
		emitter:    deps.Emitter,
		mailer:     deps.Mailer,
		sms:        deps.SMS,
		clock:      deps.clock(),
		senderName: deps.SenderName,
	}
}

// Dispatch stores one alert per recipient and delivers it in-app, by email
// and by SMS. Email and SMS failures are logged and only drop the channel
// from the alert's categories.
func (s *AlertService) Dispatch(ctx context.Context, req alert.Request) (uint, error) {
	recipients, role, err := s.resolveRecipients(req)
	if err != nil {
		return 0, err
	}
	if len(recipients) == 0 {
		logger.Infof("no recipients for alert target %q", req.Target)
		return 0, nil
	}

	ids := make([]uint, len(recipients))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDeliveries)
	for i, u := range recipients {
		i, u := i, u
		g.Go(func() error {
			id, err := s.deliver(gctx, req, role, u)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return ids[len(ids)-1], nil
}

func (s *AlertService) resolveRecipients(req alert.Request) ([]user.User, string, error) {
	if len(req.UserIDs) > 0 {
		users, err := s.Repos.User.ListUsersByIDs(req.UserIDs)
		return users, "", errors.Trace(err)
	}

	target := strings.TrimSpace(req.Target)
	switch {
	case user.IsValidRole(target):
		users, err := s.Repos.User.ListUsers(target)
		if err != nil {
			return nil, "", errors.Trace(err)
		}
		return withoutUser(users, req.ActorID), target, nil
	case target == form.GeneralPool:
		users, err := s.Repos.User.ListUsers("")
		if err != nil {
			return nil, "", errors.Trace(err)
		}
		return withoutUser(users, req.ActorID), "", nil
	}

	id, err := strconv.ParseUint(target, 10, 64)
	if err != nil || id == 0 {
		return nil, "", errors.NewBadRequest(nil, fmt.Sprintf("invalid alert target %q", req.Target))
	}
	u, err := s.Repos.User.GetUserByID(uint(id))
	if err != nil {
		return nil, "", err
	}
	return []user.User{u}, "", nil
}

func withoutUser(users []user.User, id uint) []user.User {
	out := users[:0:0]
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

func (s *AlertService) deliver(ctx context.Context, req alert.Request, role string, u user.User) (uint, error) {
	categories := []string{alert.ChannelInApp}
	if s.sendEmail(ctx, req, u) {
		categories = append(categories, alert.ChannelEmail)
	}
	if s.sendSMS(ctx, req, u) {
		categories = append(categories, alert.ChannelSMS)
	}

	a := &alert.Alert{
		Message:       req.Message,
		Kind:          req.Kind,
		Role:          role,
		UserID:        u.ID,
		Categories:    categories,
		RelatedFormID: req.RelatedFormID,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.Repos.Alert.CreateAlert(a); err != nil {
		return 0, errors.Annotatef(err, "saving alert for user %d", u.ID)
	}

	if s.emitter != nil {
		n, err := s.emitter.Emit(notify.UserRoom(u.ID), alert.Event{
			Event:     "alert",
			AlertID:   a.ID,
			Kind:      a.Kind,
			Message:   a.Message,
			FormID:    a.RelatedFormID,
			CreatedAt: a.CreatedAt,
		})
		if err != nil {
			metrics.AlertFailures.WithLabelValues(alert.ChannelInApp).Inc()
			logger.Warningf("emitting alert %d to user %d: %v", a.ID, u.ID, err)
		} else if n > 0 {
			metrics.AlertsDispatched.WithLabelValues(alert.ChannelInApp).Inc()
		}
	}
	return a.ID, nil
}

func (s *AlertService) sendEmail(ctx context.Context, req alert.Request, u user.User) bool {
	if s.mailer == nil || !s.mailer.Enabled() || u.Email == "" {
		return false
	}
	data := notify.MailData{
		SenderName: s.senderName,
		Username:   u.Username,
		Message:    req.Message,
		Status:     req.Status,
		Role:       req.Role,
	}
	if req.RelatedFormID != nil {
		data.FormID = *req.RelatedFormID
	}
	subject, body, err := notify.RenderMail(req.Kind, data)
	if err == nil {
		err = s.mailer.Send(ctx, u.Email, subject, body)
	}
	if err != nil {
		metrics.AlertFailures.WithLabelValues(alert.ChannelEmail).Inc()
		logger.Warningf("email alert to user %d failed: %v", u.ID, err)
		return false
	}
	metrics.AlertsDispatched.WithLabelValues(alert.ChannelEmail).Inc()
	return true
}

func (s *AlertService) sendSMS(ctx context.Context, req alert.Request, u user.User) bool {
	if s.sms == nil || !s.sms.Enabled() || u.PhoneNumber == "" {
		return false
	}
	body := req.Message
	if s.senderName != "" {
		body = fmt.Sprintf("[%s] %s", s.senderName, req.Message)
	}
	if err := s.sms.Send(ctx, u.PhoneNumber, body); err != nil {
		metrics.AlertFailures.WithLabelValues(alert.ChannelSMS).Inc()
		logger.Warningf("sms alert to user %d failed: %v", u.ID, err)
		return false
	}
	metrics.AlertsDispatched.WithLabelValues(alert.ChannelSMS).Inc()
	return true
}

func (s *AlertService) ListAll() ([]alert.Alert, error) {
	return s.Repos.Alert.ListAlerts()
}

func (s *AlertService) ListForUser(userID uint) ([]alert.Alert, error) {
	return s.Repos.Alert.ListAlertsByUser(userID)
}

// MarkRead flags one of the user's alerts as read.
func (s *AlertService) MarkRead(userID, alertID uint) error {
	a, err := s.Repos.Alert.GetAlertByID(alertID)
	if err != nil {
		return err
	}
	if a.UserID != userID {
		return errors.NewNotFound(nil, "alert not found")
	}
	return s.Repos.Alert.MarkRead(alertID)
}
