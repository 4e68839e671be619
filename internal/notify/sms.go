package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/juju/ratelimit"
)

type SMSSender interface {
	Enabled() bool
	Send(ctx context.Context, to, body string) error
}

type SMSConfig struct {
	Enabled    bool
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	RatePerSec float64
	MaxWait    time.Duration
}

// TwilioSender posts messages to a Twilio-compatible REST API. Sends are
// throttled by a token bucket shared by all callers.
type TwilioSender struct {
	cfg    SMSConfig
	client *http.Client
	bucket *ratelimit.Bucket
}

func NewTwilioSender(cfg SMSConfig, client *http.Client) *TwilioSender {
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 5 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	capacity := int64(cfg.RatePerSec)
	if capacity < 1 {
		capacity = 1
	}
	return &TwilioSender{
		cfg:    cfg,
		client: client,
		bucket: ratelimit.NewBucketWithRate(cfg.RatePerSec, capacity),
	}
}

func (s *TwilioSender) Enabled() bool {
	return s.cfg.Enabled && s.cfg.AccountSID != "" && s.cfg.AuthToken != "" && s.cfg.From != ""
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if !s.Enabled() {
		return errors.NotSupportedf("sms sender disabled")
	}
	phone, ok := FormatPhone(to)
	if !ok {
		return errors.NotValidf("phone number %q", to)
	}
	if !s.bucket.WaitMaxDuration(1, s.cfg.MaxWait) {
		return errors.New("sms rate limit exceeded")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.AccountSID)
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", s.cfg.From)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Trace(err)
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Annotatef(err, "sending sms to %s", phone)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("sms provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

var phonePattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// FormatPhone normalizes a phone number to E.164 form.
func FormatPhone(raw string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if cleaned == "" {
		return "", false
	}
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	return cleaned, phonePattern.MatchString(cleaned)
}
