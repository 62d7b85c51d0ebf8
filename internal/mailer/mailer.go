// Package mailer is the OTP/verification email delivery boundary.
// This module treats "email delivery for one-time passwords,
// HTML mail templating" as an external collaborator, so this package
// provides only the interface the auth/admin flows call against plus a
// logging stub — not a provider SDK integration.
package mailer

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// Mailer sends a single plain-subject, HTML-body email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type loggingMailer struct{}

// NewLoggingMailer returns a Mailer that records the send instead of
// calling a real provider. Swap in a concrete SDK-backed implementation
// at the deployment boundary.
func NewLoggingMailer() Mailer {
	return loggingMailer{}
}

func (loggingMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	logx.WithContext(ctx).Infof("mailer: would send %q to %s", subject, to)
	return nil
}

// OTPBody renders the one-time-password email body. HTML templating is
// out of scope; this is the minimal inline template the logging stub
// and any future provider-backed Mailer both render from.
func OTPBody(otp, purpose string) string {
	return "<p>Use the code <strong>" + otp + "</strong> to " + purpose + ". This code expires shortly.</p>"
}
