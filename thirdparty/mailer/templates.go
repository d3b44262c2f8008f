package mailer

import (
	"fmt"
	"html"
	"time"
)

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background: #f6f7fb; color: #1f2937;">
  <div style="max-width: 560px; margin: 24px auto; background: #ffffff; border: 1px solid #e5e7eb; border-radius: 8px;">
    <div style="background: #7c2d12; color: #ffffff; padding: 14px 20px; font-weight: bold;">%s</div>
    <div style="padding: 20px;">%s</div>
  </div>
</body>
</html>`

func render(org, content string) string {
	return fmt.Sprintf(layout, html.EscapeString(org), content)
}

func minutes(d time.Duration) int {
	return int(d.Round(time.Minute) / time.Minute)
}

// OTPMessage carries a one-time code; purpose reads like "verify your email address".
func OTPMessage(org, to, name, code, purpose string, ttl time.Duration) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p>
<p>Use the code below to %s.</p>
<div style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</div>
<p>The code expires in %d minutes. If you did not request it, ignore this email.</p>`,
		html.EscapeString(name), html.EscapeString(purpose), html.EscapeString(code), minutes(ttl))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Your verification code", org), Body: render(org, content)}
}

func PasswordResetMessage(org, to, name, link string, ttl time.Duration) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p>
<p>We received a request to reset your password.</p>
<p><a href="%s">Reset your password</a></p>
<p>The link expires in %d minutes.</p>`,
		html.EscapeString(name), html.EscapeString(link), minutes(ttl))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Password reset", org), Body: render(org, content)}
}

func WelcomeMessage(org, to, name string) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p><p>Your membership account is now active. Welcome aboard.</p>`, html.EscapeString(name))
	return Message{To: to, Subject: fmt.Sprintf("Welcome to %s", org), Body: render(org, content)}
}

func ComplaintFiledMessage(org, to, name, number string) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p>
<p>Your complaint has been registered. Your complaint number is:</p>
<div style="font-size: 22px; font-weight: bold;">%s</div>
<p>Use it together with this email address to track the progress of your complaint.</p>`,
		html.EscapeString(name), html.EscapeString(number))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Complaint %s received", org, number), Body: render(org, content)}
}

func ComplaintStatusMessage(org, to, name, number, status, notes string) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p><p>The status of complaint <b>%s</b> is now <b>%s</b>.</p>`,
		html.EscapeString(name), html.EscapeString(number), html.EscapeString(status))
	if notes != "" {
		content += fmt.Sprintf(`<p>%s</p>`, html.EscapeString(notes))
	}
	return Message{To: to, Subject: fmt.Sprintf("[%s] Complaint %s updated", org, number), Body: render(org, content)}
}

func DonationReceivedMessage(org, to, name, reference string, amount float64) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for your donation of <b>&#8377; %.2f</b>.</p>
<p>Reference number: <b>%s</b>. A receipt is available once the payment is confirmed.</p>`,
		html.EscapeString(name), amount, html.EscapeString(reference))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Donation %s received", org, reference), Body: render(org, content)}
}

func EventRegistrationMessage(org, to, name, title string, date time.Time, location string) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p>
<p>You are registered for <b>%s</b>.</p>
<p>When: %s<br/>Where: %s</p>`,
		html.EscapeString(name), html.EscapeString(title), date.Format("02 Jan 2006 15:04"), html.EscapeString(location))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Registration confirmed: %s", org, title), Body: render(org, content)}
}

func ContactForwardMessage(org, to, name, email, phone, subject, message string) Message {
	content := fmt.Sprintf(`<p><b>From:</b> %s &lt;%s&gt; %s</p><p><b>Subject:</b> %s</p><p>%s</p>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(phone),
		html.EscapeString(subject), html.EscapeString(message))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Contact: %s", org, subject), Body: render(org, content)}
}

func CertificateIssuedMessage(org, to, name, number, title string) Message {
	content := fmt.Sprintf(`<p>Dear %s,</p><p>A certificate <b>%s</b> has been issued to you.</p><p>Certificate number: <b>%s</b></p>`,
		html.EscapeString(name), html.EscapeString(title), html.EscapeString(number))
	return Message{To: to, Subject: fmt.Sprintf("[%s] Certificate issued", org), Body: render(org, content)}
}
