package services

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
)

type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailerConfig
}

func NewMailer(cfg MailerConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		logrus.Errorf("Failed to send HTML email to %s: %v", to, err)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

func BuildWelcomeEmailBody(email string) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Welcome to the Aurelia Jewels newsletter</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .header { background-color: #f8f8f8; padding: 10px 0; text-align: center; border-bottom: 1px solid #ddd; }
                .content { padding: 20px; text-align: center; }
                .footer { font-size: 0.8em; color: #777; text-align: center; margin-top: 20px; border-top: 1px solid #ddd; padding-top: 10px; }
            </style>
        </head>
        <body>
            <div class="container">
                <div class="header">
                    <h2>Welcome to Aurelia Jewels</h2>
                </div>
                <div class="content">
                    <p>Thank you for subscribing with <strong>%s</strong>.</p>
                    <p>You will be the first to hear about new collections, gold rate updates and private sales.</p>
                    <p>Warm regards,</p>
                    <p>The Aurelia Jewels team</p>
                </div>
                <div class="footer">
                    <p>You can unsubscribe at any time by replying to this email.</p>
                </div>
            </div>
        </body>
        </html>
    `, email)
}
