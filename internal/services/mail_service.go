package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	Send(to, subject, body string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@yournews.com"
	FromName   string // display name
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available

	AppName string // used in header and footer
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("mailHTML").Parse(mailHTMLTemplate))
	textTpl := template.Must(template.New("mailText").Parse(mailTextTemplate))

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

type mailData struct {
	Title   string
	Body    string
	AppName string
	Year    int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f4f5; color: #18181b; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 32px auto; background: #ffffff; border-radius: 8px; overflow: hidden; border: 1px solid #e4e4e7; }
    .header { padding: 24px 32px; border-bottom: 1px solid #e4e4e7; font-weight: 700; font-size: 20px; color: #1d4ed8; }
    .content { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 22px; }
    p { margin: 0 0 16px; line-height: 1.6; white-space: pre-line; }
    .footer { padding: 16px 32px; color: #71717a; font-size: 12px; border-top: 1px solid #e4e4e7; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="content">
      <h1>{{.Title}}</h1>
      <p>{{.Body}}</p>
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}. All rights reserved.</div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Body}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) Send(to, subject, body string) error {
	data := mailData{
		Title:   subject,
		Body:    body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()
		return s.transmit(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.transmit(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) transmit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", name, s.cfg.From)
}
