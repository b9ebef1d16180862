package mailer

import (
	"Photoshare/internal/api/config"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Mailer 简单的 SMTP 发信封装
type Mailer struct {
	cfg *config.SMTPConfig
}

func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send 发送一封纯文本邮件
func (m *Mailer) Send(to, subject, body string) error {
	cfg := m.cfg
	if cfg.Host == "" || cfg.From == "" {
		return fmt.Errorf("smtp not configured")
	}
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	fromName := cfg.FromName
	if fromName == "" {
		fromName = "Photoshare"
	}
	fromHeader := fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", fromName), cfg.From)

	headers := map[string]string{
		"From":         fromHeader,
		"To":           to,
		"Subject":      mime.QEncoding.Encode("UTF-8", subject),
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}
	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if !cfg.StartTLS {
		return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg.String()))
	}

	d := net.Dialer{Timeout: 5 * time.Second}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: cfg.Host}); err != nil {
			return err
		}
	}
	if cfg.Username != "" {
		if err = c.Auth(auth); err != nil {
			return err
		}
	}
	if err = c.Mail(cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	wc, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = wc.Write([]byte(msg.String())); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
