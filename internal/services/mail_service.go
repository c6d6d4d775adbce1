package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/gmail/v1"
)

// MailService sends transactional mail (OTP codes) through the Gmail API.
// When no Gmail client is available it runs in disabled mode: sends are
// logged and succeed, so local development works without credentials.
type MailService struct {
	GmailClient *gmail.Service
	Sender      string
}

func NewMailService(gmailClient *gmail.Service, sender string) *MailService {
	if gmailClient == nil {
		log.Println("⚠️ Mail sending disabled (no Gmail client). Check credentials.")
	}
	return &MailService{GmailClient: gmailClient, Sender: sender}
}

// SendOTP delivers the password-reset code to the user's inbox.
func (s *MailService) SendOTP(ctx context.Context, to, code string) error {
	subject := "Your OTP Code"
	body := fmt.Sprintf("Your OTP code is: %s. It is valid for 10 minutes.", code)
	return s.send(ctx, to, subject, body)
}

func (s *MailService) send(ctx context.Context, to, subject, body string) error {
	if s.GmailClient == nil {
		log.Printf("📧 [disabled] Would send %q to %s", subject, to)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.Sender, to, subject, body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	// Retry transient API failures before giving up
	err := retry(3, 1*time.Second, func() error {
		_, e := s.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do()
		return e
	})
	if err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}

	log.Printf("✅ Mail %q sent to %s", subject, to)
	return nil
}

// retry executes a function with exponential backoff
func retry(attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = f()
		if err == nil {
			return nil
		}
		log.Printf("⚠️ API Error: %v. Retrying in %v...", err, sleep)
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}
