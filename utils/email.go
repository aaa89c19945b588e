package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailMessage describes an outbound email. Attachment is optional.
type EmailMessage struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

// SendEmail sends an email over SMTP. When SMTP_HOST is not configured the
// send is skipped; every caller treats email as best-effort.
func SendEmail(msg EmailMessage) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		LogDebug("SMTP not configured, skipping email to %s (%s)", msg.To, msg.Subject)
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if len(msg.Attachment) > 0 {
		attachment := msg.Attachment
		m.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendWelcomeEmail greets a newly registered customer.
func SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to ArtisanCart!</h2>
		<p>Hi %s,</p>
		<p>Thank you for creating an account. Explore our handcrafted collection any time.</p>
		<p><a href="%s/store">Browse the store</a></p>
	`, name, os.Getenv("FRONTEND_URL"))

	return SendEmail(EmailMessage{To: to, Subject: "Welcome to ArtisanCart", HTMLBody: body})
}

// SendEmployeeCredentials mails a new employee their temporary password.
func SendEmployeeCredentials(to, name, password string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to the ArtisanCart team</h2>
		<p>Hi %s,</p>
		<p>An account has been created for you. Your login credentials:</p>
		<p><strong>Email:</strong> %s<br/><strong>Temporary password:</strong> %s</p>
		<p>Please change your password after your first login.</p>
	`, name, to, password)

	return SendEmail(EmailMessage{To: to, Subject: "Your ArtisanCart access credentials", HTMLBody: body})
}

// SendNewsletterWelcome thanks a new newsletter subscriber.
func SendNewsletterWelcome(to, name string) error {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}
	body := fmt.Sprintf(`
		<h2>Thanks for subscribing!</h2>
		<p>%s,</p>
		<p>You are now subscribed to the ArtisanCart newsletter. Expect exclusive offers and news about our handcrafted pieces.</p>
	`, greeting)

	return SendEmail(EmailMessage{To: to, Subject: "Welcome to the ArtisanCart newsletter", HTMLBody: body})
}

// SendOrderConfirmation confirms a paid order, attaching the invoice PDF when
// one could be generated.
func SendOrderConfirmation(to, orderNumber string, total float64, invoicePDF []byte) error {
	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>Your payment for order <strong>%s</strong> has been received.</p>
		<p>Total: %.2f EUR</p>
		<p>We will let you know as soon as your order ships.</p>
	`, orderNumber, total)

	msg := EmailMessage{To: to, Subject: "Order confirmation " + orderNumber, HTMLBody: body}
	if len(invoicePDF) > 0 {
		msg.AttachmentName = "invoice-" + orderNumber + ".pdf"
		msg.Attachment = invoicePDF
	}
	return SendEmail(msg)
}
