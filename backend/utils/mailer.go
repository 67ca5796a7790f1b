package utils

import (
	"fmt"

	"saddwy/backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers outbound mail. Controllers depend on the interface so tests
// can record messages instead of talking to an SMTP server.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send dispatches synchronously; a delivery failure is returned to the caller
// and surfaces as a server error, never retried.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.EmailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	return dialer.DialAndSend(msg)
}

// ValidationEmail builds the account-confirmation message sent at
// registration.
func ValidationEmail(name, link string) (string, string) {
	subject := "¡Bienvenido a SaddWy! Confirma tu cuenta para comenzar"
	body := fmt.Sprintf(`Estimado %s,

¡Bienvenido a nuestro portal de programación! Estamos encantados de que te hayas registrado con nosotros.

Para completar el proceso de registro y validar tu cuenta, por favor haz clic en el siguiente enlace:

%s

Este enlace te llevará a una página donde podrás confirmar tu dirección de correo electrónico y activar tu cuenta.

Recuerda que si no has solicitado este registro, puedes ignorar este mensaje.

Atentamente,
SaddWy`, name, link)
	return subject, body
}

// RecoveryEmail builds the password-reset message.
func RecoveryEmail(name, link string) (string, string) {
	subject := "Restablecimiento de contraseña en SaddWy"
	body := fmt.Sprintf(`¡Hola %s!

Hemos recibido una solicitud para restablecer tu contraseña en SaddWy. Si no realizaste esta solicitud, puedes ignorar este correo electrónico.

Por favor, haz clic en el siguiente enlace para restablecer tu contraseña. Este enlace será válido por 24 horas, así que asegúrate de usarlo antes de que expire:

%s

Si tienes algún problema, no dudes en ponerte en contacto con nuestro equipo de soporte.

¡Gracias!

El equipo de SaddWy`, name, link)
	return subject, body
}
