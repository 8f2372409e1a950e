// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sbassa/tutorhub/internal/app/system/htmlsanitize"
)

// Email holds a fully built message ready to hand to a Mailer.
type Email struct {
	Subject  string
	HTMLBody string
}

// ContactEmailData holds data for the contact notification template.
type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Message template.HTML
}

// BuildContactEmail creates the notification sent when a contact message is
// submitted. The submitted fields are escaped or sanitized before they are
// embedded in the HTML body.
func BuildContactEmail(name, email, phone, message string) Email {
	data := ContactEmailData{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: htmlsanitize.PrepareForDisplay(message),
	}
	return Email{
		Subject:  fmt.Sprintf("Nouveau contact de %s", name),
		HTMLBody: buildContactHTML(data),
	}
}

func buildContactHTML(data ContactEmailData) string {
	tmpl := template.Must(template.New("contact").Parse(contactHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const contactHTMLTemplate = `<h2>Nouveau message de contact</h2>
<p><strong>Nom:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Téléphone:</strong> {{.Phone}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`
