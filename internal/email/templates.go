package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const bookingConfirmationTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Booking Confirmation</h2>
  <p>Hi {{.Name}},</p>
  <p>Your booking has been confirmed.</p>
  <ul>
    <li>Check-in: {{.StartingDate}}</li>
    <li>Check-out: {{.EndingDate}}</li>
  </ul>
  <p>We wish you a pleasant stay!</p>
</body>
</html>
`

// TemplateManager renders the named email templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	if err := tm.add("booking_confirmation", bookingConfirmationTemplate); err != nil {
		return nil, err
	}

	return tm, nil
}

func (m *TemplateManager) add(name, body string) error {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	m.templates[name] = tmpl
	return nil
}

// Render executes the named template with data.
func (m *TemplateManager) Render(name string, data interface{}) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
