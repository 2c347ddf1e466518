package reminder

import (
	"strings"
	"time"
)

// DefaultTemplate is used when the clinic has not stored its own text.
const DefaultTemplate = "Olá {{nome}}! Lembrete do seu atendimento de {{servico}} hoje, {{data}}, às {{horario}}. Até logo!"

// Message carries the values substituted into a template.
type Message struct {
	ClientName   string
	ServiceTitle string
	Date         time.Time
	Time         string
}

var placeholders = [][2]string{
	{"{{nome}}", "{{name}}"},
	{"{{servico}}", "{{service}}"},
	{"{{data}}", "{{date}}"},
	{"{{horario}}", "{{time}}"},
}

// Render substitutes the name/service/date/time placeholders. Both the
// Portuguese and the English spellings are accepted.
func Render(tpl string, m Message) string {
	if strings.TrimSpace(tpl) == "" {
		tpl = DefaultTemplate
	}
	values := []string{
		firstName(m.ClientName),
		m.ServiceTitle,
		m.Date.Format("02/01/2006"),
		m.Time,
	}
	pairs := make([]string, 0, len(placeholders)*4)
	for i, ph := range placeholders {
		pairs = append(pairs, ph[0], values[i], ph[1], values[i])
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DefaultBookingTemplate is the staff alert sent after a self-service booking.
const DefaultBookingTemplate = "Novo agendamento: {{nome}} marcou {{servico}} para {{data}} às {{horario}}."
