//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/reminder"

	"github.com/stretchr/testify/assert"
)

func TestWindow_Contains(t *testing.T) {
	w := reminder.DefaultWindow()
	start := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		lead time.Duration
		want bool
	}{
		{name: "90 minutes ahead", lead: 90 * time.Minute, want: false},
		{name: "upper bound inclusive", lead: 75 * time.Minute, want: true},
		{name: "one hour ahead", lead: time.Hour, want: true},
		{name: "lower bound inclusive", lead: 45 * time.Minute, want: true},
		{name: "just under lower bound", lead: 44*time.Minute + 59*time.Second, want: false},
		{name: "already started", lead: -10 * time.Minute, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.Contains(start.Add(-tc.lead), start))
		})
	}
	assert.Equal(t, 30*time.Minute, w.Width())
}

func TestNewWindow(t *testing.T) {
	_, err := reminder.NewWindow(0, time.Hour)
	assert.ErrorIs(t, err, reminder.ErrInvalidWindow)
	_, err = reminder.NewWindow(time.Hour, 30*time.Minute)
	assert.ErrorIs(t, err, reminder.ErrInvalidWindow)

	w, err := reminder.NewWindow(30*time.Minute, time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Minute, w.Min)
}

func TestRender(t *testing.T) {
	msg := reminder.Message{
		ClientName:   "Maria da Silva",
		ServiceTitle: "Limpeza de pele",
		Date:         time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC),
		Time:         "14:00",
	}

	t.Run("portuguese placeholders", func(t *testing.T) {
		got := reminder.Render("{{nome}}: {{servico}} em {{data}} às {{horario}}", msg)
		assert.Equal(t, "Maria: Limpeza de pele em 26/10/2026 às 14:00", got)
	})

	t.Run("english placeholders", func(t *testing.T) {
		got := reminder.Render("{{name}} / {{service}} / {{date}} / {{time}}", msg)
		assert.Equal(t, "Maria / Limpeza de pele / 26/10/2026 / 14:00", got)
	})

	t.Run("blank template falls back to the default", func(t *testing.T) {
		got := reminder.Render("  ", msg)
		assert.Contains(t, got, "Maria")
		assert.Contains(t, got, "14:00")
		assert.NotContains(t, got, "{{")
	})
}
