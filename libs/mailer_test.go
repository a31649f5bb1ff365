package libs

import (
	"bytes"
	"classifieds/models"
	"strings"
	"testing"
	"time"
)

func TestPasswordChangedMessage(t *testing.T) {
	user := &models.User{Email: "ann@example.com", FirstName: "Ann"}
	at := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	m := passwordChangedMessage("noreply@example.com", user, at)

	if got := m.GetHeader("To"); len(got) != 1 || got[0] != "ann@example.com" {
		t.Errorf("To = %v", got)
	}
	if got := m.GetHeader("From"); len(got) != 1 || got[0] != "noreply@example.com" {
		t.Errorf("From = %v", got)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	body := buf.String()
	for _, want := range []string{"Hello Ann", "2024-03-01 10:30 UTC"} {
		if !strings.Contains(body, want) {
			t.Errorf("message body missing %q", want)
		}
	}
}
