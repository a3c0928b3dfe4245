package app

import (
	"errors"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNotify_SwallowsDeliveryFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	tg := &fakeTelegram{fail: errors.New("network kaboom")}
	n := NewNotifier(tg, 42, logrus.NewEntry(log))

	if n.Notify("hello") {
		t.Fatal("Notify() reported success for a failed send")
	}

	last := hook.LastEntry()
	if last == nil || last.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error entry, got %+v", last)
	}
	err, _ := last.Data[logrus.ErrorKey].(error)
	if homework.KindOf(err) != homework.KindDelivery {
		t.Fatalf("logged error = %v, want delivery kind", err)
	}
}

func TestNotify_SendsToConfiguredChat(t *testing.T) {
	log, _ := test.NewNullLogger()
	tg := &fakeTelegram{}
	n := NewNotifier(tg, -100500, logrus.NewEntry(log))

	if !n.Notify("hello") {
		t.Fatal("Notify() reported failure")
	}
	if len(tg.sent) != 1 || tg.sent[0].chatID != -100500 || tg.sent[0].text != "hello" {
		t.Fatalf("sent = %v", tg.sent)
	}
}
