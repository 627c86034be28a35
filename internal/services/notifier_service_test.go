package services

import (
	"context"
	"testing"

	"yournews/internal/models/db_models"
)

func TestDeliveryFailureIsLoggedNotRaised(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.fail = true

	user := env.createUser(t, "rita", db_models.RoleReader)

	// Must not panic or surface the SMTP failure.
	env.notifier.NotifyRoleDecision(context.Background(), user, db_models.RoleJournalist, true)

	var entries []db_models.NotificationLog
	if err := env.db.Find(&entries).Error; err != nil {
		t.Fatalf("loading log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("log rows = %d, want 1", len(entries))
	}
	if entries[0].Delivered {
		t.Error("failed delivery recorded as delivered")
	}
	if entries[0].Kind != db_models.NotifyRoleApproved {
		t.Errorf("kind = %s, want %s", entries[0].Kind, db_models.NotifyRoleApproved)
	}
	if entries[0].Recipient != user.Email {
		t.Errorf("recipient = %s, want %s", entries[0].Recipient, user.Email)
	}
}

func TestFanOutSkipsOwnerDuplicate(t *testing.T) {
	env := newTestEnv(t)
	_, publisher := env.createPublisher(t, "Herald")
	journalistUser, journalist := env.createJournalist(t, "hank", publisher)

	newsletter := env.createNewsletter(t, journalist, "letter")
	loaded, err := env.newsletterRepo.FindByID(context.Background(), newsletter.ID)
	if err != nil || loaded == nil {
		t.Fatalf("loading newsletter: %v", err)
	}

	env.notifier.FanOutNewsletter(context.Background(), loaded)

	// Only the confirmation, no announcement to the author's own address.
	if mails := env.mailer.sentTo(journalistUser.Email); len(mails) != 1 {
		t.Errorf("owner mails = %d, want 1", len(mails))
	}
}
