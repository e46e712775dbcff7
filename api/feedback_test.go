package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/somireddylaw/feedback-api/external/mailer/mocks"
	"github.com/somireddylaw/feedback-api/schema"
)

func TestDispatchNotificationsSendsBoth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	record := schema.Feedback{Email: "client@example.com", FirstName: "Jane"}

	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().SendSubmitterConfirmation(gomock.Any(), record).Return(nil)
	notifier.EXPECT().SendAdminAlert(gomock.Any(), record).Return(nil)

	dispatchNotifications(context.Background(), notifier, record)
}

func TestDispatchNotificationsFailureDoesNotSuppressOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	record := schema.Feedback{Email: "client@example.com"}

	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().SendSubmitterConfirmation(gomock.Any(), record).
		Return(fmt.Errorf("smtp connection refused"))
	// the admin alert is still attempted
	notifier.EXPECT().SendAdminAlert(gomock.Any(), record).Return(nil)

	dispatchNotifications(context.Background(), notifier, record)
}

func TestDispatchNotificationsBoundsContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	record := schema.Feedback{Email: "client@example.com"}

	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().SendSubmitterConfirmation(gomock.Any(), record).
		DoAndReturn(func(ctx context.Context, _ schema.Feedback) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected a deadline on the notification context")
			}
			return nil
		})
	notifier.EXPECT().SendAdminAlert(gomock.Any(), record).Return(nil)

	dispatchNotifications(context.Background(), notifier, record)
}
