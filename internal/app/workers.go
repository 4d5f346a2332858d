package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entclinic "github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/service/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/service/conversation"
	"github.com/pawcare-vn/pawcare_backend/internal/service/notification"
	"github.com/pawcare-vn/pawcare_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Mailer   *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p.NC, p.DB, p.NotifSvc, p.Mailer)
			startMessageWorker(p.NC, p.DB, p.NotifSvc)
			startClinicWorker(p.NC, p.DB, p.NotifSvc, p.Mailer)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

func userName(u *repo.User) string {
	if u.FullName != nil {
		return *u.FullName
	}
	return ""
}

// clinicOwnerID loads the owner of the clinic an event refers to.
func clinicOwnerID(ctx context.Context, db *repo.Client, clinicID uuid.UUID) (uuid.UUID, error) {
	cl, err := db.Clinic.Query().Where(entclinic.ID(clinicID)).Only(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return cl.OwnerID, nil
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

func startAppointmentWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client) {
	loadAppt := func(msg *nats.Msg) (*repo.Appointment, bool) {
		apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return nil, false
		}
		appt, err := db.Appointment.Get(context.Background(), apptID)
		if err != nil {
			slog.Warn("appointment_worker: appointment not found", "id", apptID, "err", err)
			return nil, false
		}
		return appt, true
	}

	emailData := func(ctx context.Context, appt *repo.Appointment) (email.AppointmentEmailData, bool) {
		customer, err := db.User.Get(ctx, appt.CustomerID)
		if err != nil {
			slog.Warn("appointment_worker: customer not found", "id", appt.CustomerID, "err", err)
			return email.AppointmentEmailData{}, false
		}
		cl, err := db.Clinic.Get(ctx, appt.ClinicID)
		if err != nil {
			slog.Warn("appointment_worker: clinic not found", "id", appt.ClinicID, "err", err)
			return email.AppointmentEmailData{}, false
		}
		return email.AppointmentEmailData{
			Email:      customer.Email,
			Name:       userName(customer),
			ClinicName: cl.Name,
			Date:       appt.Date,
			Shift:      string(appt.Shift),
		}, true
	}

	// New booking: ping the clinic side so the agenda refreshes
	_, err := nc.Subscribe(appointment.SubjectCreated, func(msg *nats.Msg) {
		appt, ok := loadAppt(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		ownerID, err := clinicOwnerID(ctx, db, appt.ClinicID)
		if err != nil {
			slog.Warn("appointment_worker: clinic owner lookup failed", "clinic_id", appt.ClinicID, "err", err)
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: ownerID,
			Type:   "appointment_created",
			Title:  "Có lịch hẹn mới chờ xác nhận",
			Data:   map[string]any{"appointment_id": appt.ID.String()},
		})
		if err != nil {
			slog.Warn("appointment_worker: create notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe created failed", "err", err)
	}

	// Confirmation: notify and email the customer
	_, err = nc.Subscribe(appointment.SubjectConfirmed, func(msg *nats.Msg) {
		appt, ok := loadAppt(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		_, nErr := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: appt.CustomerID,
			Type:   "appointment_confirmed",
			Title:  "Lịch hẹn của bạn đã được xác nhận",
			Data:   map[string]any{"appointment_id": appt.ID.String()},
		})
		if nErr != nil {
			slog.Warn("appointment_worker: create notification failed", "err", nErr)
		}

		data, ok := emailData(ctx, appt)
		if !ok {
			return
		}
		if sErr := mailer.Send(ctx, email.BuildAppointmentConfirmedEmail(data)); sErr != nil {
			slog.Warn("appointment_worker: send confirmation email failed", "err", sErr)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe confirmed failed", "err", err)
	}

	// Cancellation: notify both sides, email the customer
	_, err = nc.Subscribe(appointment.SubjectCancelled, func(msg *nats.Msg) {
		appt, ok := loadAppt(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		recipients := []uuid.UUID{appt.CustomerID}
		if ownerID, oErr := clinicOwnerID(ctx, db, appt.ClinicID); oErr == nil {
			recipients = append(recipients, ownerID)
		}
		for _, userID := range recipients {
			_, nErr := notifSvc.Create(ctx, notification.CreateRequest{
				UserID: userID,
				Type:   "appointment_cancelled",
				Title:  "Lịch hẹn đã bị hủy",
				Data:   map[string]any{"appointment_id": appt.ID.String()},
			})
			if nErr != nil {
				slog.Warn("appointment_worker: create notification failed", "err", nErr)
			}
		}

		data, ok := emailData(ctx, appt)
		if !ok {
			return
		}
		if appt.CancelReason != nil {
			data.Reason = *appt.CancelReason
		}
		if sErr := mailer.Send(ctx, email.BuildAppointmentCancelledEmail(data)); sErr != nil {
			slog.Warn("appointment_worker: send cancellation email failed", "err", sErr)
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe cancelled failed", "err", err)
	}

	slog.Info("appointment_worker: started")
}

// ---------------------------------------------------------------------------
// message_worker
// ---------------------------------------------------------------------------

func startMessageWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	_, err := nc.Subscribe(conversation.SubjectMessageNew+".*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		convID, err := uuid.Parse(parts[len(parts)-1])
		if err != nil {
			return
		}
		msgID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		conv, err := db.Conversation.Get(ctx, convID)
		if err != nil {
			slog.Warn("message_worker: conversation not found", "id", convID, "err", err)
			return
		}
		message, err := db.Message.Get(ctx, msgID)
		if err != nil {
			slog.Warn("message_worker: message not found", "id", msgID, "err", err)
			return
		}

		// The recipient is whichever side did not send the message.
		recipientID := conv.CustomerID
		if message.SenderID == conv.CustomerID {
			ownerID, oErr := clinicOwnerID(ctx, db, conv.ClinicID)
			if oErr != nil {
				slog.Warn("message_worker: clinic owner lookup failed", "clinic_id", conv.ClinicID, "err", oErr)
				return
			}
			recipientID = ownerID
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: recipientID,
			Type:   "message_new",
			Title:  "Bạn có tin nhắn mới",
			Data:   map[string]any{"conversation_id": conv.ID.String()},
		})
		if err != nil {
			slog.Warn("message_worker: create notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("message_worker: subscribe message.new failed", "err", err)
	}

	slog.Info("message_worker: started")
}

// ---------------------------------------------------------------------------
// clinic_worker
// ---------------------------------------------------------------------------

func startClinicWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service, mailer *email.Client) {
	loadClinic := func(msg *nats.Msg) (*repo.Clinic, bool) {
		clinicID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return nil, false
		}
		cl, err := db.Clinic.Get(context.Background(), clinicID)
		if err != nil {
			slog.Warn("clinic_worker: clinic not found", "id", clinicID, "err", err)
			return nil, false
		}
		return cl, true
	}

	_, err := nc.Subscribe("pawcare.clinic.registered", func(msg *nats.Msg) {
		cl, ok := loadClinic(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		_, nErr := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: cl.OwnerID,
			Type:   "clinic_registered",
			Title:  "Hồ sơ phòng khám đã được gửi và đang chờ duyệt",
			Data:   map[string]any{"clinic_id": cl.ID.String()},
		})
		if nErr != nil {
			slog.Warn("clinic_worker: create notification failed", "err", nErr)
		}
	})
	if err != nil {
		slog.Error("clinic_worker: subscribe registered failed", "err", err)
	}

	_, err = nc.Subscribe("pawcare.clinic.reviewed", func(msg *nats.Msg) {
		cl, ok := loadClinic(msg)
		if !ok {
			return
		}
		ctx := context.Background()

		approved := cl.Status == entclinic.StatusApproved

		title := "Phòng khám của bạn đã được phê duyệt"
		if !approved {
			title = "Hồ sơ phòng khám của bạn đã bị từ chối"
		}
		_, nErr := notifSvc.Create(ctx, notification.CreateRequest{
			UserID: cl.OwnerID,
			Type:   "clinic_reviewed",
			Title:  title,
			Data:   map[string]any{"clinic_id": cl.ID.String()},
		})
		if nErr != nil {
			slog.Warn("clinic_worker: create notification failed", "err", nErr)
		}

		owner, oErr := db.User.Get(ctx, cl.OwnerID)
		if oErr != nil {
			slog.Warn("clinic_worker: owner not found", "id", cl.OwnerID, "err", oErr)
			return
		}

		data := email.ClinicEmailData{
			Email:      owner.Email,
			OwnerName:  userName(owner),
			ClinicName: cl.Name,
			Approved:   approved,
		}
		if cl.ReviewNote != nil {
			data.Note = *cl.ReviewNote
		}
		if sErr := mailer.Send(ctx, email.BuildClinicReviewedEmail(data)); sErr != nil {
			slog.Warn("clinic_worker: send review email failed", "err", sErr)
		}
	})
	if err != nil {
		slog.Error("clinic_worker: subscribe reviewed failed", "err", err)
	}

	slog.Info("clinic_worker: started")
}
