package services

import (
	"brainbox/internal/app/deps"
	drl "brainbox/internal/core/domain/rate_limiter"
	"brainbox/internal/core/services"
	acknowledgereminder "brainbox/internal/core/services/acknowledge_reminder"
	createreminder "brainbox/internal/core/services/create_reminder"
	deletedata "brainbox/internal/core/services/delete_data"
	exporthistory "brainbox/internal/core/services/export_history"
	listduereminders "brainbox/internal/core/services/list_due_reminders"
	listreminders "brainbox/internal/core/services/list_reminders"
	ratelimiting "brainbox/internal/core/services/rate_limiting"
	sendmessage "brainbox/internal/core/services/send_message"
	uploaddocument "brainbox/internal/core/services/upload_document"
	uploadimage "brainbox/internal/core/services/upload_image"
)

type Services struct {
	CreateReminder      services.Service[createreminder.Input, createreminder.Result]
	ListReminders       services.Service[listreminders.Input, listreminders.Result]
	ListDueReminders    services.Service[listduereminders.Input, listduereminders.Result]
	AcknowledgeReminder services.Service[acknowledgereminder.Input, acknowledgereminder.Result]

	SendMessage    services.Service[sendmessage.Input, sendmessage.Result]
	UploadDocument services.Service[uploaddocument.Input, uploaddocument.Result]
	UploadImage    services.Service[uploadimage.Input, uploadimage.Result]

	ExportHistory services.Service[exporthistory.Input, exporthistory.Result]
	DeleteData    services.Service[deletedata.Input, deletedata.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateReminder = createreminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.ReminderIdentityGenerator,
		deps.Now,
	)
	s.ListReminders = listreminders.New(deps.Logger, deps.ReminderRepository)
	s.ListDueReminders = listduereminders.New(deps.Logger, deps.ReminderRepository, deps.Now)
	s.AcknowledgeReminder = acknowledgereminder.New(deps.Logger, deps.ReminderRepository, deps.Now)

	s.ExportHistory = exporthistory.New(deps.Logger, deps.HistoryRepository)
	s.DeleteData = deletedata.New(
		deps.Logger,
		deps.HistoryRepository,
		deps.KnowledgeRepository,
		deps.ReminderRepository,
	)

	s.SendMessage = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: deps.Config.ChatRateLimitPerMinute},
		sendmessage.New(
			deps.Logger,
			deps.HistoryRepository,
			deps.KnowledgeRepository,
			deps.TextGenerator,
			deps.WebSearcher,
			deps.SpeechSynthesizer,
			s.CreateReminder,
			s.DeleteData,
		),
	)
	s.UploadDocument = uploaddocument.New(
		deps.Logger,
		deps.DocumentTextExtractor,
		deps.KnowledgeRepository,
		deps.TextGenerator,
	)
	s.UploadImage = uploadimage.New(
		deps.Logger,
		deps.ImageTextRecognizer,
		deps.KnowledgeRepository,
	)

	return s
}
