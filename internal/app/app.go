package app

import (
	"brainbox/internal/app/deps"
	"brainbox/internal/app/services"
	sendmessage "brainbox/internal/http/handlers/chat/send_message"
	deletedata "brainbox/internal/http/handlers/data/delete_data"
	exportdata "brainbox/internal/http/handlers/data/export_data"
	"brainbox/internal/http/handlers/health"
	"brainbox/internal/http/handlers/recoverer"
	acknowledgereminder "brainbox/internal/http/handlers/reminders/acknowledge_reminder"
	listduereminders "brainbox/internal/http/handlers/reminders/list_due_reminders"
	listreminders "brainbox/internal/http/handlers/reminders/list_reminders"
	uploaddocument "brainbox/internal/http/handlers/uploads/upload_document"
	uploadimage "brainbox/internal/http/handlers/uploads/upload_image"
	"fmt"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: InitRouter(deps, s),
		Addr:    fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
	}
}

func InitRouter(deps *deps.Deps, s *services.Services) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(recoverer.New(deps.Logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	router.Get("/", health.Root)
	router.Get("/health", health.Health)

	router.Method(http.MethodGet, "/dashboard", listreminders.New(s.ListReminders))
	router.Method(http.MethodGet, "/reminders-due", listduereminders.New(s.ListDueReminders))
	router.Method(http.MethodPost, "/reminders-ack", acknowledgereminder.New(s.AcknowledgeReminder))

	router.Method(http.MethodPost, "/chat", sendmessage.New(s.SendMessage))
	router.Method(http.MethodPost, "/upload-doc", uploaddocument.New(s.UploadDocument))
	router.Method(http.MethodPost, "/upload-image", uploadimage.New(s.UploadImage))

	router.Method(http.MethodGet, "/export-data", exportdata.New(s.ExportHistory))
	router.Method(http.MethodDelete, "/delete-data", deletedata.New(s.DeleteData))

	ttsPrefix := path.Clean("/" + deps.Config.TTSURLPrefix)
	router.Handle(
		ttsPrefix+"/*",
		http.StripPrefix(ttsPrefix+"/", http.FileServer(http.Dir(deps.Config.TTSDir))),
	)

	return router
}
