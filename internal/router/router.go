package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	mailsmtp "petsync/internal/adapters/mail/smtp"
	mem "petsync/internal/adapters/storage/memory"
	pg "petsync/internal/adapters/storage/postgres"
	"petsync/internal/domain/dailyactivities"
	"petsync/internal/domain/feedings"
	"petsync/internal/domain/medicalhistories"
	"petsync/internal/domain/pets"
	"petsync/internal/domain/users"
	"petsync/internal/httpapi"
	"petsync/internal/middleware"
	"petsync/internal/platform/config"
	"petsync/internal/platform/token"
	"petsync/internal/ports/notify"
)

type Options struct {
	Config config.Config
	Logger *zap.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: reemplaza el mailer SMTP (tests).
	Mailer notify.ResetSender
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{opts.Config.FrontendURL},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		usersRepo            users.Repository
		petsRepo             pets.Repository
		feedingsRepo         feedings.Repository
		medicalHistoriesRepo medicalhistories.Repository
		dailyActivitiesRepo  dailyactivities.Repository
	)

	if opts.DB != nil {
		usersRepo = pg.NewUsersRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
		feedingsRepo = pg.NewFeedingsRepo(opts.DB)
		medicalHistoriesRepo = pg.NewMedicalHistoriesRepo(opts.DB)
		dailyActivitiesRepo = pg.NewDailyActivitiesRepo(opts.DB)
	} else {
		store := mem.NewStore()
		usersRepo = mem.NewUsersRepo(store)
		petsRepo = mem.NewPetsRepo(store)
		feedingsRepo = mem.NewFeedingsRepo(store)
		medicalHistoriesRepo = mem.NewMedicalHistoriesRepo(store)
		dailyActivitiesRepo = mem.NewDailyActivitiesRepo(store)
	}

	mailer := opts.Mailer
	if mailer == nil {
		mailer = mailsmtp.NewMailer(mailsmtp.Options{
			Host: opts.Config.MailHost,
			Port: opts.Config.MailPort,
			User: opts.Config.MailUser,
			Pass: opts.Config.MailPass,
		})
	}

	tokens := token.NewService(opts.Config.Secret, opts.Config.ResetTokenTTL)

	// Services por módulo
	usersSvc := users.NewService(usersRepo, tokens, mailer, opts.Config.FrontendURL, log)
	petsSvc := pets.NewService(petsRepo)
	feedingsSvc := feedings.NewService(feedingsRepo)
	medicalHistoriesSvc := medicalhistories.NewService(medicalHistoriesRepo)
	dailyActivitiesSvc := dailyactivities.NewService(dailyActivitiesRepo)

	rp := httpapi.NewResponder(log)

	// Rutas por módulo, todas bajo /api/v1
	r.Route("/api/v1", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, rp)
		pets.RegisterRoutes(api, petsSvc, usersSvc, rp)
		feedings.RegisterRoutes(api, feedingsSvc, petsSvc, rp)
		medicalhistories.RegisterRoutes(api, medicalHistoriesSvc, petsSvc, rp)
		dailyactivities.RegisterRoutes(api, dailyActivitiesSvc, petsSvc, rp)
	})

	return r
}
