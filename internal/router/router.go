package router

import (
	"database/sql"
	"net/http"
	"os"

	"gallos-breeding-api/internal/adapters/capabilities/planlimits"
	"gallos-breeding-api/internal/adapters/media/cloudinary"
	mem "gallos-breeding-api/internal/adapters/storage/memory"
	pg "gallos-breeding-api/internal/adapters/storage/postgres"
	"gallos-breeding-api/internal/domain/gallos"
	"gallos-breeding-api/internal/domain/inversiones"
	"gallos-breeding-api/internal/domain/pagos"
	"gallos-breeding-api/internal/domain/suscripciones"
	"gallos-breeding-api/internal/domain/topes"
	"gallos-breeding-api/internal/domain/vacunas"
	"gallos-breeding-api/internal/middleware"
	"gallos-breeding-api/internal/platform/config"
	"gallos-breeding-api/internal/platform/logger"
	"gallos-breeding-api/internal/ports/auth"
	"gallos-breeding-api/internal/ports/media"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "gallos-breeding-api/docs"
)

type Options struct {
	Config *config.Config
	Log    logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		galloRepo       gallos.Repository
		topeRepo        topes.Repository
		vacunaRepo      vacunas.Repository
		inversionRepo   inversiones.Repository
		pagoRepo        pagos.Repository
		suscripcionRepo suscripciones.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil && opts.Config != nil && opts.Config.DatabaseURL != "" {
		if opened, err := pg.Open(opts.Config.DatabaseURL); err == nil {
			db = opened
		} else if opts.Log != nil {
			opts.Log.Warn("no se pudo abrir Postgres, se usan repos en memoria", map[string]any{"error": err.Error()})
		}
	}
	if db == nil {
		if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
			if opened, err := pg.Open(dsn); err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		galloRepo = pg.NewGallosRepo(db)
		topeRepo = pg.NewTopesRepo(db)
		vacunaRepo = pg.NewVacunasRepo(db)
		inversionRepo = pg.NewInversionesRepo(db)
		pagoRepo = pg.NewPagosRepo(db)
		suscripcionRepo = pg.NewSuscripcionesRepo(db)
	} else {
		galloRepo = mem.NewGalloRepo()
		topeRepo = mem.NewTopeRepo()
		vacunaRepo = mem.NewVacunaRepo(galloRepo)
		inversionRepo = mem.NewInversionRepo()
		pagoRepo = mem.NewPagoRepo()
		suscripcionRepo = mem.NewSuscripcionRepo()
	}

	// Services por módulo
	suscripcionesSvc := suscripciones.NewService(suscripcionRepo)

	allowAll := opts.Config != nil && opts.Config.AllowAllLimits
	limits := planlimits.New(suscripcionesSvc, opts.Log, allowAll)

	gallosSvc := gallos.NewService(galloRepo, limits)
	topesSvc := topes.NewService(topeRepo, limits)
	vacunasSvc := vacunas.NewService(vacunaRepo, limits)
	inversionesSvc := inversiones.NewService(inversionRepo)
	pagosSvc := pagos.NewService(pagoRepo)

	var photos media.Resolver
	if opts.Config != nil && opts.Config.CloudinaryCloudName != "" {
		photos = cloudinary.NewClient(cloudinary.Config{
			CloudName: opts.Config.CloudinaryCloudName,
			APIKey:    opts.Config.CloudinaryAPIKey,
			APISecret: opts.Config.CloudinaryAPISecret,
		})
	}

	// Rutas por módulo
	gallos.RegisterRoutes(r, gallosSvc, photos, opts.Log)
	topes.RegisterRoutes(r, topesSvc, gallosSvc)
	vacunas.RegisterRoutes(r, vacunasSvc, gallosSvc)
	inversiones.RegisterRoutes(r, inversionesSvc)
	pagos.RegisterRoutes(r, pagosSvc)
	suscripciones.RegisterRoutes(r, suscripcionesSvc)

	return r
}
