// Command formdemo exposes the form schemas over HTTP: one POST endpoint per
// form plus an upload endpoint. Invalid submissions come back as 422 with
// field-keyed error messages, which is all a form UI needs to highlight every
// offending field at once.
package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/forms"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/upload"
)

type appConfig struct {
	Addr              string   `env:"ADDR" envDefault:":8080"`
	UploadMaxSize     int64    `env:"UPLOAD_MAX_SIZE" envDefault:"5242880"`
	UploadTypes       []string `env:"UPLOAD_ALLOWED_TYPES" envSeparator:"," envDefault:"image/jpeg,image/png,application/pdf"`
	UploadExtensions  []string `env:"UPLOAD_ALLOWED_EXTENSIONS" envSeparator:"," envDefault:"jpg,jpeg,png,pdf"`
	MultipartMemLimit int64    `env:"MULTIPART_MEM_LIMIT" envDefault:"10485760"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var cfg appConfig
	config.MustLoad(&cfg)

	uploadOpts := upload.Options{
		MaxSize:           cfg.UploadMaxSize,
		AllowedTypes:      cfg.UploadTypes,
		AllowedExtensions: cfg.UploadExtensions,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/register", formHandler(logger, forms.RegistrationSchema, forms.RegistrationFromValues))
	r.Post("/login", formHandler(logger, forms.LoginSchema, forms.LoginFromValues))
	r.Post("/contact", formHandler(logger, forms.ContactSchema, forms.ContactFromValues))
	r.Post("/profile", formHandler(logger, forms.ProfileUpdateSchema, forms.ProfileUpdateFromValues))
	r.Post("/password", formHandler(logger, forms.PasswordChangeSchema, forms.PasswordChangeFromValues))
	r.Post("/search", formHandler(logger, forms.SearchSchema, forms.SearchFromValues))
	r.Post("/upload", uploadHandler(logger, uploadOpts, cfg.MultipartMemLimit))

	logger.Info("listening", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

// formHandler decodes a submission, validates it against the schema, and
// responds with either success or the full field-keyed error set.
func formHandler[T any](logger *slog.Logger, s *schema.Schema[T], decode func(url.Values) T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]any{"error": "malformed form data"})
			return
		}

		form := decode(r.PostForm)
		if err := s.Validate(form); err != nil {
			verrs := schema.Extract(err)
			logger.Info("validation failed",
				slog.String("path", r.URL.Path),
				slog.Any("fields", verrs.Fields()),
			)
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verrs})
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func uploadHandler(logger *slog.Logger, opts upload.Options, memLimit int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(memLimit); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]any{"error": "malformed multipart data"})
			return
		}

		file, fh, err := r.FormFile("file")
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]any{"error": "missing file field"})
			return
		}
		defer func() { _ = file.Close() }()

		if err := upload.Validate(fh, opts); err != nil {
			logger.Info("upload rejected",
				slog.String("filename", fh.Filename),
				slog.String("reason", err.Error()),
			)
			respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": map[string]string{"file": err.Error()}})
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"storedName": upload.StoredName(fh.Filename),
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
