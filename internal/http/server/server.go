package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bloglist/internal/config"
	"bloglist/internal/domain/models"
	"bloglist/internal/http/handlers/blogs/blog_stats"
	"bloglist/internal/http/handlers/blogs/create_blog"
	"bloglist/internal/http/handlers/blogs/delete_blog"
	"bloglist/internal/http/handlers/blogs/get_blog"
	"bloglist/internal/http/handlers/blogs/list_blogs"
	"bloglist/internal/http/handlers/blogs/update_blog"
	"bloglist/internal/http/handlers/login"
	authmw "bloglist/internal/http/handlers/middlewares/auth"
	loggermw "bloglist/internal/http/handlers/middlewares/logger"
	"bloglist/internal/http/handlers/middlewares/recovery"
	"bloglist/internal/http/handlers/system/getping"
	"bloglist/internal/http/handlers/users/delete_user"
	"bloglist/internal/http/handlers/users/list_users"
	"bloglist/internal/http/handlers/users/register"
	"bloglist/internal/http/httputils"
	blogssvc "bloglist/internal/services/blogs"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type UserService interface {
	Register(ctx context.Context, username, name, password string) (models.User, error)
	VerifyCredentials(ctx context.Context, username, password string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

type TokenService interface {
	Issue(user models.User) (string, error)
}

type BlogService interface {
	Create(ctx context.Context, tokenString string, in blogssvc.Input) (models.Blog, error)
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id string) (models.Blog, error)
	GetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error)
	Owners(ctx context.Context, blogList []models.Blog) (map[string]models.User, error)
	Update(ctx context.Context, id string, in blogssvc.Input) (models.Blog, error)
	Delete(ctx context.Context, tokenString, id string) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	httpServer *http.Server
	router     *mux.Router
	log        *zerolog.Logger
	cfg        config.Config
	users      UserService
	tokens     TokenService
	blogs      BlogService
	store      Pinger
}

func NewServer(log *zerolog.Logger, cfg config.Config, users UserService, tokens TokenService, blogs BlogService, store Pinger) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if users == nil || tokens == nil || blogs == nil {
		return nil, errors.New("services cannot be nil")
	}

	s := &Server{
		router: mux.NewRouter(),
		log:    log,
		cfg:    cfg,
		users:  users,
		tokens: tokens,
		blogs:  blogs,
		store:  store,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(recovery.MiddlewareRecovery(s.log))
	s.router.Use(loggermw.MiddlewareLogging(s.log))
	s.router.Use(authmw.MiddlewareTokenExtractor())

	s.router.HandleFunc("/ping", getping.HandlerPing(s.store)).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", register.HandlerRegisterUser(s.users)).Methods("POST")
	api.HandleFunc("/users", list_users.HandlerListUsers(s.users, s.blogs)).Methods("GET")
	api.HandleFunc("/users/{id}", delete_user.HandlerDeleteUser(s.users)).Methods("DELETE")

	api.HandleFunc("/login", login.HandlerLogin(s.users, s.tokens)).Methods("POST")

	// /blogs/stats before /blogs/{id} so "stats" never binds as an id
	api.HandleFunc("/blogs/stats", blog_stats.HandlerBlogStats(s.blogs)).Methods("GET")
	api.HandleFunc("/blogs", list_blogs.HandlerListBlogs(s.blogs)).Methods("GET")
	api.HandleFunc("/blogs", create_blog.HandlerCreateBlog(s.blogs)).Methods("POST")
	api.HandleFunc("/blogs/{id}", get_blog.HandlerGetBlog(s.blogs)).Methods("GET")
	api.HandleFunc("/blogs/{id}", update_blog.HandlerUpdateBlog(s.blogs)).Methods("PUT")
	api.HandleFunc("/blogs/{id}", delete_blog.HandlerDeleteBlog(s.blogs)).Methods("DELETE")

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, "unknown endpoint")
	})
}

// Router exposes the configured handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
