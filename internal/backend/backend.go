// Package backend is a development server for the blog API the client
// talks to:
//
//	$ curl -X POST -d '{"username":"peter","password":"salainen"}' http://localhost:3003/api/login
//	{"token":"eyJ...","username":"peter","name":"Peter"}
//
//	$ curl http://localhost:3003/api/blogs
//	[{"id":"8f0c...","title":"React patterns","author":"Michael Chan","url":"https://reactpatterns.com/"}]
//
//	$ curl -X POST -H 'Authorization: Bearer eyJ...' -d '{"title":"t","author":"a","url":"u"}' http://localhost:3003/api/blogs
//	{"id":"3b1e...","title":"t","author":"a","url":"u"}
package backend

import (
	"context"
	"net/http"

	"github.com/SergeyParamoshkin/bloglist/internal/auth"
	"github.com/SergeyParamoshkin/bloglist/internal/blog"
	"github.com/SergeyParamoshkin/bloglist/internal/errresponse"
	"github.com/SergeyParamoshkin/bloglist/internal/loginpayload"
	"github.com/SergeyParamoshkin/bloglist/internal/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const ServiceName = "bloglist"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

// Server holds the collaborators behind the API routes.
type Server struct {
	sugarLogger *zap.SugaredLogger
	users       *user.Store
	blogs       *blog.Store
	tokens      *auth.Tokens
	metrics     *Metrics
}

// New builds a Server. metrics may be nil.
func New(logger *zap.SugaredLogger, users *user.Store, blogs *blog.Store, tokens *auth.Tokens, metrics *Metrics) *Server {
	return &Server{
		sugarLogger: logger,
		users:       users,
		blogs:       blogs,
		tokens:      tokens,
		metrics:     metrics,
	}
}

// Router returns the API router.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.Logger)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Debugw("ping")
		if _, err := w.Write([]byte("pong")); err != nil {
			logger.Errorw(err.Error())
		}
	})

	r.Post("/api/login", s.Login)

	blogs := blog.NewAPI(s.blogs, s.sugarLogger)
	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", blogs.ListBlogs)
		r.With(s.tokens.Middleware).Post("/", blogs.CreateBlog) // POST /api/blogs

		r.Route("/{blogID}", func(r chi.Router) {
			r.Use(blogs.BlogCtx)
			r.Get("/", blogs.GetBlog) // GET /api/blogs/8f0c...
		})
	})

	return r
}

// DiagRouter serves /metrics when metrics are enabled.
func (s *Server) DiagRouter() chi.Router {
	r := chi.NewRouter()
	if s.metrics != nil {
		r.Get("/metrics", s.metrics.ServeHTTP)
	}

	return r
}

// Login checks the posted credentials and answers with a session.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	data := &loginpayload.LoginRequest{}
	if err := render.Bind(r, data); err != nil {
		s.render(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	u, err := s.users.Authenticate(data.Username, data.Password)
	if err != nil {
		s.sugarLogger.Infow("login rejected", "username", data.Username)
		s.render(w, r, errresponse.ErrUnauthorized(err))

		return
	}

	token, err := s.tokens.Sign(u.Username)
	if err != nil {
		s.sugarLogger.Errorw("sign token", "username", u.Username, "error", err)
		s.render(w, r, errresponse.ErrInternal(err))

		return
	}

	s.render(w, r, loginpayload.NewLoginResponse(u, token))
}

func (s *Server) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, s.sugarLogger)))
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, rd render.Renderer) {
	if err := render.Render(w, r, rd); err != nil {
		s.sugarLogger.Errorw("render response", "error", err)
	}
}
