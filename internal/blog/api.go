package blog

import (
	"net/http"

	"github.com/SergeyParamoshkin/bloglist/internal/auth"
	"github.com/SergeyParamoshkin/bloglist/internal/blogrequest"
	"github.com/SergeyParamoshkin/bloglist/internal/blogresponse"
	"github.com/SergeyParamoshkin/bloglist/internal/errresponse"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// API serves the blog resource.
type API struct {
	store  *Store
	logger *zap.SugaredLogger
}

func NewAPI(store *Store, logger *zap.SugaredLogger) *API {
	return &API{store: store, logger: logger}
}

func (a *API) ListBlogs(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, blogresponse.NewBlogListResponse(a.store.All())); err != nil {
		a.renderError(w, r, errresponse.ErrRender(err))
	}
}

// CreateBlog persists the posted Blog and returns it
// back to the client as an acknowledgement.
func (a *API) CreateBlog(w http.ResponseWriter, r *http.Request) {
	data := &blogrequest.BlogRequest{}
	if err := render.Bind(r, data); err != nil {
		a.renderError(w, r, errresponse.ErrInvalidRequest(err))

		return
	}

	blog := a.store.Add(data.Blog)
	creator, _ := auth.Subject(r.Context())
	a.logger.Infow("blog created", "id", blog.ID, "title", blog.Title, "by", creator)

	render.Status(r, http.StatusCreated)
	if err := render.Render(w, r, blogresponse.NewBlogResponse(blog)); err != nil {
		a.logger.Errorw("render blog", "error", err)
	}
}

// GetBlog returns the Blog loaded by BlogCtx.
func (a *API) GetBlog(w http.ResponseWriter, r *http.Request) {
	if err := render.Render(w, r, blogresponse.NewBlogResponse(blogFrom(r.Context()))); err != nil {
		a.renderError(w, r, errresponse.ErrRender(err))
	}
}

func (a *API) renderError(w http.ResponseWriter, r *http.Request, rd render.Renderer) {
	if err := render.Render(w, r, rd); err != nil {
		a.logger.Errorw("render error response", "error", err)
	}
}
