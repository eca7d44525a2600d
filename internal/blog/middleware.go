package blog

import (
	"context"
	"net/http"

	"github.com/SergeyParamoshkin/bloglist/internal/errresponse"
	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ctxKey struct{}

// BlogCtx middleware is used to load a Blog object from
// the URL parameters passed through as the request. In case
// the Blog could not be found, we stop here and return a 404.
func (a *API) BlogCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		blog, err := a.store.Get(chi.URLParam(r, "blogID"))
		if err != nil {
			if err = render.Render(w, r, errresponse.ErrNotFound); err != nil {
				a.logger.Errorw("render not found", "error", err)
			}

			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, blog)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func blogFrom(ctx context.Context) *model.Blog {
	// BlogCtx guarantees the value; the recoverer covers a wiring mistake.
	return ctx.Value(ctxKey{}).(*model.Blog)
}
