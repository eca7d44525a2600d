package blogresponse

import (
	"net/http"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/go-chi/render"
)

// BlogResponse is the response payload for the Blog data model.
//
// In the BlogResponse object, first a Render() is called on itself,
// then the next field, and so on, all the way down the tree.
type BlogResponse struct {
	*model.Blog
}

func NewBlogListResponse(blogs []*model.Blog) []render.Renderer {
	list := []render.Renderer{}
	for _, blog := range blogs {
		list = append(list, NewBlogResponse(blog))
	}

	return list
}

func NewBlogResponse(blog *model.Blog) *BlogResponse {
	return &BlogResponse{Blog: blog}
}

func (rd *BlogResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
