package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/forms"
	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// AuthorHandler serves the author pages.
type AuthorHandler struct {
	service *app.CatalogService
}

// NewAuthorHandler creates a new author handler.
func NewAuthorHandler(service *app.CatalogService) *AuthorHandler {
	return &AuthorHandler{
		service: service,
	}
}

// authorView is the template model for a single author row.
type authorView struct {
	ID         int64
	FirstName  string
	LastName   string
	BirthDate  string
	DeathDate  string
	Sex        string
	Profession string
	Country    string
	Portrait   string
	Biography  string
}

func toAuthorView(a *domain.Author) authorView {
	return authorView{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		BirthDate:  a.BirthDateISO(),
		DeathDate:  a.DeathDateISO(),
		Sex:        a.Sex,
		Profession: a.Profession,
		Country:    a.Country,
		Portrait:   a.Portrait,
		Biography:  a.Biography,
	}
}

// List handles GET /authors and renders all authors ordered by last name.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	views := make([]authorView, 0, len(authors))
	for i := range authors {
		views = append(views, toAuthorView(&authors[i]))
	}

	c.HTML(http.StatusOK, "author_list.html", gin.H{
		"title":   "Authors",
		"authors": views,
	})
}

// NewForm handles GET /author/new and renders an empty author form.
func (h *AuthorHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_new.html", gin.H{
		"title": "New author",
	})
}

// Create handles POST /author/new. On success the form is rendered again
// with a confirmation message so another author can be added right away.
func (h *AuthorHandler) Create(c *gin.Context) {
	author, err := forms.BindAuthorCreate(c)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.CreateAuthor(c.Request.Context(), author); err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_new.html", gin.H{
		"title":   "New author",
		"message": "Author added!",
	})
}

// EditForm handles GET /author/edit?authorId=N and renders the form
// pre-filled with the author's current values.
func (h *AuthorHandler) EditForm(c *gin.Context) {
	id, err := forms.IDQuery(c, "authorId")
	if err != nil {
		renderError(c, err)
		return
	}

	author, err := h.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_edit.html", gin.H{
		"title":  "Edit author",
		"author": toAuthorView(author),
	})
}

// Update handles POST /author/edit and redirects to the author list.
// Submitting an id that no longer exists is not an error; the redirect
// happens either way.
func (h *AuthorHandler) Update(c *gin.Context) {
	author, err := forms.BindAuthorUpdate(c)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.UpdateAuthor(c.Request.Context(), author); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/authors")
}

// Delete handles GET /author/delete?authorId=N and redirects to the author
// list. Deleting an id that no longer exists is not an error.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := forms.IDQuery(c, "authorId")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/authors")
}

// RegisterRoutes registers the author page routes.
func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", h.List)
	rg.GET("/author/new", h.NewForm)
	rg.POST("/author/new", h.Create)
	rg.GET("/author/edit", h.EditForm)
	rg.POST("/author/edit", h.Update)
	rg.GET("/author/delete", h.Delete)
}
