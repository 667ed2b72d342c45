package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/http/forms"
	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// QuoteHandler serves the quote pages.
type QuoteHandler struct {
	service *app.CatalogService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.CatalogService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// quoteListView is the template model for a row of the quote list.
type quoteListView struct {
	ID       int64
	Text     string
	Author   string
	Category string
	Likes    string
}

// quoteFormView is the template model for the quote edit form.
type quoteFormView struct {
	ID       int64
	Text     string
	AuthorID int64
	Category string
	Likes    string
}

func likesString(likes *int64) string {
	if likes == nil {
		return ""
	}

	return strconv.FormatInt(*likes, 10)
}

func toQuoteListView(q *domain.QuoteWithAuthor) quoteListView {
	return quoteListView{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.AuthorName(),
		Category: q.Category,
		Likes:    likesString(q.Likes),
	}
}

// List handles GET /quotes and renders all quotes with their author names,
// ordered by id.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	views := make([]quoteListView, 0, len(quotes))
	for i := range quotes {
		views = append(views, toQuoteListView(&quotes[i]))
	}

	c.HTML(http.StatusOK, "quote_list.html", gin.H{
		"title":  "Quotes",
		"quotes": views,
	})
}

// renderQuoteForm renders the quote create form with fresh author options
// and category suggestions.
func (h *QuoteHandler) renderQuoteForm(c *gin.Context, message string) {
	options, categories, err := h.service.QuoteFormOptions(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "quote_new.html", gin.H{
		"title":      "New quote",
		"authors":    options,
		"categories": categories,
		"message":    message,
	})
}

// NewForm handles GET /quote/new.
func (h *QuoteHandler) NewForm(c *gin.Context) {
	h.renderQuoteForm(c, "")
}

// Create handles POST /quote/new. On success the form is rendered again
// with a confirmation message and reloaded options, so a newly distinct
// category shows up immediately.
func (h *QuoteHandler) Create(c *gin.Context) {
	quote, err := forms.BindQuoteCreate(c)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.CreateQuote(c.Request.Context(), quote); err != nil {
		renderError(c, err)
		return
	}

	h.renderQuoteForm(c, "Quote added!")
}

// EditForm handles GET /quote/edit?quoteId=N and renders the form
// pre-filled with the quote's current values, plus the author options and
// category suggestions needed for the selects.
func (h *QuoteHandler) EditForm(c *gin.Context) {
	id, err := forms.IDQuery(c, "quoteId")
	if err != nil {
		renderError(c, err)
		return
	}

	quote, options, categories, err := h.service.QuoteForEdit(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "quote_edit.html", gin.H{
		"title": "Edit quote",
		"quote": quoteFormView{
			ID:       quote.ID,
			Text:     quote.Text,
			AuthorID: quote.AuthorID,
			Category: quote.Category,
			Likes:    likesString(quote.Likes),
		},
		"authors":    options,
		"categories": categories,
	})
}

// Update handles POST /quote/edit and redirects to the quote list.
// Submitting an id that no longer exists is not an error; the redirect
// happens either way.
func (h *QuoteHandler) Update(c *gin.Context) {
	quote, err := forms.BindQuoteUpdate(c)
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.UpdateQuote(c.Request.Context(), quote); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/quotes")
}

// Delete handles GET /quote/delete?quoteId=N and redirects to the quote
// list. Deleting an id that no longer exists is not an error.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := forms.IDQuery(c, "quoteId")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.service.DeleteQuote(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/quotes")
}

// RegisterRoutes registers the quote page routes.
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.List)
	rg.GET("/quote/new", h.NewForm)
	rg.POST("/quote/new", h.Create)
	rg.GET("/quote/edit", h.EditForm)
	rg.POST("/quote/edit", h.Update)
	rg.GET("/quote/delete", h.Delete)
}
