package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotekeeper/internal/app"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/mocks"
)

// testTemplates covers every page the handlers render, kept minimal so the
// assertions target data rather than markup.
const testTemplates = `
{{define "index.html"}}<h1>{{.title}}</h1>{{end}}
{{define "author_list.html"}}{{range .authors}}<li>{{.LastName}}, {{.FirstName}} ({{.BirthDate}}{{if .DeathDate}} - {{.DeathDate}}{{end}})</li>{{end}}{{end}}
{{define "author_new.html"}}<h1>{{.title}}</h1>{{if .message}}<p>{{.message}}</p>{{end}}{{end}}
{{define "author_edit.html"}}<form>{{.author.FirstName}} {{.author.LastName}} {{.author.BirthDate}}</form>{{end}}
{{define "quote_list.html"}}{{range .quotes}}<li>{{.Text}} - {{.Author}} [{{.Category}}] {{.Likes}}</li>{{end}}{{end}}
{{define "quote_new.html"}}{{if .message}}<p>{{.message}}</p>{{end}}{{range .authors}}<option>{{.DisplayName}}</option>{{end}}{{range .categories}}<option>{{.}}</option>{{end}}{{end}}
{{define "quote_edit.html"}}<form>{{.quote.Text}}</form>{{range .authors}}<option>{{.DisplayName}}</option>{{end}}{{end}}
{{define "error.html"}}<h1>Error {{.status}}</h1><p>{{.message}}</p>{{end}}
`

type handlerFixture struct {
	engine  *gin.Engine
	authors *mocks.MockAuthorRepository
	quotes  *mocks.MockQuoteRepository
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	authors := mocks.NewMockAuthorRepository(t)
	quotes := mocks.NewMockQuoteRepository(t)

	service := app.NewCatalogService(app.CatalogServiceConfig{
		Authors: authors,
		Quotes:  quotes,
	})

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))

	group := engine.Group("")
	NewHomeHandler().RegisterRoutes(group)
	NewAuthorHandler(service).RegisterRoutes(group)
	NewQuoteHandler(service).RegisterRoutes(group)

	return &handlerFixture{
		engine:  engine,
		authors: authors,
		quotes:  quotes,
	}
}

func (f *handlerFixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

	return rec
}

func (f *handlerFixture) post(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)

	return rec
}

func wilde() domain.Author {
	dod := mustDate("1900-11-30")

	return domain.Author{
		ID:         1,
		FirstName:  "Oscar",
		LastName:   "Wilde",
		BirthDate:  mustDate("1854-10-16"),
		DeathDate:  &dod,
		Sex:        "Male",
		Profession: "Writer",
		Country:    "Ireland",
		Portrait:   "https://example.com/wilde.jpg",
		Biography:  "Irish poet and playwright.",
	}
}

func mustDate(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestHome(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quotekeeper")
}

func TestAuthorList(t *testing.T) {
	f := newFixture(t)
	f.authors.On("List", mock.Anything).Return([]domain.Author{wilde()}, nil)

	rec := f.get("/authors")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wilde, Oscar")
	assert.Contains(t, rec.Body.String(), "1854-10-16")
	assert.Contains(t, rec.Body.String(), "1900-11-30")
}

func TestAuthorListStoreDown(t *testing.T) {
	f := newFixture(t)
	f.authors.On("List", mock.Anything).
		Return(nil, domain.NewUnavailableError("mysql", "connection refused"))

	rec := f.get("/authors")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error 503")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAuthorCreateRendersConfirmation(t *testing.T) {
	f := newFixture(t)
	f.authors.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Author) bool {
		return a.FirstName == "Oscar" && a.DeathDate != nil
	})).Return(nil)

	rec := f.post("/author/new", url.Values{
		"fName":      {"Oscar"},
		"lName":      {"Wilde"},
		"birthDate":  {"1854-10-16"},
		"birthDeath": {"1900-11-30"},
		"sex":        {"Male"},
		"profession": {"Writer"},
		"country":    {"Ireland"},
		"biography":  {"Irish poet and playwright."},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Author added!")
}

func TestAuthorCreateOnlyRequiredFields(t *testing.T) {
	f := newFixture(t)
	f.authors.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Author) bool {
		return a.FirstName == "Emily" && a.Biography == "" && a.DeathDate == nil
	})).Return(nil)

	rec := f.post("/author/new", url.Values{
		"fName":     {"Emily"},
		"lName":     {"Dickinson"},
		"birthDate": {"1830-12-10"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Author added!")
}

func TestQuoteCreateWithoutCategory(t *testing.T) {
	f := newFixture(t)
	f.quotes.On("Create", mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.Category == "" && q.Likes == nil
	})).Return(nil)
	f.authors.On("ListOptions", mock.Anything).Return([]domain.AuthorOption{
		{ID: 1, FirstName: "Emily", LastName: "Dickinson"},
	}, nil)
	f.quotes.On("ListCategories", mock.Anything).Return([]string{}, nil)

	rec := f.post("/quote/new", url.Values{
		"quote":    {"Hope is the thing with feathers."},
		"authorId": {"1"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quote added!")
}

func TestAuthorCreateMissingField(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/author/new", url.Values{
		"fName": {"Oscar"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error 400")
}

func TestAuthorEditFormPrefills(t *testing.T) {
	f := newFixture(t)

	author := wilde()
	f.authors.On("GetByID", mock.Anything, int64(1)).Return(&author, nil)

	rec := f.get("/author/edit?authorId=1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oscar Wilde")
	assert.Contains(t, rec.Body.String(), "1854-10-16")
}

func TestAuthorEditFormMissingAuthor(t *testing.T) {
	f := newFixture(t)
	f.authors.On("GetByID", mock.Anything, int64(99)).
		Return(nil, domain.NewNotFoundError("author", 99))

	rec := f.get("/author/edit?authorId=99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error 404")
}

func TestAuthorEditFormBadID(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/author/edit?authorId=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthorUpdateRedirects(t *testing.T) {
	f := newFixture(t)
	f.authors.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Author) bool {
		return a.ID == 1
	})).Return(nil)

	rec := f.post("/author/edit", url.Values{
		"authorId":   {"1"},
		"fName":      {"Oscar"},
		"lName":      {"Wilde"},
		"birthDate":  {"1854-10-16"},
		"sex":        {"Male"},
		"profession": {"Writer"},
		"country":    {"Ireland"},
		"biography":  {"Irish poet and playwright."},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/authors", rec.Header().Get("Location"))
}

func TestAuthorDeleteRedirects(t *testing.T) {
	f := newFixture(t)
	f.authors.On("Delete", mock.Anything, int64(1)).Return(nil)

	rec := f.get("/author/delete?authorId=1")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/authors", rec.Header().Get("Location"))
}

func TestQuoteList(t *testing.T) {
	f := newFixture(t)

	likes := int64(12)
	f.quotes.On("ListWithAuthors", mock.Anything).Return([]domain.QuoteWithAuthor{
		{
			Quote: domain.Quote{
				ID:       1,
				Text:     "Be yourself; everyone else is already taken.",
				AuthorID: 1,
				Category: "wisdom",
				Likes:    &likes,
			},
			AuthorFirstName: "Oscar",
			AuthorLastName:  "Wilde",
		},
		{
			Quote: domain.Quote{
				ID:       2,
				Text:     "The truth is rarely pure and never simple.",
				AuthorID: 1,
				Category: "truth",
			},
			AuthorFirstName: "Oscar",
			AuthorLastName:  "Wilde",
		},
	}, nil)

	rec := f.get("/quotes")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oscar Wilde")
	assert.Contains(t, rec.Body.String(), "[wisdom] 12")
	// Uncounted quotes render with no number at all.
	assert.Contains(t, rec.Body.String(), "[truth] ")
}

func TestQuoteNewFormLoadsOptions(t *testing.T) {
	f := newFixture(t)
	f.authors.On("ListOptions", mock.Anything).Return([]domain.AuthorOption{
		{ID: 1, FirstName: "Oscar", LastName: "Wilde"},
	}, nil)
	f.quotes.On("ListCategories", mock.Anything).Return([]string{"truth", "wisdom"}, nil)

	rec := f.get("/quote/new")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oscar Wilde")
	assert.Contains(t, rec.Body.String(), "wisdom")
}

func TestQuoteCreateRendersConfirmation(t *testing.T) {
	f := newFixture(t)
	f.quotes.On("Create", mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.AuthorID == 1 && q.Likes == nil
	})).Return(nil)
	f.authors.On("ListOptions", mock.Anything).Return([]domain.AuthorOption{
		{ID: 1, FirstName: "Oscar", LastName: "Wilde"},
	}, nil)
	f.quotes.On("ListCategories", mock.Anything).Return([]string{"wisdom"}, nil)

	rec := f.post("/quote/new", url.Values{
		"quote":    {"Be yourself; everyone else is already taken."},
		"authorId": {"1"},
		"category": {"wisdom"},
		"likes":    {""},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quote added!")
}

func TestQuoteCreateUnknownAuthor(t *testing.T) {
	f := newFixture(t)
	f.quotes.On("Create", mock.Anything, mock.Anything).
		Return(domain.NewConflictError("quote", "author does not exist"))

	rec := f.post("/quote/new", url.Values{
		"quote":    {"Attributed to nobody."},
		"authorId": {"999"},
		"category": {"misc"},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error 409")
}

func TestQuoteEditFormPrefills(t *testing.T) {
	f := newFixture(t)

	quote := &domain.Quote{
		ID:       1,
		Text:     "Be yourself; everyone else is already taken.",
		AuthorID: 1,
		Category: "wisdom",
	}
	f.quotes.On("GetByID", mock.Anything, int64(1)).Return(quote, nil)
	f.authors.On("ListOptions", mock.Anything).Return([]domain.AuthorOption{
		{ID: 1, FirstName: "Oscar", LastName: "Wilde"},
	}, nil)
	f.quotes.On("ListCategories", mock.Anything).Return([]string{"wisdom"}, nil)

	rec := f.get("/quote/edit?quoteId=1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Be yourself")
	assert.Contains(t, rec.Body.String(), "Oscar Wilde")
}

func TestQuoteEditFormMissingQuote(t *testing.T) {
	f := newFixture(t)
	f.quotes.On("GetByID", mock.Anything, int64(99)).
		Return(nil, domain.NewNotFoundError("quote", 99))
	f.authors.On("ListOptions", mock.Anything).Return([]domain.AuthorOption{}, nil).Maybe()
	f.quotes.On("ListCategories", mock.Anything).Return([]string{}, nil).Maybe()

	rec := f.get("/quote/edit?quoteId=99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteUpdateRedirects(t *testing.T) {
	f := newFixture(t)
	f.quotes.On("Update", mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.ID == 7
	})).Return(nil)

	rec := f.post("/quote/edit", url.Values{
		"quoteId":  {"7"},
		"quote":    {"The truth is rarely pure and never simple."},
		"authorId": {"1"},
		"category": {"truth"},
		"likes":    {"3"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/quotes", rec.Header().Get("Location"))
}

func TestQuoteDeleteRedirects(t *testing.T) {
	f := newFixture(t)
	f.quotes.On("Delete", mock.Anything, int64(1)).Return(nil)

	rec := f.get("/quote/delete?quoteId=1")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/quotes", rec.Header().Get("Location"))
}

func TestQuoteDeleteMissingID(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/quote/delete")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.NewNotFoundError("author", 1), want: http.StatusNotFound},
		{name: "validation", err: domain.NewValidationError("authorId", "must be a number"), want: http.StatusBadRequest},
		{name: "conflict", err: domain.NewConflictError("author", "still quoted"), want: http.StatusConflict},
		{name: "unavailable", err: domain.NewUnavailableError("mysql", "down"), want: http.StatusServiceUnavailable},
		{name: "unknown", err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
