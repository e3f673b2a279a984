package pages

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-park-mail-ru/2019_1_Remastered/drafts"
	"github.com/go-park-mail-ru/2019_1_Remastered/games"
	"github.com/go-park-mail-ru/2019_1_Remastered/profile"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"home.html", "profile.html", "create.html", "error.html"}

var funcs = template.FuncMap{
	"playerCount": games.FormatPlayerCount,
	"difficultyClass": func(d drafts.Difficulty) string {
		switch d {
		case drafts.Beginner:
			return "badge-green"
		case drafts.Intermediate:
			return "badge-yellow"
		case drafts.Advanced:
			return "badge-orange"
		case drafts.Expert:
			return "badge-red"
		default:
			return "badge-gray"
		}
	},
}

// Handler хранит темплейты страниц, каждая страница парсится вместе с layout
type Handler struct {
	Tmpls map[string]*template.Template
}

// New парсит все страницы из embed
func New() (*Handler, error) {
	h := &Handler{
		Tmpls: make(map[string]*template.Template, len(pageNames)),
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		h.Tmpls[name] = tmpl
	}

	return h, nil
}

// Static отдаёт css и картинки из embed
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// каталог вшит в бинарь, ошибки тут быть не может
		panic(err)
	}

	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// render сначала рисует в буфер, чтобы не отдать половину страницы
func (h *Handler) render(w http.ResponseWriter, logger *log.Entry, code int, name string, data interface{}) {
	tmpl, ok := h.Tmpls[name]
	if !ok {
		logger.Error(errors.Errorf("template %s not found", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf := &bytes.Buffer{}
	if err := tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		logger.Error(errors.Wrapf(err, "execute template %s", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w) //nolint: errcheck
}

type errorPage struct {
	Title   string
	User    *profile.Profile
	Code    int
	Message string
}

func (h *Handler) renderError(w http.ResponseWriter, logger *log.Entry, code int, err error) {
	if code >= http.StatusInternalServerError {
		logger.Error(errors.Wrapf(err, "HTTP %s[%d]", http.StatusText(code), code))
	} else {
		logger.Warn(errors.Wrapf(err, "HTTP %s[%d]", http.StatusText(code), code))
	}

	h.render(w, logger, code, "error.html", &errorPage{
		Title:   http.StatusText(code),
		User:    profile.Current,
		Code:    code,
		Message: http.StatusText(code),
	})
}

// NotFound страница 404 для роутера
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "NotFound")
	h.renderError(w, logger, http.StatusNotFound, errors.Errorf("no route for %s", r.URL.Path))
}
