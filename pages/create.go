package pages

import (
	"net/http"

	"github.com/go-park-mail-ru/2019_1_Remastered/drafts"
	"github.com/go-park-mail-ru/2019_1_Remastered/metrics"
	"github.com/go-park-mail-ru/2019_1_Remastered/profile"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/mailru/easyjson/opt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DraftCookie кука с id черновика открытого диалога
const DraftCookie = "DRAFTID"

type createPage struct {
	Title      string
	User       *profile.Profile
	Draft      *drafts.Draft
	Templates  []*drafts.Template
	Categories []*drafts.CategoryOption
	Errors     utils.ValidationError
}

// CreateDialog диалог создания игры на текущем шаге черновика
func (h *Handler) CreateDialog(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "CreateDialog")

	d, err := h.currentDraft(r)
	if err != nil {
		if errors.Cause(err) != utils.ErrNotExists {
			h.renderError(w, logger, http.StatusInternalServerError, err)
			return
		}

		d = drafts.NewDraft()
		if err = drafts.Drafts.Create(d); err != nil {
			h.renderError(w, logger, http.StatusInternalServerError, errors.Wrap(err, "draft create error"))
			return
		}
		setDraftCookie(w, d.ID)
	}

	h.renderCreate(w, logger, http.StatusOK, d, nil)
}

// ChooseTemplate форма первого шага
func (h *Handler) ChooseTemplate(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "ChooseTemplate")

	d, ok := h.draftForPost(w, r, logger)
	if !ok {
		return
	}

	err := d.ChooseTemplate(r.PostForm.Get("template"))
	if err == nil {
		err = d.Next()
	}
	if err != nil {
		metrics.IncDraftsBlocked(drafts.StepTemplate)
		h.flowError(w, logger, d, err)
		return
	}

	h.saveAndRedirect(w, r, logger, d, "/create")
}

// SubmitDetails форма второго шага: назад или создать
func (h *Handler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "SubmitDetails")

	d, ok := h.draftForPost(w, r, logger)
	if !ok {
		return
	}

	// введённое сохраняем и при возврате назад
	form := &drafts.FormDetails{
		Title:       opt.OString(r.PostForm.Get("title")),
		Description: opt.OString(r.PostForm.Get("description")),
		Category:    opt.OString(r.PostForm.Get("category")),
	}

	if r.PostForm.Get("action") == "back" {
		// назад пускаем всегда, невалидную категорию просто не запоминаем
		if form.Validate() != nil {
			form.Category = opt.String{}
		}
		if err := d.UpdateDetails(form); err != nil {
			h.flowError(w, logger, d, err)
			return
		}

		d.Back()
		h.saveAndRedirect(w, r, logger, d, "/create")
		return
	}

	err := d.UpdateDetails(form)
	if err != nil {
		h.flowError(w, logger, d, err)
		return
	}

	if err = drafts.Submit(logger, d); err != nil {
		h.flowError(w, logger, d, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   DraftCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) currentDraft(r *http.Request) (*drafts.Draft, error) {
	cookie, err := r.Cookie(DraftCookie)
	if err != nil || cookie.Value == "" {
		return nil, utils.ErrNotExists
	}

	d, err := drafts.Drafts.Get(cookie.Value)
	if err != nil {
		return nil, errors.Wrap(err, "get draft error")
	}

	return d, nil
}

// draftForPost черновик протух или куки нет - начинаем диалог заново
func (h *Handler) draftForPost(w http.ResponseWriter, r *http.Request, logger *log.Entry) (*drafts.Draft, bool) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, logger, http.StatusBadRequest, errors.Wrap(err, "parse form error"))
		return nil, false
	}

	d, err := h.currentDraft(r)
	if err != nil {
		if errors.Cause(err) == utils.ErrNotExists {
			logger.Warn(errors.Wrap(err, "draft is gone, restarting dialog"))
			http.Redirect(w, r, "/create", http.StatusSeeOther)
		} else {
			h.renderError(w, logger, http.StatusInternalServerError, err)
		}
		return nil, false
	}

	return d, true
}

func (h *Handler) saveAndRedirect(w http.ResponseWriter, r *http.Request, logger *log.Entry,
	d *drafts.Draft, to string) {

	if err := drafts.Drafts.Save(d); err != nil {
		if errors.Cause(err) == utils.ErrNotExists {
			http.Redirect(w, r, "/create", http.StatusSeeOther)
			return
		}

		h.renderError(w, logger, http.StatusInternalServerError, errors.Wrap(err, "draft save error"))
		return
	}

	http.Redirect(w, r, to, http.StatusSeeOther)
}

// flowError ошибки валидации рисуем в самом диалоге
func (h *Handler) flowError(w http.ResponseWriter, logger *log.Entry, d *drafts.Draft, err error) {
	validErr, ok := err.(*utils.ValidationError)
	if !ok {
		h.renderError(w, logger, http.StatusInternalServerError, err)
		return
	}

	logger.Warn(errors.Wrap(validErr, "create flow blocked"))
	h.renderCreate(w, logger, http.StatusBadRequest, d, *validErr)
}

func (h *Handler) renderCreate(w http.ResponseWriter, logger *log.Entry, code int,
	d *drafts.Draft, errs utils.ValidationError) {

	h.render(w, logger, code, "create.html", &createPage{
		Title:      "Create New Game",
		User:       profile.Current,
		Draft:      d,
		Templates:  drafts.Templates,
		Categories: drafts.CategoryOptions,
		Errors:     errs,
	})
}

func setDraftCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     DraftCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
