package drafts

import (
	"net/http"

	"github.com/go-park-mail-ru/2019_1_Remastered/metrics"
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Submit проверяет черновик, пишет его в лог и выбрасывает.
// В каталог игра не попадает.
func Submit(logger *log.Entry, d *Draft) error {
	if err := d.ValidateSubmit(); err != nil {
		metrics.IncDraftsBlocked(d.Step)
		return err
	}

	logger.WithFields(log.Fields{
		"draft":       d.ID,
		"template":    d.Template,
		"title":       d.Title,
		"category":    d.Category,
		"description": d.Description,
	}).Info("creating game")

	if err := Drafts.Delete(d.ID); err != nil {
		return errors.Wrap(err, "draft delete error")
	}

	metrics.IncDraftsSubmitted(d.Template)
	return nil
}

// GetTemplates шаблоны для первого шага
func GetTemplates(w http.ResponseWriter, r *http.Request) {
	utils.WriteApplicationJSON(w, http.StatusOK, Templates)
}

// CreateDraft открывает диалог создания
func CreateDraft(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "CreateDraft")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	d := NewDraft()
	if err := Drafts.Create(d); err != nil {
		errWriter.WriteError(http.StatusInternalServerError, errors.Wrap(err, "draft create error"))
		return
	}

	utils.WriteApplicationJSON(w, http.StatusOK, d)
}

// GetDraft текущее состояние диалога
func GetDraft(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "GetDraft")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	d, ok := loadDraft(errWriter, mux.Vars(r)["draft_id"])
	if !ok {
		return
	}

	utils.WriteApplicationJSON(w, http.StatusOK, d)
}

// ChooseDraftTemplate первый шаг
func ChooseDraftTemplate(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "ChooseDraftTemplate")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	form := &FormTemplate{}
	if err := utils.DecodeBodyJSON(r.Body, form); err != nil {
		errWriter.WriteWarn(http.StatusBadRequest, errors.Wrap(utils.ErrBadJSON, "decode body error"))
		return
	}

	d, ok := loadDraft(errWriter, mux.Vars(r)["draft_id"])
	if !ok {
		return
	}

	err := d.ChooseTemplate(form.Template.V)
	if err == nil && form.Next.V {
		err = d.Next()
	}
	if err != nil {
		metrics.IncDraftsBlocked(StepTemplate)
		writeFlowError(errWriter, err)
		return
	}

	saveDraft(w, errWriter, d)
}

// UpdateDraftDetails второй шаг
func UpdateDraftDetails(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "UpdateDraftDetails")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	form := &FormDetails{}
	if err := utils.DecodeBodyJSON(r.Body, form); err != nil {
		errWriter.WriteWarn(http.StatusBadRequest, errors.Wrap(utils.ErrBadJSON, "decode body error"))
		return
	}

	d, ok := loadDraft(errWriter, mux.Vars(r)["draft_id"])
	if !ok {
		return
	}

	if err := d.UpdateDetails(form); err != nil {
		writeFlowError(errWriter, err)
		return
	}

	saveDraft(w, errWriter, d)
}

// DraftBack назад к шаблонам
func DraftBack(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "DraftBack")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	d, ok := loadDraft(errWriter, mux.Vars(r)["draft_id"])
	if !ok {
		return
	}

	d.Back()
	saveDraft(w, errWriter, d)
}

// SubmitDraft "создание" игры
func SubmitDraft(w http.ResponseWriter, r *http.Request) {
	logger := utils.GetLogger(r, "SubmitDraft")
	errWriter := utils.NewErrorResponseWriter(w, logger)

	d, ok := loadDraft(errWriter, mux.Vars(r)["draft_id"])
	if !ok {
		return
	}

	if err := Submit(logger, d); err != nil {
		writeFlowError(errWriter, err)
		return
	}

	utils.WriteApplicationJSON(w, http.StatusOK, d)
}

func loadDraft(errWriter *utils.ErrorResponseWriter, id string) (*Draft, bool) {
	d, err := Drafts.Get(id)
	if err != nil {
		if errors.Cause(err) == utils.ErrNotExists {
			errWriter.WriteWarn(http.StatusNotFound, errors.Wrap(err, "draft not exists"))
		} else {
			errWriter.WriteError(http.StatusInternalServerError, errors.Wrap(err, "get draft method error"))
		}
		return nil, false
	}

	return d, true
}

func saveDraft(w http.ResponseWriter, errWriter *utils.ErrorResponseWriter, d *Draft) {
	if err := Drafts.Save(d); err != nil {
		if errors.Cause(err) == utils.ErrNotExists {
			errWriter.WriteWarn(http.StatusNotFound, errors.Wrap(err, "draft not exists"))
		} else {
			errWriter.WriteError(http.StatusInternalServerError, errors.Wrap(err, "save draft method error"))
		}
		return
	}

	utils.WriteApplicationJSON(w, http.StatusOK, d)
}

func writeFlowError(errWriter *utils.ErrorResponseWriter, err error) {
	if validErr, ok := err.(*utils.ValidationError); ok {
		errWriter.WriteValidationError(validErr)
		return
	}

	errWriter.WriteError(http.StatusInternalServerError, err)
}
