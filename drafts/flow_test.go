package drafts

import (
	"reflect"
	"testing"

	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/mailru/easyjson/opt"
)

func validationFields(t *testing.T, err error) utils.ValidationError {
	t.Helper()

	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	ve, ok := err.(*utils.ValidationError)
	if !ok {
		t.Fatalf("expected *utils.ValidationError, got %T", err)
	}

	return *ve
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	if d.Step != StepTemplate {
		t.Fatalf("new draft must start at step 1, got %d", d.Step)
	}
	if d.ID == "" || d.ID == NewDraft().ID {
		t.Fatalf("draft ids must be unique, got %q", d.ID)
	}
}

func TestNextWithoutTemplateBlocked(t *testing.T) {
	d := NewDraft()

	errs := validationFields(t, d.Next())
	if !reflect.DeepEqual(errs, utils.ValidationError{"template": "required"}) {
		t.Fatalf("unexpected errors %v", errs)
	}
	if d.Step != StepTemplate {
		t.Fatalf("step must not change, got %d", d.Step)
	}
}

func TestChooseTemplate(t *testing.T) {
	d := NewDraft()

	errs := validationFields(t, d.ChooseTemplate("moba"))
	if errs["template"] != "invalid" {
		t.Fatalf("unexpected errors %v", errs)
	}

	errs = validationFields(t, d.ChooseTemplate(""))
	if errs["template"] != "required" {
		t.Fatalf("unexpected errors %v", errs)
	}

	if err := d.ChooseTemplate("puzzle"); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if d.Template != "puzzle" || d.Step != StepTemplate {
		t.Fatalf("unexpected draft %+v", d)
	}

	if err := d.Next(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if d.Step != StepDetails {
		t.Fatalf("expected step 2, got %d", d.Step)
	}

	// со второго шага дальше некуда
	errs = validationFields(t, d.Next())
	if errs["step"] != "invalid" {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func detailsDraft(t *testing.T) *Draft {
	t.Helper()

	d := NewDraft()
	if err := d.ChooseTemplate("racing"); err != nil {
		t.Fatal(err)
	}
	if err := d.Next(); err != nil {
		t.Fatal(err)
	}

	return d
}

func TestUpdateDetails(t *testing.T) {
	d := NewDraft()
	errs := validationFields(t, d.UpdateDetails(&FormDetails{Title: opt.OString("x")}))
	if errs["step"] != "invalid" {
		t.Fatalf("details on step 1 must be rejected, got %v", errs)
	}

	d = detailsDraft(t)
	err := d.UpdateDetails(&FormDetails{
		Title:       opt.OString("Moon Rally"),
		Description: opt.OString("Low gravity"),
		Category:    opt.OString("racing"),
	})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	// неопределённые поля остаются как были
	if err = d.UpdateDetails(&FormDetails{Description: opt.OString("")}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if d.Title != "Moon Rally" || d.Category != "racing" || d.Description != "" {
		t.Fatalf("unexpected draft %+v", d)
	}

	errs = validationFields(t, d.UpdateDetails(&FormDetails{Category: opt.OString("Racing")}))
	if errs["category"] != "invalid" {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func TestValidateSubmit(t *testing.T) {
	d := NewDraft()
	errs := validationFields(t, d.ValidateSubmit())
	if !reflect.DeepEqual(errs, utils.ValidationError{"step": "invalid"}) {
		t.Fatalf("unexpected errors %v", errs)
	}

	d = detailsDraft(t)
	errs = validationFields(t, d.ValidateSubmit())
	if !reflect.DeepEqual(errs, utils.ValidationError{"title": "required", "category": "required"}) {
		t.Fatalf("unexpected errors %v", errs)
	}

	d.Category = "rpg"
	errs = validationFields(t, d.ValidateSubmit())
	if !reflect.DeepEqual(errs, utils.ValidationError{"title": "required"}) {
		t.Fatalf("empty title must block submit, got %v", errs)
	}

	d.Title = "Dungeon"
	if err := d.ValidateSubmit(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
}

func TestBackKeepsFields(t *testing.T) {
	d := detailsDraft(t)
	d.Title = "Moon Rally"

	d.Back()
	if d.Step != StepTemplate || d.Title != "Moon Rally" || d.Template != "racing" {
		t.Fatalf("unexpected draft %+v", d)
	}

	if err := d.Next(); err != nil {
		t.Fatalf("template is kept, next must pass: %s", err)
	}
}

func TestTemplateByID(t *testing.T) {
	if len(Templates) != 6 {
		t.Fatalf("expected 6 templates, got %d", len(Templates))
	}

	for _, tmpl := range Templates {
		if TemplateByID(tmpl.ID) != tmpl {
			t.Fatalf("template %s is not found by id", tmpl.ID)
		}
	}

	if TemplateByID("nope") != nil {
		t.Fatal("unknown template must be nil")
	}
}
