package drafts

import (
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"
)

// ChooseTemplate запоминает шаблон, шаг не меняется
func (d *Draft) ChooseTemplate(id string) error {
	if id == "" {
		return &utils.ValidationError{
			"template": utils.ErrRequired.Error(),
		}
	}

	if TemplateByID(id) == nil {
		return &utils.ValidationError{
			"template": utils.ErrInvalid.Error(),
		}
	}

	d.Template = id
	return nil
}

// Next переход с выбора шаблона на детали, без шаблона нельзя
func (d *Draft) Next() error {
	if d.Step != StepTemplate {
		return &utils.ValidationError{
			"step": utils.ErrInvalid.Error(),
		}
	}

	if d.Template == "" {
		return &utils.ValidationError{
			"template": utils.ErrRequired.Error(),
		}
	}

	d.Step = StepDetails
	return nil
}

// Back возврат к шаблонам, введённое не теряется
func (d *Draft) Back() {
	d.Step = StepTemplate
}

// UpdateDetails применяет только определённые поля формы
func (d *Draft) UpdateDetails(form *FormDetails) error {
	if d.Step != StepDetails {
		return &utils.ValidationError{
			"step": utils.ErrInvalid.Error(),
		}
	}

	if err := form.Validate(); err != nil {
		return err
	}

	if form.Title.IsDefined() {
		d.Title = form.Title.V
	}
	if form.Description.IsDefined() {
		d.Description = form.Description.V
	}
	if form.Category.IsDefined() {
		d.Category = form.Category.V
	}

	return nil
}

// ValidateSubmit создать можно только со второго шага с названием и категорией
func (d *Draft) ValidateSubmit() error {
	if d.Step != StepDetails {
		return &utils.ValidationError{
			"step": utils.ErrInvalid.Error(),
		}
	}

	errs := utils.ValidationError{}
	if d.Title == "" {
		errs["title"] = utils.ErrRequired.Error()
	}

	if d.Category == "" {
		errs["category"] = utils.ErrRequired.Error()
	} else if !isCategoryOption(d.Category) {
		errs["category"] = utils.ErrInvalid.Error()
	}

	if len(errs) == 0 {
		return nil
	}

	return &errs
}
