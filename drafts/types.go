package drafts

import (
	"github.com/go-park-mail-ru/2019_1_Remastered/utils"

	"github.com/google/uuid"
	"github.com/mailru/easyjson/opt"
)

// Difficulty сложность шаблона
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
	Expert       Difficulty = "Expert"
)

// Template заготовка, с которой начинается игра
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Templates выбор на первом шаге
var Templates = []*Template{
	{ID: "racing", Name: "Racing Track", Description: "High-speed racing with customizable tracks",
		Icon: "🏎️", Difficulty: Beginner},
	{ID: "adventure", Name: "Adventure World", Description: "Explore vast landscapes and dungeons",
		Icon: "🗺️", Difficulty: Intermediate},
	{ID: "shooter", Name: "Battle Arena", Description: "Competitive multiplayer combat",
		Icon: "🎯", Difficulty: Advanced},
	{ID: "puzzle", Name: "Puzzle Game", Description: "Brain-teasing challenges and logic",
		Icon: "🧩", Difficulty: Beginner},
	{ID: "social", Name: "Social Hub", Description: "Hangout space for friends",
		Icon: "🎪", Difficulty: Beginner},
	{ID: "blank", Name: "Blank Canvas", Description: "Start from scratch with unlimited creativity",
		Icon: "🎨", Difficulty: Expert},
}

// TemplateByID nil, если такого шаблона нет
func TemplateByID(id string) *Template {
	for _, t := range Templates {
		if t.ID == id {
			return t
		}
	}

	return nil
}

// CategoryOption значение селекта категории на втором шаге
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions категории черновика, значения в нижнем регистре
var CategoryOptions = []*CategoryOption{
	{Value: "action", Label: "Action"},
	{Value: "adventure", Label: "Adventure"},
	{Value: "racing", Label: "Racing"},
	{Value: "strategy", Label: "Strategy"},
	{Value: "simulation", Label: "Simulation"},
	{Value: "rpg", Label: "RPG"},
}

func isCategoryOption(value string) bool {
	for _, c := range CategoryOptions {
		if c.Value == value {
			return true
		}
	}

	return false
}

// Шаги диалога создания
const (
	StepTemplate = 1
	StepDetails  = 2
)

// Draft черновик игры, живёт только пока открыт диалог
type Draft struct {
	ID          string `json:"id"`
	Step        int    `json:"step"`
	Template    string `json:"template"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// NewDraft пустой черновик на первом шаге
func NewDraft() *Draft {
	return &Draft{
		ID:   uuid.New().String(),
		Step: StepTemplate,
	}
}

// FormTemplate выбор шаблона, next=true сразу переводит на второй шаг
type FormTemplate struct {
	Template opt.String `json:"template"`
	Next     opt.Bool   `json:"next"`
}

// FormDetails поля второго шага, неопределённые поля не трогаем
type FormDetails struct {
	Title       opt.String `json:"title"`
	Description opt.String `json:"description"`
	Category    opt.String `json:"category"`
}

// Validate категория либо пустая, либо из списка
func (fd *FormDetails) Validate() error {
	if fd.Category.IsDefined() && fd.Category.V != "" && !isCategoryOption(fd.Category.V) {
		return &utils.ValidationError{
			"category": utils.ErrInvalid.Error(),
		}
	}

	return nil
}
