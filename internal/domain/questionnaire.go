package domain

import "fmt"

// Question is one page of the preference questionnaire
type Question struct {
	Description string
	ID          string
	Multi       bool
	Options     []string
	Title       string
}

// Question IDs
const (
	QuestionDiet      = "diet"
	QuestionHousehold = "household"
	QuestionShopTime  = "shop_time"
)

// Questionnaire is the canonical list of preference questions, in display order.
var Questionnaire = []Question{
	{
		ID:          QuestionHousehold,
		Title:       "Fresh means today, not last week.",
		Description: "Who are you shopping for?",
		Multi:       true,
		Options:     []string{"Just me", "Me & my partner", "Family with kids", "Elders at home", "Pets"},
	},
	{
		ID:      QuestionDiet,
		Title:   "What suits your plate best?",
		Options: []string{"Vegetarian", "Non-vegetarian", "Vegan", "Eggetarian"},
	},
	{
		ID:      QuestionShopTime,
		Title:   "When do you usually shop?",
		Options: []string{"Morning", "Afternoon", "Evening", "Night"},
	},
}

// Preferences holds the questionnaire answers. Empty fields mean skipped.
type Preferences struct {
	Diet      string   `json:"diet,omitempty"`
	Household []string `json:"household,omitempty"`
	ShopTime  string   `json:"shop_time,omitempty"`
}

// IsEmpty reports whether every question was skipped
func (p Preferences) IsEmpty() bool {
	return len(p.Household) == 0 && p.Diet == "" && p.ShopTime == ""
}

// GetQuestionByID returns a question by its ID, or nil if not found.
func GetQuestionByID(id string) *Question {
	for i := range Questionnaire {
		if Questionnaire[i].ID == id {
			return &Questionnaire[i]
		}
	}
	return nil
}

// HasOption reports whether option is one of the question's options
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Validate checks every answer against the questionnaire
func (p Preferences) Validate() error {
	household := GetQuestionByID(QuestionHousehold)
	seen := make(map[string]bool, len(p.Household))
	for _, answer := range p.Household {
		if !household.HasOption(answer) {
			return fmt.Errorf("%w: unknown household option '%s'", ErrInvalidPreferences, answer)
		}
		if seen[answer] {
			return fmt.Errorf("%w: household option '%s' selected twice", ErrInvalidPreferences, answer)
		}
		seen[answer] = true
	}

	if p.Diet != "" && !GetQuestionByID(QuestionDiet).HasOption(p.Diet) {
		return fmt.Errorf("%w: unknown diet '%s'", ErrInvalidPreferences, p.Diet)
	}
	if p.ShopTime != "" && !GetQuestionByID(QuestionShopTime).HasOption(p.ShopTime) {
		return fmt.Errorf("%w: unknown shop time '%s'", ErrInvalidPreferences, p.ShopTime)
	}
	return nil
}
