package request_models

// FeedbackMessageRequest is the short feedback form: an email plus a
// free-text message.
type FeedbackMessageRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// FeedbackSurveyRequest is the long-form survey: seven single-choice
// questions, four optional free-text answers (at least 10 characters
// when filled), a 1-10 rating and one single-word answer.
type FeedbackSurveyRequest struct {
	OverallExperience string `json:"overall_experience" validate:"required,oneof=excellent good average poor"`
	PlanningEase      string `json:"planning_ease" validate:"required,oneof=very_easy easy neutral difficult"`
	VisaInfoHelpful   string `json:"visa_info_helpful" validate:"required,oneof=yes partially no"`
	BudgetAccuracy    string `json:"budget_accuracy" validate:"required,oneof=accurate close off"`
	SafetyInfoClear   string `json:"safety_info_clear" validate:"required,oneof=yes somewhat no"`
	UsedEsimAdvice    string `json:"used_esim_advice" validate:"required,oneof=yes no"`
	WouldRecommend    string `json:"would_recommend" validate:"required,oneof=yes maybe no"`

	LikedMost          string `json:"liked_most" validate:"omitempty,min=10"`
	LikedLeast         string `json:"liked_least" validate:"omitempty,min=10"`
	MissingFeatures    string `json:"missing_features" validate:"omitempty,min=10"`
	AdditionalComments string `json:"additional_comments" validate:"omitempty,min=10"`

	Rating  int    `json:"rating" validate:"required,min=1,max=10"`
	OneWord string `json:"one_word" validate:"required"`
}
