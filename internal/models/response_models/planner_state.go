package response_models

// PlannerState mirrors what the results screen needs: which view is
// showing, the currently held plan (when visible) and the last status
// notification that fired.
type PlannerState struct {
	View       string      `json:"view"`
	Loading    bool        `json:"loading"`
	Result     *PlanResult `json:"result,omitempty"`
	LastNotice string      `json:"last_notice,omitempty"`
}
