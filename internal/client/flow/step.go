// Package flow implements the onboarding flow controller: the fixed step
// sequence, the session gate, and the uniform submit-then-advance contract
// every step follows.
package flow

// Named routes understood by the navigation collaborator.
const (
	RouteLogin           = "Login"
	RouteRegister        = "Register"
	RouteHome            = "Home"
	RouteAdditionalInfo  = "AdditionalInfoScreen"
	RouteSkills          = "SkillsScreen"
	RouteCareerPathways  = "CareerPathwaysScreen"
	RouteHighlightVideo  = "HighlightVideoScreen"
	RouteProfileImage    = "ProfileImageScreen"
	RouteSettings        = "Settings"
	RouteAccountSettings = "AccountSettingsScreen"
	RouteReadMore        = "ReadMorePage"
	RouteNotifications   = "NotificationScreen"
	RouteMessages        = "MessageScreen"
)

// Step is one stage of the onboarding pipeline.
type Step string

const (
	StepLogin          Step = "login"
	StepAdditionalInfo Step = "additional_info"
	StepSkills         Step = "skills"
	StepCareerPathways Step = "career_pathways"
	StepHighlightVideo Step = "highlight_video"
	StepProfileImage   Step = "profile_image"
	StepHome           Step = "home"
)

// Order is the required onboarding sequence. Home is terminal.
var Order = []Step{
	StepLogin,
	StepAdditionalInfo,
	StepSkills,
	StepCareerPathways,
	StepHighlightVideo,
	StepProfileImage,
	StepHome,
}

var routes = map[Step]string{
	StepLogin:          RouteLogin,
	StepAdditionalInfo: RouteAdditionalInfo,
	StepSkills:         RouteSkills,
	StepCareerPathways: RouteCareerPathways,
	StepHighlightVideo: RouteHighlightVideo,
	StepProfileImage:   RouteProfileImage,
	StepHome:           RouteHome,
}

// Route returns the navigation route for the step.
func (s Step) Route() string { return routes[s] }

// Next returns the step that follows s in the pipeline. Home returns itself.
func (s Step) Next() Step {
	for i, step := range Order {
		if step == s && i+1 < len(Order) {
			return Order[i+1]
		}
	}
	return StepHome
}
