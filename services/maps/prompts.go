package maps

//go:generate mockgen -destination=mocks/mock_prompts.go -package=mocks github.com/piresc/nearbycabs/services/maps PromptService

// PromptService answers permission and location-service questions and shows the system prompts.
// Prompt outcomes come back later through ScreenUC.OnPermissionResult, never from inside a call.
type PromptService interface {
	IsPermissionGranted() bool
	IsLocationEnabled() bool
	RequestPermission(requestCode int)
	ShowEnablementDialog()
	ShowNotice(message string)
}
