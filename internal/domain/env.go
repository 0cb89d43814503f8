package domain

// FeatureFlags is the response of GET /v1/config/features.
type FeatureFlags struct {
	FeaturePSGEnabled bool              `json:"feature_psg_enabled"`
	ModelWorker       string            `json:"model_worker"`
	PacksLatest       map[string]string `json:"packs_latest"`
}

// ActiveConfig is the response of GET /v1/prompts/active. Non-empty
// fields override the matching FeatureFlags fields.
type ActiveConfig struct {
	AppConfigLabel string            `json:"appconfig_label"`
	ModelWorker    string            `json:"model_worker"`
	ModelManager   string            `json:"model_manager"`
	PacksLatest    map[string]string `json:"packs_latest"`
}

// EnvConfig is the merged environment view shown to the operator.
type EnvConfig struct {
	FeaturePSGEnabled bool
	ModelWorker       string
	ModelManager      string
	PacksLatest       map[string]string
	AppConfigLabel    string
}
