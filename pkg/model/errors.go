package model

import "github.com/m-mizutani/goerr/v2"

// Error taxonomy for a coaching run. Callers discriminate with errors.Is;
// stage and modality details travel as goerr values on the wrapping error.
var (
	// ErrAnalysis indicates one modality's inference failed or its input was malformed.
	ErrAnalysis = goerr.New("analysis failed")

	// ErrPipeline indicates the sequential analysis pipeline failed as a whole.
	ErrPipeline = goerr.New("analysis pipeline failed")

	// ErrRecommendation indicates the exercise search backend failed. Non-fatal:
	// the coach stage degrades to empty recommendations.
	ErrRecommendation = goerr.New("recommendation failed")

	// ErrStore indicates session persistence failed.
	ErrStore = goerr.New("session store failed")

	// ErrConfig indicates required configuration is missing or invalid.
	ErrConfig = goerr.New("invalid configuration")
)
