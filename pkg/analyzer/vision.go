package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/vision.md
var visionPromptRaw string

// Video sampling matches the model's 1fps frame sampling, capped so short
// clips and long recordings report comparable frame counts.
const maxSampledFrames = 20

type visionAnalyzer struct {
	gemini adapter.Gemini
}

// NewVision creates the vision modality analyzer
func NewVision(gemini adapter.Gemini) VisionAnalyzer {
	return &visionAnalyzer{gemini: gemini}
}

type visionResponse struct {
	Joy        float64 `json:"joy"`
	Sorrow     float64 `json:"sorrow"`
	Surprise   float64 `json:"surprise"`
	EyeContact float64 `json:"eye_contact"`
	SmileRatio float64 `json:"smile_ratio"`
	HeadNods   int     `json:"head_nods"`
}

var visionResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"joy":         {Type: genai.TypeNumber, Description: "Average joy probability in [0,1]"},
		"sorrow":      {Type: genai.TypeNumber, Description: "Average sorrow probability in [0,1]"},
		"surprise":    {Type: genai.TypeNumber, Description: "Average surprise probability in [0,1]"},
		"eye_contact": {Type: genai.TypeNumber, Description: "Fraction of time looking toward the camera in [0,1]"},
		"smile_ratio": {Type: genai.TypeNumber, Description: "Fraction of time smiling in [0,1]"},
		"head_nods":   {Type: genai.TypeInteger, Description: "Count of distinct affirmative head nods"},
	},
	Required: []string{"joy", "sorrow", "surprise", "eye_contact", "smile_ratio", "head_nods"},
}

func (a *visionAnalyzer) Analyze(ctx context.Context, input *Input) (*model.VisionMetrics, error) {
	data, err := os.ReadFile(input.VideoPath)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "failed to read video file",
			goerr.V("modality", model.ModalityVision), goerr.V("path", input.VideoPath))
	}

	mimeType := videoMIMEType(input.VideoPath)
	if mimeType == "" {
		return nil, goerr.Wrap(model.ErrAnalysis, "unsupported video format",
			goerr.V("modality", model.ModalityVision), goerr.V("path", input.VideoPath))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(visionPromptRaw),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   visionResponseSchema,
	}

	resp, err := a.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "vision inference failed",
			goerr.V("modality", model.ModalityVision))
	}

	var parsed visionResponse
	if err := json.Unmarshal([]byte(adapter.ResponseText(resp)), &parsed); err != nil {
		return nil, goerr.Wrap(errors.Join(model.ErrAnalysis, err), "malformed vision response",
			goerr.V("modality", model.ModalityVision))
	}

	frames := int(input.DurationSeconds)
	if frames > maxSampledFrames {
		frames = maxSampledFrames
	}
	if frames < 1 {
		frames = 1
	}

	return &model.VisionMetrics{
		Expressions: model.ExpressionScores{
			Joy:      parsed.Joy,
			Sorrow:   parsed.Sorrow,
			Surprise: parsed.Surprise,
		},
		EyeContact:     parsed.EyeContact,
		SmileRatio:     parsed.SmileRatio,
		HeadNods:       parsed.HeadNods,
		FramesAnalyzed: frames,
	}, nil
}

func videoMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	case ".webm":
		return "video/webm"
	case ".mkv":
		return "video/x-matroska"
	case ".mpg", ".mpeg":
		return "video/mpeg"
	default:
		return ""
	}
}
