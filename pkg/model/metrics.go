package model

// Modality identifies one independent analysis dimension.
type Modality string

const (
	ModalityVision   Modality = "vision"
	ModalityVoice    Modality = "voice"
	ModalityLanguage Modality = "language"
)

// Sentiment is the overall tone label from language analysis.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ExpressionScores holds per-emotion probabilities averaged over sampled frames.
type ExpressionScores struct {
	Joy      float64 `json:"joy" firestore:"joy"`
	Sorrow   float64 `json:"sorrow" firestore:"sorrow"`
	Surprise float64 `json:"surprise" firestore:"surprise"`
}

// VisionMetrics is the fixed-schema output of the vision analyzer.
type VisionMetrics struct {
	Expressions    ExpressionScores `json:"expressions" firestore:"expressions"`
	EyeContact     float64          `json:"eye_contact" firestore:"eye_contact"`
	SmileRatio     float64          `json:"smile_ratio" firestore:"smile_ratio"`
	HeadNods       int              `json:"head_nods" firestore:"head_nods"`
	FramesAnalyzed int              `json:"frames_analyzed" firestore:"frames_analyzed"`
}

// VoiceMetrics is the fixed-schema output of the voice analyzer. The transcript
// travels alongside the metrics but is not itself a metric: it is excluded from
// Flatten and therefore from progress deltas and export rows.
type VoiceMetrics struct {
	Transcript      string  `json:"transcript" firestore:"transcript"`
	WPM             float64 `json:"wpm" firestore:"wpm"`
	PitchHz         float64 `json:"pitch_hz" firestore:"pitch_hz"`
	Energy          float64 `json:"energy" firestore:"energy"`
	Fillers         int     `json:"fillers" firestore:"fillers"`
	DurationSeconds float64 `json:"duration_seconds" firestore:"duration_seconds"`
	WordCount       int     `json:"word_count" firestore:"word_count"`
}

// LanguageMetrics is the fixed-schema output of the language analyzer.
type LanguageMetrics struct {
	GrammarScore      float64   `json:"grammar_score" firestore:"grammar_score"`
	Confidence        float64   `json:"confidence" firestore:"confidence"`
	FillerWords       int       `json:"filler_words" firestore:"filler_words"`
	SentenceCount     int       `json:"sentence_count" firestore:"sentence_count"`
	AvgSentenceLength float64   `json:"avg_sentence_length" firestore:"avg_sentence_length"`
	VocabDiversity    float64   `json:"vocab_diversity" firestore:"vocab_diversity"`
	Sentiment         Sentiment `json:"sentiment" firestore:"sentiment"`
}

// CombinedAnalysis holds one metrics record per modality. It is created once
// per run by the analysis pipeline and read-only thereafter.
type CombinedAnalysis struct {
	Vision   *VisionMetrics   `json:"vision_analysis" firestore:"vision"`
	Voice    *VoiceMetrics    `json:"voice_analysis" firestore:"voice"`
	Language *LanguageMetrics `json:"language_analysis" firestore:"language"`
}

// Flatten exposes every scalar metric under a stable "modality.name" key.
// Only numeric values participate; transcript and sentiment are excluded so
// progress deltas never compare non-numeric fields.
func (c *CombinedAnalysis) Flatten() map[string]float64 {
	m := make(map[string]float64)

	if v := c.Vision; v != nil {
		m["vision.joy"] = v.Expressions.Joy
		m["vision.sorrow"] = v.Expressions.Sorrow
		m["vision.surprise"] = v.Expressions.Surprise
		m["vision.eye_contact"] = v.EyeContact
		m["vision.smile_ratio"] = v.SmileRatio
		m["vision.head_nods"] = float64(v.HeadNods)
	}

	if v := c.Voice; v != nil {
		m["voice.wpm"] = v.WPM
		m["voice.pitch_hz"] = v.PitchHz
		m["voice.energy"] = v.Energy
		m["voice.fillers"] = float64(v.Fillers)
		m["voice.duration_seconds"] = v.DurationSeconds
		m["voice.word_count"] = float64(v.WordCount)
	}

	if v := c.Language; v != nil {
		m["language.grammar_score"] = v.GrammarScore
		m["language.confidence"] = v.Confidence
		m["language.filler_words"] = float64(v.FillerWords)
		m["language.sentence_count"] = float64(v.SentenceCount)
		m["language.avg_sentence_length"] = v.AvgSentenceLength
		m["language.vocab_diversity"] = v.VocabDiversity
	}

	return m
}

// Complete reports whether all three modality records are present.
func (c *CombinedAnalysis) Complete() bool {
	return c != nil && c.Vision != nil && c.Voice != nil && c.Language != nil
}
