package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string

	// Conversion flags
	Source     string // source field code (json2txt, evaluate)
	Target     string // target field code (json2txt, evaluate)
	SourceFile string // source text file path (txt2json)
	TargetFile string // target text file path (txt2json)
	Types      string // comma-separated code pair (txt2json)
	Output     string // output path override (txt2json)

	// Evaluation flags
	Provider        string
	Model           string
	PredictionsPath string
	CachePath       string
	NoCache         bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Source:          "egy",
		Target:          "tnt",
		Provider:        "openai",
		PredictionsPath: "predictions.txt",
	}
}
