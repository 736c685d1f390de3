package domain

// StageContent is the narrative text for each of the six roadmap stages.
type StageContent struct {
	HighSchool    string
	Undergraduate string
	Graduate      string
	Doctorate     string
	Postdoctoral  string
	Career        string
}

// Text returns the field for the given stage, or "" for an invalid stage.
func (c StageContent) Text(s Stage) string {
	switch s {
	case StageHighSchool:
		return c.HighSchool
	case StageUndergraduate:
		return c.Undergraduate
	case StageGraduate:
		return c.Graduate
	case StageDoctorate:
		return c.Doctorate
	case StagePostdoctoral:
		return c.Postdoctoral
	case StageCareer:
		return c.Career
	default:
		return ""
	}
}

// RoadmapStage is one generated step of a career roadmap.
type RoadmapStage struct {
	Ordinal Stage  `json:"ordinal" yaml:"ordinal"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}
