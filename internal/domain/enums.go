package domain

// CareerID identifies a career. The set of valid ids is closed: every career
// the portal knows about has a constant below.
type CareerID string

const (
	CareerAstrophysicist     CareerID = "astrophysicist"
	CareerPlanetaryScientist CareerID = "planetary_scientist"
	CareerAstrobiologist     CareerID = "astrobiologist"
	CareerCosmologist        CareerID = "cosmologist"
	CareerHeliophysicist     CareerID = "heliophysicist"
	CareerAerospaceEngineer  CareerID = "aerospace_engineer"
	CareerMechanicalEngineer CareerID = "mechanical_engineer"
	CareerSoftwareEngineer   CareerID = "software_engineer"
	CareerRoboticsEngineer   CareerID = "robotics_engineer"
	CareerPropulsionEngineer CareerID = "propulsion_engineer"
	CareerFlightDirector     CareerID = "flight_director"
	CareerMissionPlanner     CareerID = "mission_planner"
	CareerLaunchDirector     CareerID = "launch_director"
	CareerSpacecraftCapcom   CareerID = "spacecraft_communicator"
	CareerPilotAstronaut     CareerID = "pilot_astronaut"
	CareerMissionSpecialist  CareerID = "mission_specialist"
	CareerPayloadSpecialist  CareerID = "payload_specialist"
	CareerSpaceLawyer        CareerID = "space_lawyer"
	CareerAIEngineer         CareerID = "ai_engineer"
	CareerAerospacePhysician CareerID = "aerospace_physician"
	CareerDataScientist      CareerID = "data_scientist"
)

// CategoryID identifies a career category.
type CategoryID string

const (
	CategoryScientists  CategoryID = "scientists"
	CategoryEngineers   CategoryID = "engineers"
	CategoryOperations  CategoryID = "operations"
	CategoryAstronauts  CategoryID = "astronauts"
	CategorySpecialized CategoryID = "specialized"
)

// Stage is the ordinal of a roadmap stage, 1 through 6.
type Stage int

const (
	StageHighSchool Stage = iota + 1
	StageUndergraduate
	StageGraduate
	StageDoctorate
	StagePostdoctoral
	StageCareer
)

// StageCount is the number of stages in every roadmap.
const StageCount = 6

// Stages lists every stage in roadmap order.
var Stages = [StageCount]Stage{
	StageHighSchool,
	StageUndergraduate,
	StageGraduate,
	StageDoctorate,
	StagePostdoctoral,
	StageCareer,
}

// Valid reports whether s is one of the six roadmap stages.
func (s Stage) Valid() bool {
	return s >= StageHighSchool && s <= StageCareer
}

// Title returns the fixed display name of the stage, or "" for an invalid stage.
func (s Stage) Title() string {
	switch s {
	case StageHighSchool:
		return "High School"
	case StageUndergraduate:
		return "Undergraduate Degree"
	case StageGraduate:
		return "Graduate Degree"
	case StageDoctorate:
		return "Doctorate (PhD)"
	case StagePostdoctoral:
		return "Post-Doctoral"
	case StageCareer:
		return "Career Path"
	default:
		return ""
	}
}
