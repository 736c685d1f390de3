package catalog

import "github.com/alexanderramin/astroverse/internal/domain"

// spaceCareers is the portal's reference dataset. Editing this table is the
// supported way to add or change careers; new ids also need a constant in
// the domain package.
var spaceCareers = []domain.Category{
	{
		ID:    domain.CategoryScientists,
		Title: "Scientists",
		Careers: []domain.Career{
			{ID: domain.CareerAstrophysicist, Title: "Astrophysicist", Description: "Study space phenomena like black holes and galaxies."},
			{ID: domain.CareerPlanetaryScientist, Title: "Planetary Scientist", Description: "Explore planets, moons, and other celestial bodies."},
			{ID: domain.CareerAstrobiologist, Title: "Astrobiologist", Description: "Investigate the potential for life beyond Earth."},
			{ID: domain.CareerCosmologist, Title: "Cosmologist", Description: "Investigate the origins and evolution of the universe."},
			{ID: domain.CareerHeliophysicist, Title: "Heliophysicist", Description: "Study the Sun and its impact on the solar system."},
		},
	},
	{
		ID:    domain.CategoryEngineers,
		Title: "Engineers",
		Careers: []domain.Career{
			{ID: domain.CareerAerospaceEngineer, Title: "Aerospace Engineer", Description: "Design spacecraft, rockets, and aircraft."},
			{ID: domain.CareerMechanicalEngineer, Title: "Mechanical Engineer", Description: "Build and maintain spacecraft systems."},
			{ID: domain.CareerSoftwareEngineer, Title: "Software Engineer", Description: "Write programs to control spacecraft and analyze data."},
			{ID: domain.CareerRoboticsEngineer, Title: "Robotics Engineer", Description: "Create robots like rovers and robotic arms."},
			{ID: domain.CareerPropulsionEngineer, Title: "Propulsion Engineer", Description: "Develop rocket engines and propulsion systems."},
		},
	},
	{
		ID:    domain.CategoryOperations,
		Title: "Mission Operations",
		Careers: []domain.Career{
			{ID: domain.CareerFlightDirector, Title: "Flight Director", Description: "Lead missions from NASA's Mission Control."},
			{ID: domain.CareerMissionPlanner, Title: "Mission Planner", Description: "Design and schedule space missions."},
			{ID: domain.CareerLaunchDirector, Title: "Launch Director", Description: "Oversee rocket launches."},
			{ID: domain.CareerSpacecraftCapcom, Title: "Spacecraft Communicator (CAPCOM)", Description: "Act as the primary voice between Earth and astronauts."},
		},
	},
	{
		ID:    domain.CategoryAstronauts,
		Title: "Astronauts",
		Careers: []domain.Career{
			{ID: domain.CareerPilotAstronaut, Title: "Pilot Astronaut", Description: "Fly spacecraft and lead missions."},
			{ID: domain.CareerMissionSpecialist, Title: "Mission Specialist", Description: "Conduct experiments and spacewalks."},
			{ID: domain.CareerPayloadSpecialist, Title: "Payload Specialist", Description: "Operate and maintain scientific equipment."},
		},
	},
	{
		ID:    domain.CategorySpecialized,
		Title: "Specialized Roles",
		Careers: []domain.Career{
			{ID: domain.CareerSpaceLawyer, Title: "Space Lawyer", Description: "Navigate international space law and treaties."},
			{ID: domain.CareerAIEngineer, Title: "AI and Machine Learning Engineer", Description: "Use AI to analyze space data and automate processes."},
			{ID: domain.CareerAerospacePhysician, Title: "Aerospace Physician", Description: "Monitor astronauts' health before, during, and after spaceflight."},
			{ID: domain.CareerDataScientist, Title: "Data Scientist", Description: "Analyze massive datasets from space missions."},
		},
	},
}
