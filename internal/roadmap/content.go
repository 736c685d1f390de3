package roadmap

import "github.com/alexanderramin/astroverse/internal/domain"

var defaultContent = domain.StageContent{
	HighSchool:    "Focus on STEM subjects (Science, Technology, Engineering, Mathematics). Join relevant clubs and competitions. Develop fundamental skills in critical thinking and problem-solving.",
	Undergraduate: "Earn a Bachelor's degree in a relevant field. Take specialized courses, seek internships, and participate in research projects when possible.",
	Graduate:      "Complete a Master's degree with specialization in your area of interest. Build technical expertise and begin professional networking.",
	Doctorate:     "Obtain a PhD with original research contribution to your field. Publish papers and present at conferences to establish your expertise.",
	Postdoctoral:  "Gain specialized experience through research positions or industry work. Develop your professional reputation and specialized skills.",
	Career:        "Career paths include research, industry positions, academia, government agencies, or entrepreneurial ventures in the space sector.",
}

var astrophysicistContent = domain.StageContent{
	HighSchool:    "Focus on advanced physics, mathematics, and astronomy courses. Join astronomy clubs and participate in science competitions. Begin learning to code and explore the night sky with telescopes if possible.",
	Undergraduate: "Pursue a Bachelor's degree in Physics, Astronomy, or Astrophysics. Take courses in calculus, differential equations, quantum mechanics, and computational physics. Seek research opportunities with professors.",
	Graduate:      "Complete a Master's degree in Astrophysics specializing in areas like stellar evolution, galaxies, or cosmology. Begin publishing research and attend astronomy conferences.",
	Doctorate:     "Obtain a PhD in Astrophysics with original research on topics like black holes, dark matter, or galaxy formation. Publish in peer-reviewed journals and build your professional network.",
	Postdoctoral:  "Complete 2-3 years of postdoctoral research at universities, observatories, or space agencies. Establish your research reputation and apply for research grants.",
	Career:        "Work as a research scientist at universities, national laboratories, space agencies (NASA, ESA), or private observatories. Alternative paths include science communication, data science, or aerospace industry research.",
}

var cosmologistContent = domain.StageContent{
	HighSchool:    "Excel in advanced mathematics, physics, and computer science. Develop strong analytical thinking and problem-solving skills. Read books on cosmology and the universe's origins.",
	Undergraduate: "Earn a Bachelor's degree in Physics with coursework in astrophysics, mathematics, and computational methods. Begin understanding general relativity and quantum mechanics.",
	Graduate:      "Complete a Master's focusing on cosmology or theoretical physics. Study cosmic microwave background, dark matter, and structure formation. Learn advanced computational modeling.",
	Doctorate:     "Conduct original research in theoretical or observational cosmology. Work on problems like cosmic inflation, dark energy, or large-scale structure. Master cosmological simulations.",
	Postdoctoral:  "Join cosmology research groups at universities or institutes. Collaborate on large-scale surveys or experiments (LSST, Euclid). Secure competitive research grants.",
	Career:        "Careers include theoretical cosmologist, computational astrophysicist, professor, researcher at national laboratories, or data scientist for cosmological surveys.",
}

var astrobiologistContent = domain.StageContent{
	HighSchool:    "Focus on biology, chemistry, physics, and earth sciences. Participate in science fairs. Develop strong laboratory skills and interdisciplinary scientific knowledge.",
	Undergraduate: "Pursue a degree in Biology, Chemistry, or Earth Sciences with astronomy electives. Take courses in biochemistry, microbiology, geology, and planetary science.",
	Graduate:      "Complete a Master's in Astrobiology or related field. Study extremophiles, planetary habitability, or biosignatures. Begin interdisciplinary research collaborations.",
	Doctorate:     "Conduct original research connecting biology to astronomy. Study topics like extremophiles, biosignatures, or prebiotic chemistry. Publish in astrobiology journals.",
	Postdoctoral:  "Work with astrobiology research teams at universities, NASA, or research institutes. Participate in mission planning for life-detection missions on other planets.",
	Career:        "Career paths include research scientist at astrobiology institutes, planetary scientist, exoplanet researcher, or mission specialist for space agencies.",
}

// override returns the career-specific content and true, or the default
// content and false. Keys are typed constants so a misspelt id does not
// compile.
func override(id domain.CareerID) (domain.StageContent, bool) {
	switch id {
	case domain.CareerAstrophysicist:
		return astrophysicistContent, true
	case domain.CareerCosmologist:
		return cosmologistContent, true
	case domain.CareerAstrobiologist:
		return astrobiologistContent, true
	default:
		return defaultContent, false
	}
}
