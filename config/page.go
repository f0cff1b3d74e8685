package config

// CounterSpec is one count-up statistic.
type CounterSpec struct {
	Label      string
	Target     int
	Suffix     string
	DurationMs float64 // zero uses Counter.DefaultDurationMs
}

// CardSpec is one tilting card.
type CardSpec struct {
	Title    string
	Subtitle string
}

// SectionConfig is a block of the page that reveals on first view.
type SectionConfig struct {
	ID       string
	Title    string
	Lines    []string
	Counters []CounterSpec
	Cards    []CardSpec
}

// HeadlineConfig is the hero text.
type HeadlineConfig struct {
	Name    string
	Prefix  string   // static text before the rotating word
	Words   []string // rotating words
	Tagline string   // typed out one rune at a time
}

// PageConfig describes one page variant.
type PageConfig struct {
	Name     string
	Headline HeadlineConfig
	Sections []SectionConfig
	Cursor   bool // custom cursor enabled on this page
	Field    bool // aurora background enabled on this page
}

// Pages are the page variants, cycled with ActionNextPage.
var Pages []PageConfig

var stats = []CounterSpec{
	{Label: "Years Experience", Target: 5, Suffix: "+"},
	{Label: "Projects Shipped", Target: 30, Suffix: "+"},
	{Label: "Happy Clients", Target: 12, DurationMs: 1000},
	{Label: "Lines of Coffee", Target: 100, DurationMs: 2200, Suffix: "%"},
}

var hero = HeadlineConfig{
	Name:    "Farel Abid",
	Prefix:  "I build",
	Words:   []string{"web apps", "interfaces", "AI tools", "stories"},
	Tagline: "Creative Developer & Digital Artist",
}

func init() {
	about := SectionConfig{
		ID:    "about",
		Title: "About",
		Lines: []string{
			"Fullstack engineer and creative developer based in Jakarta.",
			"Building digital ecosystems, streaming platforms and AI assistants.",
		},
		Counters: stats,
	}
	services := SectionConfig{
		ID:    "services",
		Title: "Services",
		Cards: []CardSpec{
			{Title: "Web Development", Subtitle: "High-performance web apps"},
			{Title: "UI/UX Design", Subtitle: "Pixel-perfect interfaces"},
			{Title: "AI Solutions", Subtitle: "LLM and RAG systems"},
			{Title: "Creative Media", Subtitle: "Photo, video, motion"},
		},
	}
	projects := SectionConfig{
		ID:    "projects",
		Title: "Projects",
		Cards: []CardSpec{
			{Title: "Media Kawal Jakarta", Subtitle: "Digital Ecosystem Platform"},
			{Title: "TJ Radio Jakarta", Subtitle: "Live Streaming Platform"},
			{Title: "Jakarta Comedy Battle", Subtitle: "Event Experience Platform"},
			{Title: "Chatbot Akademik", Subtitle: "Llama 3.1 RAG System"},
			{Title: "Cont Solutions Indo", Subtitle: "Corporate Experience"},
		},
	}
	process := SectionConfig{
		ID:    "process",
		Title: "Process",
		Lines: []string{
			"01 Discover: goals, audience and technical requirements.",
			"02 Design: wireframes and high-fidelity prototypes.",
			"03 Develop: clean, scalable, performance-first code.",
			"04 Deploy: launch, monitor and iterate.",
		},
	}
	experience := SectionConfig{
		ID:    "experience",
		Title: "Experience",
		Lines: []string{
			"2025 - Present  Media Kawal Jakarta, IT & Fullstack Engineer",
			"2023 - 2024     Cont Solutions Indonesia, Creative Developer",
			"2021 - 2023     University Events, Head of Creative Documentation",
			"2019 - 2021     Freelance, Visual Content Creator",
		},
	}
	contact := SectionConfig{
		ID:    "contact",
		Title: "Let's Connect",
		Lines: []string{
			"github.com/Farelabid",
			"linkedin.com/in/farelabid",
			"farelabid@gmail.com",
		},
	}

	Pages = []PageConfig{
		{
			Name:     "home",
			Headline: hero,
			Sections: []SectionConfig{about, services, projects, experience, contact},
			Cursor:   true,
			Field:    true,
		},
		{
			Name:     "about",
			Headline: hero,
			Sections: []SectionConfig{about, experience},
			Cursor:   true,
			Field:    true,
		},
		{
			Name:     "services",
			Headline: HeadlineConfig{Name: "Services", Prefix: "I offer", Words: []string{"development", "design", "AI", "media"}},
			Sections: []SectionConfig{services, process},
			Cursor:   true,
			Field:    true,
		},
		{
			Name:     "projects",
			Headline: HeadlineConfig{Name: "Projects", Prefix: "Selected", Words: []string{"platforms", "products", "experiments"}},
			Sections: []SectionConfig{projects},
			Cursor:   true,
			Field:    true,
		},
		{
			Name:     "experience",
			Headline: HeadlineConfig{Name: "Experience", Tagline: "Six years of building things people use."},
			Sections: []SectionConfig{experience, about},
			Cursor:   true,
			Field:    false,
		},
		{
			Name:     "contact",
			Headline: HeadlineConfig{Name: "Contact", Tagline: "Available for work"},
			Sections: []SectionConfig{contact},
			Cursor:   false,
			Field:    true,
		},
	}
}
