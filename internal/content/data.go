package content

const (
	aboutIntro = `Passionate developer with **5+ years** of experience building scalable web applications.`

	contactBlurb = `I’m always excited to collaborate on new projects.`

	tagline = `Transforming ideas into elegant digital solutions with clean, efficient code.`
)

// Default returns the page content. Every call builds new slices so callers
// may not observe each other's changes.
func Default() Content {
	return Content{
		Owner:    "Saroj Joshi",
		Initials: "JD",
		Roles:    []string{"Full Stack Developer", "UI/UX Enthusiast"},
		Tagline:  tagline,

		AboutIntro:   aboutIntro,
		ContactBlurb: contactBlurb,
		ContactEmail: "hello@sarojjoshi.dev",

		Skills: []SkillEntry{
			{Name: "React", Level: 95},
			{Name: "Next.js", Level: 90},
			{Name: "TypeScript", Level: 88},
			{Name: "Node.js", Level: 85},
			{Name: "Tailwind CSS", Level: 92},
			{Name: "Framer Motion", Level: 87},
		},

		Services: []ServiceEntry{
			{
				Icon:        IconCode,
				Title:       "Web Development",
				Description: "Building responsive and performant web applications with modern frameworks",
			},
			{
				Icon:        IconPalette,
				Title:       "UI/UX Design",
				Description: "Creating beautiful and intuitive user interfaces that users love",
			},
			{
				Icon:        IconZap,
				Title:       "Performance",
				Description: "Optimizing applications for speed and efficiency",
			},
		},

		Projects: []ProjectEntry{
			{
				Title:       "E-Commerce Platform",
				Description: "Full-stack e-commerce solution with payment integration and real-time inventory",
				ImageURL:    "https://images.unsplash.com/photo-1557821552-17105176677c?w=1200&h=900&fit=crop&q=80",
				Tags:        []string{"Next.js", "Stripe", "MongoDB"},
				Gradient:    "from-blue-500 to-cyan-500",
			},
			{
				Title:       "Social Media Dashboard",
				Description: "Analytics dashboard for social media management with AI insights",
				ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1200&h=900&fit=crop&q=80",
				Tags:        []string{"React", "D3.js", "REST API"},
				Gradient:    "from-purple-500 to-pink-500",
			},
			{
				Title:       "AI Chat Application",
				Description: "Real-time chat with AI integration and sentiment analysis",
				ImageURL:    "https://images.unsplash.com/photo-1587560699334-cc4ff634909a?w=1200&h=900&fit=crop&q=80",
				Tags:        []string{"WebSocket", "OpenAI", "Express"},
				Gradient:    "from-orange-500 to-red-500",
			},
			{
				Title:       "Project Management Tool",
				Description: "Collaborative tool with kanban boards and team analytics",
				ImageURL:    "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=1200&h=900&fit=crop&q=80",
				Tags:        []string{"React", "Firebase", "Material-UI"},
				Gradient:    "from-green-500 to-teal-500",
			},
		},

		Experiences: []ExperienceEntry{
			{
				Icon:        IconBriefcase,
				Title:       "Senior Developer",
				Company:     "Tech Corp",
				Period:      "2022 - Present",
				Description: "Leading development of enterprise applications",
			},
			{
				Icon:        IconCode,
				Title:       "Full Stack Developer",
				Company:     "StartUp Inc",
				Period:      "2020 - 2022",
				Description: "Built and maintained multiple client projects",
			},
			{
				Icon:        IconGraduationCap,
				Title:       "Computer Science",
				Company:     "University",
				Period:      "2016 - 2020",
				Description: "Bachelor's degree with honors",
			},
		},

		Socials: []SocialLink{
			{Icon: IconGithub, Label: "GitHub", Href: "https://github.com/"},
			{Icon: IconLinkedin, Label: "LinkedIn", Href: "https://www.linkedin.com/"},
			{Icon: IconMail, Label: "Email", Href: "mailto:hello@sarojjoshi.dev"},
		},
	}
}
