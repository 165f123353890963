package site

import "strings"

// ValueCard is a highlight on the home page.
type ValueCard struct {
	Icon        string
	Title       string
	Description string
}

// Value is a personal value on the about page.
type Value struct {
	Icon        string
	Title       string
	Description string
}

// TimelineItem is one step of the professional journey.
type TimelineItem struct {
	Year        string
	Role        string
	Company     string
	Description string
}

// Experience is a role on the experience page.
type Experience struct {
	Role         string
	Company      string
	Period       string
	Location     string
	Description  string
	Achievements []string
	Technologies []string
}

// Project is a portfolio entry. A link of "#" means the project has no
// public URL yet.
type Project struct {
	Title        string
	Description  string
	Image        string
	Technologies []string
	GithubURL    string
	LiveURL      string
	Year         string
}

// ContactMethod is a channel on the contact page.
type ContactMethod struct {
	Icon        string
	Title       string
	Description string
	Link        string
	Color       string
}

// Interest is a bullet on the contact page.
type Interest struct {
	Text  string
	Color string
}

var (
	Intro = `Fullstack Software Engineer passionate about building scalable applications
	and fostering remote-first, async work cultures.`

	AboutMe = `I'm a Senior Software Engineer & Team Lead with 7+ years of experience developing web
	applications using Angular, TypeScript, and Python under AWS cloud infrastructure.
	I focus on creating robust software solutions with high-quality, reusable code and have experience
	leading cross-functional teams. My approach combines technical excellence with mentorship and team growth.`

	ExperienceIntro = `My professional journey in software development, focusing on fullstack solutions
	and remote collaboration.`

	PortfolioIntro = `A collection of projects showcasing my skills in fullstack development,
	from web applications to cloud infrastructure solutions.`

	ContactIntro = `I'm always open to discussing new opportunities, interesting projects,
	or just having a chat about technology and remote work culture.`

	GithubProfile = "https://github.com/abobadilla02"
	Email         = "alonso.bobadilla.montoya@gmail.com"
)

var ValueCards = []ValueCard{
	{Icon: "code", Title: "Clean Code Advocate", Description: "Writing maintainable, scalable code with best practices and modern technologies."},
	{Icon: "users", Title: "Mentor & Collaborator", Description: "Sharing knowledge and helping teams grow through effective mentorship."},
	{Icon: "globe", Title: "Remote Culture Expert", Description: "Championing async work and distributed team collaboration."},
}

var Values = []Value{
	{Icon: "heart", Title: "Async Work Culture", Description: "Believe in the power of asynchronous communication and flexible work schedules that respect individual productivity patterns."},
	{Icon: "graduation-cap", Title: "Continuous Learning", Description: "Always exploring new technologies and methodologies to stay current in the ever-evolving tech landscape."},
	{Icon: "map-pin", Title: "Remote Collaboration", Description: "Expert in building and maintaining strong team relationships across different time zones and cultures."},
}

var Timeline = []TimelineItem{
	{Year: "2021 - Present", Role: "Senior Software Engineer & Team Lead", Company: "Airnguru", Description: "Leading cross-functional teams, mentoring developers, and implementing high-impact features using Angular, TypeScript, Python, and AWS."},
	{Year: "2020 - 2021", Role: "Frontend Developer", Company: "Airnguru", Description: "Developed custom Angular libraries and web modules, integrated AWS Cognito authentication, and created reusable components."},
	{Year: "2018 - 2020", Role: "Frontend Developer", Company: "Nobilis", Description: "Added features using Angular and NodeJS, refactored application modules, and implemented automatic testing frameworks."},
}

var Experiences = []Experience{
	{
		Role:        "Fullstack Software Engineer",
		Company:     "Various Companies",
		Period:      "2023 - Present",
		Location:    "Remote",
		Description: "Working on scalable web applications and cloud infrastructure.",
		Achievements: []string{
			"Developed and maintained full-stack applications using Angular and Python",
			"Implemented AWS cloud solutions for scalable infrastructure",
			"Collaborated with distributed teams using async communication practices",
			"Mentored junior developers and conducted code reviews",
		},
		Technologies: []string{"Angular", "Python", "AWS", "TypeScript", "React", "Node.js"},
	},
	{
		Role:        "Software Developer",
		Company:     "Previous Experience",
		Period:      "2022 - 2023",
		Location:    "Remote",
		Description: "Focused on web development and clean code practices.",
		Achievements: []string{
			"Built responsive web applications with modern frameworks",
			"Implemented RESTful APIs and database integrations",
			"Participated in agile development processes",
			"Contributed to open-source projects",
		},
		Technologies: []string{"JavaScript", "React", "Node.js", "PostgreSQL", "Git"},
	},
}

var Projects = []Project{
	{
		Title:        "Medium & WhatsApp Scheduler",
		Description:  "A comprehensive scheduling and publishing application for Medium and WhatsApp content management. Features automated posting, content calendar, and analytics dashboard.",
		Image:        "https://via.placeholder.com/400x250/3B82F6/FFFFFF?text=Medium+WhatsApp+Scheduler",
		Technologies: []string{"React", "Node.js", "MongoDB", "WhatsApp API", "Medium API"},
		GithubURL:    "#",
		LiveURL:      "#",
		Year:         "2024",
	},
	{
		Title:        "E-commerce Platform",
		Description:  "Full-stack e-commerce solution with user authentication, payment processing, and admin dashboard. Built with modern web technologies and responsive design.",
		Image:        "https://via.placeholder.com/400x250/10B981/FFFFFF?text=E-commerce+Platform",
		Technologies: []string{"Angular", "Python", "PostgreSQL", "Stripe API", "AWS"},
		GithubURL:    "#",
		LiveURL:      "#",
		Year:         "2023",
	},
	{
		Title:        "Task Management App",
		Description:  "Collaborative task management application with real-time updates, team collaboration features, and progress tracking. Designed for remote teams.",
		Image:        "https://via.placeholder.com/400x250/8B5CF6/FFFFFF?text=Task+Management+App",
		Technologies: []string{"React", "TypeScript", "Socket.io", "Express", "MongoDB"},
		GithubURL:    "#",
		LiveURL:      "#",
		Year:         "2023",
	},
	{
		Title:        "Weather Dashboard",
		Description:  "Real-time weather application with location-based forecasts, interactive maps, and customizable widgets. Integrates with multiple weather APIs.",
		Image:        "https://via.placeholder.com/400x250/F59E0B/FFFFFF?text=Weather+Dashboard",
		Technologies: []string{"React", "TypeScript", "OpenWeather API", "Chart.js", "TailwindCSS"},
		GithubURL:    "#",
		LiveURL:      "#",
		Year:         "2023",
	},
}

var ContactMethods = []ContactMethod{
	{Icon: "linkedin", Title: "LinkedIn", Description: "Connect with me professionally", Link: "https://www.linkedin.com/in/alonsobobadilla/", Color: "bg-blue-600 hover:bg-blue-700"},
	{Icon: "github", Title: "GitHub", Description: "Check out my code and projects", Link: GithubProfile, Color: "bg-gray-800 hover:bg-gray-900"},
	{Icon: "mail", Title: "Email", Description: "Send me a direct message", Link: "mailto:" + Email, Color: "bg-red-600 hover:bg-red-700"},
}

var LookingFor = []Interest{
	{Text: "Remote-first opportunities", Color: "bg-blue-600 dark:bg-blue-400"},
	{Text: "Fullstack development roles", Color: "bg-blue-600 dark:bg-blue-400"},
	{Text: "Teams that value clean code", Color: "bg-blue-600 dark:bg-blue-400"},
	{Text: "Mentorship opportunities", Color: "bg-blue-600 dark:bg-blue-400"},
}

var Expertise = []Interest{
	{Text: "Angular (4-18) & TypeScript", Color: "bg-green-600 dark:bg-green-400"},
	{Text: "Python & NodeJS development", Color: "bg-green-600 dark:bg-green-400"},
	{Text: "AWS (Lambda, S3, Cognito, DynamoDB)", Color: "bg-green-600 dark:bg-green-400"},
	{Text: "Team leadership & mentoring", Color: "bg-green-600 dark:bg-green-400"},
}

// HasURL reports whether a project link points somewhere.
func HasURL(link string) bool { return link != "" && link != "#" }

// OpensInNewTab reports whether a contact link should open a new tab. Mail
// links stay in the current window.
func OpensInNewTab(link string) bool {
	return !strings.HasPrefix(link, "mailto:")
}
