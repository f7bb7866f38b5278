// Package portfolio holds the static content of the landing page.
package portfolio

import "github.com/ctasbihas/portfolio/internal/project"

type Link struct {
	Label string
	Href  string
}

// External reports whether the link leaves the site in a new tab.
func (l Link) External() bool {
	return len(l.Href) > 4 && l.Href[:4] == "http"
}

type Highlight struct {
	Title       string
	Description string
}

type SkillCategory struct {
	Title  string
	Icon   string
	Skills []string
}

type Proficiency struct {
	Skill string
	Level int
}

type Education struct {
	Degree       string
	Institution  string
	Location     string
	Period       string
	GPA          string
	Status       string
	Description  string
	Coursework   []string
	Achievements []string
	Projects     []string
}

type Certification struct {
	Name       string
	Issuer     string
	Date       string
	Credential string
	Status     string
}

type ContactInfo struct {
	Title string
	Value string
	Link  Link
}

type Home struct {
	Name           string
	Roles          []string
	Intro          string
	ResumeURL      string
	Socials        []Link
	About          string
	Journey        []string
	Highlights     []Highlight
	Skills         []SkillCategory
	Proficiencies  []Proficiency
	Education      []Education
	Certifications []Certification
	Contact        []ContactInfo
	TopProjects    []project.Showcase
}

// Content returns the landing page content with the top three featured projects.
func Content() Home {
	return Home{
		Name: "Tasbih Ahmed",
		Roles: []string{
			"Full Stack Developer",
			"Next.js Engineer",
			"Express.js Specialist",
			"TypeScript Enthusiast",
		},
		Intro:     "I specialize in building full stack applications using Next.js, Express.js, and TypeScript. My focus is on scalable architecture, efficient APIs, and seamless user experiences powered by modern web technologies.",
		ResumeURL: "/resume.pdf",
		Socials: []Link{
			{Label: "GitHub", Href: "https://github.com/ctasbihas"},
			{Label: "LinkedIn", Href: "https://linkedin.com/in/ctasbihas"},
			{Label: "Email", Href: "mailto:ctasbihas@gmail.com"},
		},
		About: "I'm a passionate web developer with 2+ years of experience crafting digital solutions. I love turning complex problems into simple, beautiful, and intuitive designs.",
		Journey: []string{
			"My path into development began during the Covid-19 arc, where I discovered a passion for crafting digital experiences. What started as curiosity soon grew into a drive to build applications that have a meaningful impact.",
			"Over the years, I've worked on many projects, from landing pages to chat applications. Some I left behind incomplete, but each taught me valuable lessons. I enjoy continuous learning and embracing new challenges.",
			"When I'm not coding, you'll find me exploring new technologies, contributing to open source projects, or sharing my knowledge through blog posts.",
		},
		Highlights: []Highlight{
			{Title: "Clean Code", Description: "Writing maintainable, scalable and efficient code."},
			{Title: "Design Focus", Description: "Creating intuitive user interfaces with attention to detail."},
			{Title: "Performance", Description: "Optimizing applications for speed and accessibility."},
			{Title: "Collaboration", Description: "Working with cross-functional teams to deliver results."},
		},
		Skills: []SkillCategory{
			{Title: "Frontend Development", Icon: "🎨", Skills: []string{"React", "Next.js", "TypeScript", "JavaScript (ES6+)", "HTML5", "CSS3", "Tailwind CSS", "Framer Motion", "React Query", "Redux Toolkit", "Responsive Design", "Accessibility (WCAG)"}},
			{Title: "Backend Development", Icon: "⚙️", Skills: []string{"Node.js", "Express.js", "Passport JS", "REST APIs", "JWT Authentication", "Database Design", "API Integration", "Microservices"}},
			{Title: "Database & Cloud", Icon: "☁️", Skills: []string{"MongoDB", "PostgreSQL", "MySQL", "Redis", "Firebase", "Supabase", "CI/CD", "Vercel", "Netlify"}},
			{Title: "Tools & Others", Icon: "🛠️", Skills: []string{"Git & GitHub", "VS Code", "Figma", "Testing Library", "Webpack", "Vite", "ESLint", "Prettier"}},
		},
		Proficiencies: []Proficiency{
			{Skill: "Frontend Development", Level: 95},
			{Skill: "Backend Development", Level: 85},
			{Skill: "UI/UX Design", Level: 80},
		},
		Education: []Education{
			{
				Degree:       "Bachelor of Science in Computer Science",
				Institution:  "Stanford University",
				Location:     "Stanford, CA",
				Period:       "2018 - 2022",
				GPA:          "3.8/4.0",
				Status:       "Graduated Magna Cum Laude",
				Description:  "Computer science fundamentals with a focus on software engineering, algorithms and data structures.",
				Coursework:   []string{"Data Structures and Algorithms", "Database Systems", "Software Engineering", "Computer Networks", "Machine Learning", "Web Development"},
				Achievements: []string{"Dean's List for 6 consecutive semesters", "Winner of Stanford Hackathon 2021", "President of Computer Science Society (2021-2022)"},
				Projects:     []string{"Capstone: AI-powered study assistant web application", "Group Project: E-commerce platform with React and Node.js"},
			},
			{
				Degree:       "Associate Degree in Web Development",
				Institution:  "Community College of San Francisco",
				Location:     "San Francisco, CA",
				Period:       "2016 - 2018",
				GPA:          "3.9/4.0",
				Status:       "Graduated Summa Cum Laude",
				Description:  "Practical web development skills and industry practices with hands-on experience of modern frameworks.",
				Coursework:   []string{"HTML5 and CSS3", "JavaScript Programming", "Responsive Web Design", "PHP and MySQL"},
				Achievements: []string{"Valedictorian of graduating class", "Outstanding Student Award in Web Development"},
				Projects:     []string{"Final Project: Full-stack restaurant management system"},
			},
		},
		Certifications: []Certification{
			{Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "2023", Credential: "ASA-C01", Status: "Active"},
			{Name: "Google Analytics Certified", Issuer: "Google", Date: "2023", Credential: "GA-2023-001", Status: "Active"},
			{Name: "Meta Frontend Developer Professional", Issuer: "Meta", Date: "2022", Credential: "META-FE-2022", Status: "Active"},
			{Name: "Certified Kubernetes Administrator", Issuer: "Cloud Native Computing Foundation", Date: "2022", Credential: "CKA-2022-001", Status: "Active"},
		},
		Contact: []ContactInfo{
			{Title: "Email", Value: "ctasbihas@gmail.com", Link: Link{Label: "Email", Href: "mailto:ctasbihas@gmail.com"}},
			{Title: "Phone", Value: "+8801595373760", Link: Link{Label: "Phone", Href: "tel:+8801595373760"}},
			{Title: "Location", Value: "Dhaka, Bangladesh", Link: Link{Label: "Location", Href: "https://maps.google.com"}},
		},
		TopProjects: project.Featured(project.AllProjects, 3),
	}
}
