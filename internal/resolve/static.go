package resolve

// seedRecords is the fixed catalog of well-known technology skills.
// These are pre-authored and never touch the network.
var seedRecords = []Record{
	{
		SkillName:      "JavaScript",
		Dependencies:   []string{"HTML", "CSS"},
		Description:    "The language of the web. Runs in every browser and, via Node.js, on servers.",
		Difficulty:     4,
		EstimatedHours: 80,
		Enables:        []string{"React", "Node.js", "TypeScript", "Vue"},
		Category:       "frontend",
	},
	{
		SkillName:      "TypeScript",
		Dependencies:   []string{"JavaScript"},
		Description:    "Typed superset of JavaScript that scales to large codebases.",
		Difficulty:     5,
		EstimatedHours: 40,
		Enables:        []string{"Angular", "NestJS"},
		Category:       "frontend",
	},
	{
		SkillName:      "React",
		Dependencies:   []string{"JavaScript", "HTML", "CSS"},
		Description:    "Component-based UI library with a large ecosystem.",
		Difficulty:     5,
		EstimatedHours: 60,
		Enables:        []string{"Next.js", "React Native", "Redux"},
		Category:       "frontend",
	},
	{
		SkillName:      "Vue",
		Dependencies:   []string{"JavaScript", "HTML", "CSS"},
		Description:    "Progressive UI framework with a gentle learning curve.",
		Difficulty:     4,
		EstimatedHours: 50,
		Enables:        []string{"Nuxt", "Pinia"},
		Category:       "frontend",
	},
	{
		SkillName:      "Angular",
		Dependencies:   []string{"TypeScript", "HTML", "CSS"},
		Description:    "Batteries-included frontend framework maintained by Google.",
		Difficulty:     6,
		EstimatedHours: 80,
		Enables:        []string{"NgRx", "RxJS"},
		Category:       "frontend",
	},
	{
		SkillName:      "Next.js",
		Dependencies:   []string{"React"},
		Description:    "React framework with server rendering, routing, and data fetching built in.",
		Difficulty:     6,
		EstimatedHours: 40,
		Enables:        []string{"Vercel", "Server Components"},
		Category:       "frontend",
	},
	{
		SkillName:      "Node.js",
		Dependencies:   []string{"JavaScript"},
		Description:    "JavaScript runtime for servers and tooling.",
		Difficulty:     5,
		EstimatedHours: 50,
		Enables:        []string{"Express", "NestJS", "REST APIs"},
		Category:       "backend",
	},
	{
		SkillName:      "Python",
		Dependencies:   []string{},
		Description:    "General-purpose language dominant in scripting, data, and ML.",
		Difficulty:     3,
		EstimatedHours: 60,
		Enables:        []string{"Django", "Flask", "Pandas", "Machine Learning"},
		Category:       "backend",
	},
	{
		SkillName:      "Django",
		Dependencies:   []string{"Python", "SQL"},
		Description:    "Full-featured Python web framework with ORM and admin.",
		Difficulty:     5,
		EstimatedHours: 50,
		Enables:        []string{"Django REST Framework"},
		Category:       "backend",
	},
	{
		SkillName:      "Go",
		Dependencies:   []string{},
		Description:    "Compiled language built for services, tooling, and concurrency.",
		Difficulty:     5,
		EstimatedHours: 60,
		Enables:        []string{"Kubernetes", "gRPC", "Microservices"},
		Category:       "backend",
	},
	{
		SkillName:      "Rust",
		Dependencies:   []string{},
		Description:    "Systems language with memory safety without garbage collection.",
		Difficulty:     8,
		EstimatedHours: 120,
		Enables:        []string{"WebAssembly", "Embedded Systems"},
		Category:       "systems",
	},
	{
		SkillName:      "SQL",
		Dependencies:   []string{},
		Description:    "Declarative query language for relational databases.",
		Difficulty:     3,
		EstimatedHours: 30,
		Enables:        []string{"PostgreSQL", "MySQL", "Database Design"},
		Category:       "database",
	},
	{
		SkillName:      "PostgreSQL",
		Dependencies:   []string{"SQL"},
		Description:    "Advanced open-source relational database.",
		Difficulty:     5,
		EstimatedHours: 40,
		Enables:        []string{"Database Administration", "Query Optimization"},
		Category:       "database",
	},
	{
		SkillName:      "MongoDB",
		Dependencies:   []string{"JavaScript"},
		Description:    "Document database popular in Node.js stacks.",
		Difficulty:     4,
		EstimatedHours: 30,
		Enables:        []string{"Mongoose", "Aggregation Pipelines"},
		Category:       "database",
	},
	{
		SkillName:      "Docker",
		Dependencies:   []string{"Linux"},
		Description:    "Container runtime and image format for packaging applications.",
		Difficulty:     5,
		EstimatedHours: 30,
		Enables:        []string{"Kubernetes", "Docker Compose", "CI/CD"},
		Category:       "devops",
	},
	{
		SkillName:      "Kubernetes",
		Dependencies:   []string{"Docker"},
		Description:    "Container orchestration for deploying and scaling services.",
		Difficulty:     8,
		EstimatedHours: 80,
		Enables:        []string{"Helm", "Service Mesh", "GitOps"},
		Category:       "devops",
	},
	{
		SkillName:      "AWS",
		Dependencies:   []string{"Linux", "Networking"},
		Description:    "Amazon's cloud platform: compute, storage, managed services.",
		Difficulty:     7,
		EstimatedHours: 100,
		Enables:        []string{"Terraform", "Serverless", "Cloud Architecture"},
		Category:       "cloud",
	},
	{
		SkillName:      "Terraform",
		Dependencies:   []string{"AWS"},
		Description:    "Infrastructure as code across cloud providers.",
		Difficulty:     6,
		EstimatedHours: 40,
		Enables:        []string{"GitOps", "Multi-cloud"},
		Category:       "devops",
	},
	{
		SkillName:      "Git",
		Dependencies:   []string{},
		Description:    "Distributed version control. Table stakes for collaborative work.",
		Difficulty:     3,
		EstimatedHours: 20,
		Enables:        []string{"GitHub Actions", "Code Review"},
		Category:       "tooling",
	},
	{
		SkillName:      "Linux",
		Dependencies:   []string{},
		Description:    "Operating system fundamentals: shell, processes, permissions.",
		Difficulty:     4,
		EstimatedHours: 50,
		Enables:        []string{"Docker", "Bash Scripting", "System Administration"},
		Category:       "systems",
	},
	{
		SkillName:      "Machine Learning",
		Dependencies:   []string{"Python", "Statistics"},
		Description:    "Training models from data: supervised, unsupervised, evaluation.",
		Difficulty:     8,
		EstimatedHours: 150,
		Enables:        []string{"Deep Learning", "MLOps"},
		Category:       "data",
	},
	{
		SkillName:      "GraphQL",
		Dependencies:   []string{"JavaScript", "REST APIs"},
		Description:    "Query language for APIs with client-specified responses.",
		Difficulty:     5,
		EstimatedHours: 30,
		Enables:        []string{"Apollo", "Relay"},
		Category:       "backend",
	},
}

// staticByName indexes the seed catalog by normalized skill name.
var staticByName map[string]*Record

func init() {
	staticByName = make(map[string]*Record, len(seedRecords))
	for i := range seedRecords {
		seedRecords[i].Source = SourceStatic
		seedRecords[i].Clamp()
		staticByName[NormalizeName(seedRecords[i].SkillName)] = &seedRecords[i]
	}
}

// LookupStatic returns the pre-authored record for a well-known skill
// name (exact case-insensitive match), or ok=false.
func LookupStatic(name string) (Record, bool) {
	r, ok := staticByName[NormalizeName(name)]
	if !ok {
		return Record{}, false
	}
	return r.clone(), true
}
