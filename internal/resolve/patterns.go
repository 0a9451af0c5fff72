package resolve

import "strings"

// patternRule matches a normalized skill name by substring keywords and
// synthesizes a record shaped like a known technology. Rules are
// evaluated in declaration order, so more specific rules (e.g.
// "react native") must appear before more general ones ("react").
type patternRule struct {
	keywords []string // any match triggers the rule
	exclude  []string // any match suppresses it
	record   Record
}

func (r *patternRule) matches(norm string) bool {
	for _, ex := range r.exclude {
		if strings.Contains(norm, ex) {
			return false
		}
	}
	for _, kw := range r.keywords {
		if strings.Contains(norm, kw) {
			return true
		}
	}
	return false
}

// patternRules covers common frameworks, languages, databases, cloud
// platforms, and tooling that do not need remote inference.
var patternRules = []patternRule{
	{
		keywords: []string{"react native"},
		record: Record{
			Dependencies:   []string{"React", "JavaScript"},
			Description:    "Build native mobile apps with React components.",
			Difficulty:     6,
			EstimatedHours: 50,
			Enables:        []string{"Expo", "Mobile Development"},
			Category:       "mobile",
		},
	},
	{
		keywords: []string{"next.js", "nextjs"},
		record: Record{
			Dependencies:   []string{"React"},
			Description:    "Server-rendered React applications.",
			Difficulty:     6,
			EstimatedHours: 40,
			Enables:        []string{"Vercel", "Server Components"},
			Category:       "frontend",
		},
	},
	{
		keywords: []string{"react", "redux"},
		exclude:  []string{"native"},
		record: Record{
			Dependencies:   []string{"JavaScript", "HTML", "CSS"},
			Description:    "Component-based frontend development in the React ecosystem.",
			Difficulty:     5,
			EstimatedHours: 60,
			Enables:        []string{"Next.js", "React Native", "Redux"},
			Category:       "frontend",
		},
	},
	{
		keywords: []string{"vue", "nuxt"},
		record: Record{
			Dependencies:   []string{"JavaScript", "HTML", "CSS"},
			Description:    "Frontend development in the Vue ecosystem.",
			Difficulty:     4,
			EstimatedHours: 50,
			Enables:        []string{"Nuxt", "Pinia"},
			Category:       "frontend",
		},
	},
	{
		keywords: []string{"angular"},
		record: Record{
			Dependencies:   []string{"TypeScript", "HTML", "CSS"},
			Description:    "Frontend development with the Angular framework.",
			Difficulty:     6,
			EstimatedHours: 80,
			Enables:        []string{"NgRx", "RxJS"},
			Category:       "frontend",
		},
	},
	{
		keywords: []string{"typescript"},
		record: Record{
			Dependencies:   []string{"JavaScript"},
			Description:    "Static typing for JavaScript codebases.",
			Difficulty:     5,
			EstimatedHours: 40,
			Enables:        []string{"Angular", "NestJS"},
			Category:       "frontend",
		},
	},
	{
		keywords: []string{"node", "express", "nestjs"},
		record: Record{
			Dependencies:   []string{"JavaScript"},
			Description:    "Server-side JavaScript development.",
			Difficulty:     5,
			EstimatedHours: 50,
			Enables:        []string{"REST APIs", "GraphQL"},
			Category:       "backend",
		},
	},
	{
		keywords: []string{"django", "flask", "fastapi"},
		record: Record{
			Dependencies:   []string{"Python", "SQL"},
			Description:    "Python web framework development.",
			Difficulty:     5,
			EstimatedHours: 50,
			Enables:        []string{"REST APIs", "Celery"},
			Category:       "backend",
		},
	},
	{
		keywords: []string{"python"},
		record: Record{
			Dependencies:   []string{},
			Description:    "General-purpose programming with Python.",
			Difficulty:     3,
			EstimatedHours: 60,
			Enables:        []string{"Django", "Flask", "Machine Learning"},
			Category:       "backend",
		},
	},
	{
		keywords: []string{"golang", "go lang"},
		record: Record{
			Dependencies:   []string{},
			Description:    "Service and tooling development in Go.",
			Difficulty:     5,
			EstimatedHours: 60,
			Enables:        []string{"Kubernetes", "gRPC"},
			Category:       "backend",
		},
	},
	{
		keywords: []string{"kubernetes", "k8s", "helm"},
		record: Record{
			Dependencies:   []string{"Docker"},
			Description:    "Container orchestration and cluster operations.",
			Difficulty:     8,
			EstimatedHours: 80,
			Enables:        []string{"Helm", "Service Mesh", "GitOps"},
			Category:       "devops",
		},
	},
	{
		keywords: []string{"docker", "container"},
		exclude:  []string{"kubernetes", "k8s"},
		record: Record{
			Dependencies:   []string{"Linux"},
			Description:    "Containerizing and shipping applications.",
			Difficulty:     5,
			EstimatedHours: 30,
			Enables:        []string{"Kubernetes", "Docker Compose", "CI/CD"},
			Category:       "devops",
		},
	},
	{
		keywords: []string{"terraform", "pulumi", "infrastructure as code"},
		record: Record{
			Dependencies:   []string{"AWS", "Linux"},
			Description:    "Declarative infrastructure provisioning.",
			Difficulty:     6,
			EstimatedHours: 40,
			Enables:        []string{"GitOps", "Multi-cloud"},
			Category:       "devops",
		},
	},
	{
		keywords: []string{"aws", "amazon web services"},
		record: Record{
			Dependencies:   []string{"Linux", "Networking"},
			Description:    "Building on Amazon's cloud platform.",
			Difficulty:     7,
			EstimatedHours: 100,
			Enables:        []string{"Terraform", "Serverless"},
			Category:       "cloud",
		},
	},
	{
		keywords: []string{"azure", "gcp", "google cloud"},
		record: Record{
			Dependencies:   []string{"Linux", "Networking"},
			Description:    "Building on a major cloud platform.",
			Difficulty:     7,
			EstimatedHours: 90,
			Enables:        []string{"Infrastructure as Code", "Cloud Architecture"},
			Category:       "cloud",
		},
	},
	{
		keywords: []string{"postgres", "mysql", "sqlite", "sql server"},
		record: Record{
			Dependencies:   []string{"SQL"},
			Description:    "Working with a relational database engine.",
			Difficulty:     5,
			EstimatedHours: 40,
			Enables:        []string{"Database Design", "Query Optimization"},
			Category:       "database",
		},
	},
	{
		keywords: []string{"mongo", "redis", "cassandra", "dynamodb"},
		record: Record{
			Dependencies:   []string{},
			Description:    "Working with a NoSQL data store.",
			Difficulty:     4,
			EstimatedHours: 30,
			Enables:        []string{"Data Modeling", "Caching Strategies"},
			Category:       "database",
		},
	},
	{
		keywords: []string{"machine learning", "deep learning", "tensorflow", "pytorch"},
		record: Record{
			Dependencies:   []string{"Python", "Statistics"},
			Description:    "Training and evaluating machine learning models.",
			Difficulty:     8,
			EstimatedHours: 150,
			Enables:        []string{"MLOps", "Neural Networks"},
			Category:       "data",
		},
	},
	{
		keywords: []string{"rust"},
		record: Record{
			Dependencies:   []string{},
			Description:    "Systems programming with Rust.",
			Difficulty:     8,
			EstimatedHours: 120,
			Enables:        []string{"WebAssembly", "Embedded Systems"},
			Category:       "systems",
		},
	},
	{
		keywords: []string{"graphql"},
		record: Record{
			Dependencies:   []string{"JavaScript", "REST APIs"},
			Description:    "Designing and consuming GraphQL APIs.",
			Difficulty:     5,
			EstimatedHours: 30,
			Enables:        []string{"Apollo", "Relay"},
			Category:       "backend",
		},
	},
	{
		keywords: []string{"git", "github", "gitlab"},
		record: Record{
			Dependencies:   []string{},
			Description:    "Version control and collaborative workflows.",
			Difficulty:     3,
			EstimatedHours: 20,
			Enables:        []string{"CI/CD", "Code Review"},
			Category:       "tooling",
		},
	},
	{
		keywords: []string{"ci/cd", "jenkins", "github actions", "pipeline"},
		record: Record{
			Dependencies:   []string{"Git"},
			Description:    "Automated build, test, and deployment pipelines.",
			Difficulty:     5,
			EstimatedHours: 30,
			Enables:        []string{"GitOps", "DevOps Practices"},
			Category:       "devops",
		},
	},
}

// MatchPattern tests the name against the ordered rule list and
// synthesizes a pattern-matched record on a hit. Returns ok=false for
// novel or non-technical skill names, which is common.
func MatchPattern(name string) (Record, bool) {
	norm := NormalizeName(name)
	if norm == "" {
		return Record{}, false
	}
	for i := range patternRules {
		if patternRules[i].matches(norm) {
			rec := patternRules[i].record.clone()
			rec.SkillName = strings.TrimSpace(name)
			rec.Source = SourcePattern
			rec.Clamp()
			return rec, true
		}
	}
	return Record{}, false
}
