package recommend

// semanticClusters groups technologies that solve the same problem.
// Holding one member makes the others reasonable "alternative to X"
// suggestions.
var semanticClusters = [][]string{
	{"React", "Vue", "Angular", "Svelte"},
	{"PostgreSQL", "MySQL", "SQL Server"},
	{"MongoDB", "DynamoDB", "Cassandra"},
	{"AWS", "Azure", "Google Cloud"},
	{"Django", "Flask", "FastAPI"},
	{"Node.js", "Deno", "Bun"},
	{"Terraform", "Pulumi", "CloudFormation"},
	{"Jenkins", "GitHub Actions", "GitLab CI"},
}

// categoryComplements suggests skills that round out a category the
// user is already working in.
var categoryComplements = map[string][]string{
	"frontend": {"Testing", "Web Accessibility", "TypeScript"},
	"backend":  {"SQL", "Docker", "API Design"},
	"devops":   {"Monitoring", "Security Fundamentals", "Linux"},
	"database": {"Database Design", "Query Optimization"},
	"cloud":    {"Terraform", "Cost Optimization"},
	"data":     {"SQL", "Data Visualization", "Statistics"},
	"mobile":   {"UI Design", "App Store Deployment"},
	"systems":  {"Operating Systems", "Networking"},
	"tooling":  {"CI/CD", "Shell Scripting"},
}

// trendingSkills is the last-resort fallback when nothing else produces
// a suggestion.
var trendingSkills = []string{
	"TypeScript",
	"Kubernetes",
	"Rust",
	"Machine Learning",
	"Terraform",
	"GraphQL",
}
