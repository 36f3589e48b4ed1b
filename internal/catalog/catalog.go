// Package catalog holds the static learning content and career path tables.
// Everything here is read-only after init; lookups never fail, they just
// return zero values for unknown tags.
package catalog

// Skill is one entry of the learning roadmap: a guided learning step and a
// harder challenge used for project submissions.
type Skill struct {
	Name      string    `json:"name"`
	Learning  Learning  `json:"learning"`
	Challenge Challenge `json:"challenge"`
}

type Learning struct {
	Resource string `json:"resource"`
	Task     string `json:"task"`
}

type Challenge struct {
	Task string `json:"task"`
}

// skillTags is the fixed key space for per-user skill and submission flags,
// in roadmap order.
var skillTags = []string{"sql", "python", "stats", "viz"}

var skills = map[string]Skill{
	"sql": {
		Name: "SQL & Excel",
		Learning: Learning{
			Resource: "SQLZoo & Excel Pivot Tables Guide",
			Task:     `Import "Sales_Data.csv" into Excel. Create a Pivot Table showing Total Sales per Region. Write a SQL query to replicate this result.`,
		},
		Challenge: Challenge{
			Task: `Advanced Data Cleaning: You have duplicate records and NULL values in the "Transactions" table. Write a SQL script to identify duplicates, remove them, and impute missing numerical values with the average.`,
		},
	},
	"python": {
		Name: "Python for Data",
		Learning: Learning{
			Resource: "Automate the Boring Stuff / Pandas Documentation",
			Task:     `Write a Python script that reads a CSV file, filters rows where "Sales > 1000", and saves the result to a new file.`,
		},
		Challenge: Challenge{
			Task: "Build an ETL Pipeline: Write a Python script that fetches data from a public API (e.g., JSONPlaceholder), transforms the nested JSON into a flat structure, and loads it into a SQLite database.",
		},
	},
	"stats": {
		Name: "Statistics",
		Learning: Learning{
			Resource: "Khan Academy: Statistics & Probability",
			Task:     "Given a dataset of student heights, calculate Mean, Median, Mode, and Standard Deviation manually (using Python or Excel).",
		},
		Challenge: Challenge{
			Task: `A/B Testing Analysis: Analyze provided dataset "Experiment_Results.csv". Determine if the new feature (Group B) has a statistically significant lift in conversion rate compared to the control (Group A) using a T-test.`,
		},
	},
	"viz": {
		Name: "Data Visualization",
		Learning: Learning{
			Resource: "Matplotlib / Seaborn Tutorials",
			Task:     `Create a Bar Chart and a Scatter Plot using Python (Matplotlib) showing the relationship between "Ad Spend" and "Revenue".`,
		},
		Challenge: Challenge{
			Task: `Interactive Dashboard: Create a PowerBI or Tableau dashboard connected to the "Sales_Data" source. It must include filters for Year and Product Category, and a KPI card for YOY Growth.`,
		},
	},
}

// IsSkill reports whether tag is a recognized roadmap skill.
func IsSkill(tag string) bool {
	_, ok := skills[tag]
	return ok
}

// SkillTags returns the fixed skill tag set in roadmap order. The returned
// slice is a copy.
func SkillTags() []string {
	out := make([]string, len(skillTags))
	copy(out, skillTags)
	return out
}

// Content returns the full skill content table keyed by tag.
func Content() map[string]Skill {
	out := make(map[string]Skill, len(skills))
	for k, v := range skills {
		out[k] = v
	}
	return out
}
