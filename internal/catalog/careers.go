package catalog

// Career is a single recommendation entry. Users store a denormalized copy
// of the entry they pick, so the struct must stay comparable.
type Career struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// careerPaths maps interest tag -> language tag -> recommendations.
var careerPaths = map[string]map[string][]Career{
	"data": {
		"python": {
			{Title: "Data Scientist", Category: "Research & Prediction", Icon: "🔬", Description: "Based on your interest in Data Analysis and Python."},
			{Title: "Data Analyst", Category: "Business Intelligence", Icon: "📊", Description: "Based on your interest in Data Analysis and Python."},
			{Title: "ML Engineer", Category: "AI & Automation", Icon: "🤖", Description: "Based on your interest in Data Analysis and Machine Learning."},
		},
		"javascript": {
			{Title: "Data Analyst", Category: "Business Intelligence", Icon: "📊", Description: "Based on your interest in Data Analysis and JavaScript."},
			{Title: "BI Developer", Category: "Data Visualization", Icon: "📈", Description: "Based on your interest in Data Analysis and Web Development."},
		},
		"java": {
			{Title: "Data Engineer", Category: "Big Data", Icon: "⚙️", Description: "Based on your interest in Data Analysis and Java."},
			{Title: "Data Analyst", Category: "Business Intelligence", Icon: "📊", Description: "Based on your interest in Data Analysis and Java."},
		},
		"csharp": {
			{Title: "Data Engineer", Category: "Big Data", Icon: "⚙️", Description: "Based on your interest in Data Analysis and C#."},
			{Title: "BI Developer", Category: "Data Visualization", Icon: "📈", Description: "Based on your interest in Data Analysis and C#."},
		},
	},
	"ml": {
		"python": {
			{Title: "ML Engineer", Category: "AI & Automation", Icon: "🤖", Description: "Based on your interest in Machine Learning and Python."},
			{Title: "Data Scientist", Category: "Research & Prediction", Icon: "🔬", Description: "Based on your interest in Machine Learning and Python."},
			{Title: "AI Engineer", Category: "Advanced AI", Icon: "🧠", Description: "Based on your interest in Machine Learning and Python."},
		},
		"javascript": {
			{Title: "ML Engineer", Category: "AI & Automation", Icon: "🤖", Description: "Based on your interest in Machine Learning and JavaScript."},
			{Title: "AI Engineer", Category: "Advanced AI", Icon: "🧠", Description: "Based on your interest in Machine Learning and JavaScript."},
		},
		"java": {
			{Title: "ML Engineer", Category: "AI & Automation", Icon: "🤖", Description: "Based on your interest in Machine Learning and Java."},
			{Title: "Data Scientist", Category: "Research & Prediction", Icon: "🔬", Description: "Based on your interest in Machine Learning and Java."},
		},
		"csharp": {
			{Title: "ML Engineer", Category: "AI & Automation", Icon: "🤖", Description: "Based on your interest in Machine Learning and C#."},
			{Title: "AI Engineer", Category: "Advanced AI", Icon: "🧠", Description: "Based on your interest in Machine Learning and C#."},
		},
	},
	"web": {
		"python": {
			{Title: "Full Stack Developer", Category: "Web Development", Icon: "🌐", Description: "Based on your interest in Web Development and Python."},
			{Title: "Backend Developer", Category: "Server-side", Icon: "⚙️", Description: "Based on your interest in Web Development and Python."},
		},
		"javascript": {
			{Title: "Full Stack Developer", Category: "Web Development", Icon: "🌐", Description: "Based on your interest in Web Development and JavaScript."},
			{Title: "Frontend Developer", Category: "Client-side", Icon: "🎨", Description: "Based on your interest in Web Development and JavaScript."},
			{Title: "Backend Developer", Category: "Server-side", Icon: "⚙️", Description: "Based on your interest in Web Development and JavaScript."},
		},
		"java": {
			{Title: "Full Stack Developer", Category: "Web Development", Icon: "🌐", Description: "Based on your interest in Web Development and Java."},
			{Title: "Backend Developer", Category: "Server-side", Icon: "⚙️", Description: "Based on your interest in Web Development and Java."},
		},
		"csharp": {
			{Title: "Full Stack Developer", Category: "Web Development", Icon: "🌐", Description: "Based on your interest in Web Development and C#."},
			{Title: "Backend Developer", Category: "Server-side", Icon: "⚙️", Description: "Based on your interest in Web Development and C#."},
		},
	},
	"mobile": {
		"python": {
			{Title: "Mobile Developer", Category: "Cross-platform", Icon: "📱", Description: "Based on your interest in Mobile Development and Python."},
		},
		"javascript": {
			{Title: "Mobile Developer", Category: "Cross-platform", Icon: "📱", Description: "Based on your interest in Mobile Development and JavaScript."},
		},
		"java": {
			{Title: "Android Developer", Category: "Mobile OS", Icon: "🤖", Description: "Based on your interest in Mobile Development and Java."},
		},
		"csharp": {
			{Title: "Mobile Developer", Category: "Cross-platform", Icon: "📱", Description: "Based on your interest in Mobile Development and C#."},
		},
	},
	"cloud": {
		"python": {
			{Title: "Cloud Engineer", Category: "Infrastructure", Icon: "☁️", Description: "Based on your interest in Cloud Computing and Python."},
			{Title: "DevOps Engineer", Category: "CI/CD", Icon: "🔄", Description: "Based on your interest in Cloud Computing and Python."},
		},
		"javascript": {
			{Title: "Cloud Engineer", Category: "Infrastructure", Icon: "☁️", Description: "Based on your interest in Cloud Computing and JavaScript."},
			{Title: "DevOps Engineer", Category: "CI/CD", Icon: "🔄", Description: "Based on your interest in Cloud Computing and JavaScript."},
		},
		"java": {
			{Title: "Cloud Engineer", Category: "Infrastructure", Icon: "☁️", Description: "Based on your interest in Cloud Computing and Java."},
			{Title: "DevOps Engineer", Category: "CI/CD", Icon: "🔄", Description: "Based on your interest in Cloud Computing and Java."},
		},
		"csharp": {
			{Title: "Cloud Engineer", Category: "Infrastructure", Icon: "☁️", Description: "Based on your interest in Cloud Computing and C#."},
			{Title: "DevOps Engineer", Category: "CI/CD", Icon: "🔄", Description: "Based on your interest in Cloud Computing and C#."},
		},
	},
	"security": {
		"python": {
			{Title: "Security Engineer", Category: "Cybersecurity", Icon: "🔒", Description: "Based on your interest in Cybersecurity and Python."},
			{Title: "Penetration Tester", Category: "Ethical Hacking", Icon: "🔍", Description: "Based on your interest in Cybersecurity and Python."},
		},
		"javascript": {
			{Title: "Security Engineer", Category: "Cybersecurity", Icon: "🔒", Description: "Based on your interest in Cybersecurity and JavaScript."},
		},
		"java": {
			{Title: "Security Engineer", Category: "Cybersecurity", Icon: "🔒", Description: "Based on your interest in Cybersecurity and Java."},
		},
		"csharp": {
			{Title: "Security Engineer", Category: "Cybersecurity", Icon: "🔒", Description: "Based on your interest in Cybersecurity and C#."},
		},
	},
}

// Recommend unions the career entries for every (interest, language) pair
// that exists in the table. Results keep first-encounter order across the
// interest slice as given; entries equal in all fields collapse to one.
// Unknown interest or language pairs are skipped, so an empty result is a
// valid answer, not an error.
func Recommend(interests []string, language string) []Career {
	seen := make(map[Career]struct{})
	var out []Career
	for _, interest := range interests {
		byLang, ok := careerPaths[interest]
		if !ok {
			continue
		}
		for _, c := range byLang[language] {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
