package application

// BuiltinTemplates returns the fixed catalog of built-in roadmaps. They are
// merged through MergeFragments like any other fragment, so re-applying the
// catalog skips roadmaps that already exist.
func BuiltinTemplates() []RoadmapFragment {
	return []RoadmapFragment{
		{
			Language:    "Python",
			Title:       "Python Fundamentals",
			Description: "From zero to comfortable with idiomatic Python.",
			Sections: []SectionFragment{
				{
					Title: "Basics",
					Topics: []TopicFragment{
						{Title: "Variables & Types"},
						{Title: "Control Flow", SubTopics: []TopicFragment{
							{Title: "if/elif/else"},
							{Title: "for loops"},
							{Title: "while loops"},
						}},
						{Title: "Functions"},
						{Title: "Modules & Imports"},
					},
				},
				{
					Title: "Data Structures",
					Topics: []TopicFragment{
						{Title: "Lists & Tuples"},
						{Title: "Dictionaries"},
						{Title: "Sets"},
						{Title: "Comprehensions"},
					},
				},
				{
					Title: "Going Deeper",
					Topics: []TopicFragment{
						{Title: "Classes & Dataclasses"},
						{Title: "Iterators & Generators"},
						{Title: "Error Handling"},
						{Title: "Virtual Environments"},
					},
				},
			},
		},
		{
			Language:    "JavaScript",
			Title:       "Modern JavaScript",
			Description: "The language of the web, post-ES2015.",
			Sections: []SectionFragment{
				{
					Title: "Language Core",
					Topics: []TopicFragment{
						{Title: "let/const & Scope"},
						{Title: "Arrow Functions"},
						{Title: "Destructuring & Spread"},
						{Title: "Template Literals"},
					},
				},
				{
					Title: "Async",
					Topics: []TopicFragment{
						{Title: "The Event Loop"},
						{Title: "Promises", SubTopics: []TopicFragment{
							{Title: "then/catch chains"},
							{Title: "Promise.all"},
						}},
						{Title: "async/await"},
						{Title: "fetch"},
					},
				},
				{
					Title: "In the Browser",
					Topics: []TopicFragment{
						{Title: "DOM Manipulation"},
						{Title: "Events"},
						{Title: "Storage APIs"},
					},
				},
			},
		},
		{
			Language:    "Go",
			Title:       "Go Roadmap",
			Description: "A practical path through the Go language and toolchain.",
			Sections: []SectionFragment{
				{
					Title: "Language",
					Topics: []TopicFragment{
						{Title: "Packages & Modules"},
						{Title: "Structs & Methods"},
						{Title: "Interfaces"},
						{Title: "Error Handling"},
					},
					SubSections: []SectionFragment{
						{
							Title: "Generics",
							Topics: []TopicFragment{
								{Title: "Type Parameters"},
								{Title: "Constraints"},
							},
						},
					},
				},
				{
					Title: "Concurrency",
					Topics: []TopicFragment{
						{Title: "Goroutines"},
						{Title: "Channels", SubTopics: []TopicFragment{
							{Title: "select"},
							{Title: "Buffered channels"},
						}},
						{Title: "sync Primitives"},
						{Title: "context.Context"},
					},
				},
				{
					Title: "Tooling",
					Topics: []TopicFragment{
						{Title: "go test"},
						{Title: "go vet & staticcheck"},
						{Title: "Profiling"},
					},
				},
			},
		},
	}
}
