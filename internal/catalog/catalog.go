package catalog

// Static levels of the hierarchy. Grades and categories are fixed; subjects
// and chapters come from the content table, with the fallbacks below
// keeping the menus navigable before anything has been uploaded.
var (
	Grades     = []string{"9", "10", "11", "12"}
	Categories = []string{"Short Notes", "PYQ", "Sample Papers", "Handwritten Notes", "Test Series", "Quizzes"}

	FallbackSubjects = []string{"Maths", "Physics", "Chemistry", "Biology", "English", "Hindi", "SST"}
	FallbackChapters = []string{"Chapter 1", "Chapter 2", "Chapter 3"}
)

// OrFallback substitutes the fallback list for an empty lookup result.
func OrFallback(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
