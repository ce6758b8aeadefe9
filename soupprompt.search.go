package soupprompt

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Search returns module names fuzzy-ranked against query, matching each
// module's name, description, and tags. An empty query returns every module
// name sorted. Names missing from the result simply did not match.
func (g *Group) Search(query string) []string {
	g.mu.RLock()
	names := g.sortedNames()
	searchStrings := make([]string, len(names))
	for i, name := range names {
		metadata := g.modules[name].metadata
		searchStrings[i] = fmt.Sprintf("%s %s %s",
			metadata.Name,
			metadata.Description,
			strings.Join(metadata.Tags, " "))
	}
	g.mu.RUnlock()

	if query == "" {
		return names
	}

	matches := fuzzy.Find(query, searchStrings)
	results := make([]string, 0, len(matches))
	for _, match := range matches {
		results = append(results, names[match.Index])
	}
	return results
}
