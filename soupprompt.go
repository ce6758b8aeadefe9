// Package soupprompt is a small template-rendering and composition library
// for text templates with named placeholders.
//
// Templates use {{ and }} delimiters around a variable name:
//
//	Hello, {{name}}!
//
// Variable names are letters, digits, and underscores. A placeholder with
// empty or whitespace-only content is a template error.
//
// # Basic Usage
//
// Wrap a template in a Module and render it:
//
//	m, err := soupprompt.NewModule("Hello, {{name}}!")
//	result, err := m.Render(map[string]any{"name": "Alice"})
//	// result: "Hello, Alice!"
//
// Every variable that appears in the template must be present in the render
// input; a missing variable fails the whole render rather than producing
// partial output. Substituted values are not rescanned, so a value that
// itself contains {{ }} text is inserted literally.
//
// # Groups
//
// Related modules compose into a named group, keyed by each module's
// metadata name:
//
//	greeting := soupprompt.MustNewModule("Hi {{name}}", soupprompt.WithName("greeting"))
//	farewell := soupprompt.MustNewModule("Bye {{name}}", soupprompt.WithName("farewell"))
//
//	group, err := soupprompt.NewGroup("salutations",
//	    soupprompt.WithModules(greeting, farewell),
//	)
//	result, err := group.Render("greeting", map[string]any{"name": "Ann"})
//	// result: "Hi Ann"
//
// Module names are unique within a group; adding a second module under an
// existing name fails.
//
// # Parser Functions
//
// The parsing layer is exposed as stateless functions for callers that do
// not need the Module abstraction:
//
//	names := soupprompt.ExtractVariables("{{greeting}}, {{name}}!")
//	// names: ["greeting", "name"]
//
//	out, err := soupprompt.Render("{{x}} and {{x}}", map[string]any{"x": "A"}, []string{"x"})
//	// out: "A and A"
//
// An alternate delimiter pair is available on the *WithSyntax variants:
//
//	names := soupprompt.ExtractVariablesWithSyntax("<%user%>", soupprompt.Syntax{Open: "<%", Close: "%>"})
//
// Modules and groups always use the default syntax.
//
// # Documents
//
// Modules serialize to and from YAML frontmatter documents, and whole groups
// to YAML manifests:
//
//	m, err := soupprompt.ParseModuleDocument([]byte("---\nname: greeting\n---\nHi {{name}}"))
//	data, err := m.MarshalDocument()
//
// # Error Handling
//
// All failures are returned as structured errors with stable codes and
// metadata (the offending variable, module, or group name, and template
// positions where relevant):
//
//	_, err := m.Render(map[string]any{})
//	var customErr *cuserr.CustomError
//	if errors.As(err, &customErr) {
//	    missing, _ := customErr.GetMetadata("variable")
//	}
package soupprompt
