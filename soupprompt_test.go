package soupprompt_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LorenzoBalderrama/SoupPrompt"
	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E Integration Tests - Zero Mocks
// These tests exercise the full system from public API through to final output.

func TestE2E_BasicRender(t *testing.T) {
	module := soupprompt.MustNewModule("Hello, {{user}}!")

	result, err := module.Render(map[string]any{"user": "Alice"})

	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", result)
}

func TestE2E_MultipleVariables(t *testing.T) {
	module := soupprompt.MustNewModule("{{greeting}}, {{name}}! Today is {{day}}.")

	result, err := module.Render(map[string]any{
		"greeting": "Hello",
		"name":     "World",
		"day":      "Monday",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello, World! Today is Monday.", result)
}

func TestE2E_RepeatedVariable(t *testing.T) {
	module := soupprompt.MustNewModule("{{word}} and {{word}} again")

	result, err := module.Render(map[string]any{"word": "echo"})

	require.NoError(t, err)
	assert.Equal(t, "echo and echo again", result)
}

func TestE2E_MissingVariableFails(t *testing.T) {
	module := soupprompt.MustNewModule("Hello, {{user}}!")

	_, err := module.Render(map[string]any{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestE2E_MissingVariableReportsName(t *testing.T) {
	module := soupprompt.MustNewModule("Hello, {{user}}!")

	_, err := module.Render(map[string]any{})
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	name, ok := customErr.GetMetadata(soupprompt.MetaKeyVariable)
	require.True(t, ok)
	assert.Equal(t, "user", name)
}

func TestE2E_NumericValues(t *testing.T) {
	module := soupprompt.MustNewModule("Count: {{count}}, Price: ${{price}}")

	result, err := module.Render(map[string]any{
		"count": 42,
		"price": 19.99,
	})

	require.NoError(t, err)
	assert.Contains(t, result, "Count: 42")
	assert.Contains(t, result, "Price: $19.99")
}

func TestE2E_BooleanValue(t *testing.T) {
	module := soupprompt.MustNewModule("Active: {{active}}")

	result, err := module.Render(map[string]any{"active": true})

	require.NoError(t, err)
	assert.Equal(t, "Active: true", result)
}

func TestE2E_PlainTextOnly(t *testing.T) {
	module := soupprompt.MustNewModule("Just plain text, no placeholders here.")

	result, err := module.Render(map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, "Just plain text, no placeholders here.", result)
}

func TestE2E_WhitespacePreservation(t *testing.T) {
	module := soupprompt.MustNewModule("  {{x}} with spacing  ")

	result, err := module.Render(map[string]any{"x": "text"})

	require.NoError(t, err)
	assert.Equal(t, "  text with spacing  ", result)
}

func TestE2E_NewlinePreservation(t *testing.T) {
	module := soupprompt.MustNewModule("Line 1\n{{middle}}\nLine 3")

	result, err := module.Render(map[string]any{"middle": "Line 2"})

	require.NoError(t, err)
	assert.Equal(t, "Line 1\nLine 2\nLine 3", result)
}

func TestE2E_ValueWithDelimitersInsertedLiterally(t *testing.T) {
	module := soupprompt.MustNewModule("Say {{phrase}}")

	result, err := module.Render(map[string]any{"phrase": "{{not_a_variable}}"})

	require.NoError(t, err)
	assert.Equal(t, "Say {{not_a_variable}}", result)
}

func TestE2E_CustomDelimiters(t *testing.T) {
	syntax := soupprompt.Syntax{Open: "<%", Close: "%>"}
	template := "Hello, <%user%>!"

	required := soupprompt.ExtractVariablesWithSyntax(template, syntax)
	result, err := soupprompt.RenderWithSyntax(template,
		map[string]any{"user": "Alice"}, required, syntax)

	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", result)
}

func TestE2E_RenderSubsetKeepsOtherPlaceholders(t *testing.T) {
	template := "Hello {{user}}, see {{docs}}"

	result, err := soupprompt.Render(template,
		map[string]any{"user": "Alice"}, []string{"user"})

	require.NoError(t, err)
	assert.Equal(t, "Hello Alice, see {{docs}}", result)
}

func TestE2E_EmptyTemplateFails(t *testing.T) {
	_, err := soupprompt.NewModule("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestE2E_EmptyPlaceholderFails(t *testing.T) {
	_, err := soupprompt.NewModule("Hi {{}} there")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholder")
}

func TestE2E_ValidateReportsPosition(t *testing.T) {
	err := soupprompt.Validate("Hi {{}}!")
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	line, ok := customErr.GetMetadata(soupprompt.MetaKeyLine)
	require.True(t, ok)
	assert.Equal(t, "1", line)

	column, ok := customErr.GetMetadata(soupprompt.MetaKeyColumn)
	require.True(t, ok)
	assert.Equal(t, "4", column)
}

func TestE2E_RequiredVariablesSorted(t *testing.T) {
	module := soupprompt.MustNewModule("{{zeta}} {{alpha}} {{mid}}")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, module.RequiredVariables())
}

func TestE2E_BuildOnceRenderMany(t *testing.T) {
	module := soupprompt.MustNewModule("Hello, {{user}}!")

	users := []string{"Alice", "Bob", "Charlie"}
	for _, user := range users {
		result, err := module.Render(map[string]any{"user": user})
		require.NoError(t, err)
		assert.Equal(t, "Hello, "+user+"!", result)
	}
}

func TestE2E_ModuleMetadata(t *testing.T) {
	module := soupprompt.MustNewModule("Hello, {{user}}!",
		soupprompt.WithMetadata(soupprompt.Metadata{
			Name:        "greeting",
			Description: "a friendly greeting",
			Tags:        []string{"intro"},
			Version:     "1.0.0",
		}))

	metadata := module.Metadata()
	assert.Equal(t, "greeting", metadata.Name)
	assert.Equal(t, "a friendly greeting", metadata.Description)
	assert.Equal(t, []string{"intro"}, metadata.Tags)
	assert.Equal(t, "1.0.0", metadata.Version)
}

func TestE2E_MustNewModuleDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		soupprompt.MustNewModule("Hello, {{user}}!")
	})
}

func TestE2E_ExtractVariables(t *testing.T) {
	names := soupprompt.ExtractVariables("{{b}} {{a}} {{b}} text {{c}}")

	assert.Equal(t, []string{"a", "b", "c"}, names)
}

// ============================================================================
// Group Tests
// ============================================================================

func TestE2E_Group_AddAndRender(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")
	module := soupprompt.MustNewModule("Hello, {{user}}!",
		soupprompt.WithName("greeting"))

	require.NoError(t, group.Add(module))

	result, err := group.Render("greeting", map[string]any{"user": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", result)
}

func TestE2E_Group_RenderUnknownModule(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")

	_, err := group.Render("missing", map[string]any{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestE2E_Group_DuplicateAdd(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")
	first := soupprompt.MustNewModule("one", soupprompt.WithName("twin"))
	second := soupprompt.MustNewModule("two", soupprompt.WithName("twin"))

	require.NoError(t, group.Add(first))

	err := group.Add(second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestE2E_Group_ListModulesSorted(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")
	for _, name := range []string{"zulu", "alpha", "mike"} {
		module := soupprompt.MustNewModule("content", soupprompt.WithName(name))
		require.NoError(t, group.Add(module))
	}

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, group.ListModules())
}

func TestE2E_Group_HasAndCount(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")
	assert.False(t, group.Has("greeting"))
	assert.Equal(t, 0, group.Count())

	module := soupprompt.MustNewModule("Hello!", soupprompt.WithName("greeting"))
	require.NoError(t, group.Add(module))

	assert.True(t, group.Has("greeting"))
	assert.Equal(t, 1, group.Count())
}

func TestE2E_Group_WithModulesOption(t *testing.T) {
	group := soupprompt.MustNewGroup("agents",
		soupprompt.WithModules(
			soupprompt.MustNewModule("Hi {{user}}", soupprompt.WithName("hello")),
			soupprompt.MustNewModule("Bye {{user}}", soupprompt.WithName("goodbye")),
		))

	assert.Equal(t, 2, group.Count())

	result, err := group.Render("goodbye", map[string]any{"user": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Bye Alice", result)
}

func TestE2E_Group_ValidateAll(t *testing.T) {
	group := soupprompt.MustNewGroup("agents",
		soupprompt.WithModules(
			soupprompt.MustNewModule("Hi {{user}}", soupprompt.WithName("hello")),
			soupprompt.MustNewModule("plain text", soupprompt.WithName("static")),
		))

	assert.NoError(t, group.ValidateAll())
}

func TestE2E_Group_SearchByDescription(t *testing.T) {
	group := soupprompt.MustNewGroup("agents",
		soupprompt.WithModules(
			soupprompt.MustNewModule("Hi!", soupprompt.WithMetadata(soupprompt.Metadata{
				Name:        "greeting",
				Description: "says hello",
				Tags:        []string{"intro"},
			})),
			soupprompt.MustNewModule("Bye!", soupprompt.WithMetadata(soupprompt.Metadata{
				Name:        "farewell",
				Description: "says goodbye",
				Tags:        []string{"outro"},
			})),
		))

	results := group.Search("goodbye")

	assert.Equal(t, []string{"farewell"}, results)
}

func TestE2E_Group_SearchEmptyQueryListsAll(t *testing.T) {
	group := soupprompt.MustNewGroup("agents",
		soupprompt.WithModules(
			soupprompt.MustNewModule("Hi!", soupprompt.WithName("greeting")),
			soupprompt.MustNewModule("Bye!", soupprompt.WithName("farewell")),
		))

	assert.Equal(t, []string{"farewell", "greeting"}, group.Search(""))
}

func TestE2E_Group_ConcurrentRender(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")
	module := soupprompt.MustNewModule("Hello, {{user}}!",
		soupprompt.WithName("greeting"))
	require.NoError(t, group.Add(module))

	// Render concurrently
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			result, err := group.Render("greeting", map[string]any{"user": "Alice"})
			assert.NoError(t, err)
			assert.Equal(t, "Hello, Alice!", result)
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestE2E_Group_ConcurrentAdd(t *testing.T) {
	group := soupprompt.MustNewGroup("agents")

	// Add modules concurrently
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(idx int) {
			name := "module" + string(rune('0'+idx))
			module := soupprompt.MustNewModule("content", soupprompt.WithName(name))
			err := group.Add(module)
			// Distinct names, every add should land
			assert.NoError(t, err)
			done <- true
		}(i)
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}

	// Verify state is consistent
	assert.Equal(t, 10, group.Count())
}

func TestE2E_MustNewGroupDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		soupprompt.MustNewGroup("agents")
	})
}

// ============================================================================
// Document Tests
// ============================================================================

func TestE2E_Document_ParseWithFrontmatter(t *testing.T) {
	doc := []byte(`---
name: greeting
description: a friendly greeting
tags:
  - intro
version: 1.0.0
---
Hello, {{user}}!`)

	module, err := soupprompt.ParseModuleDocument(doc)
	require.NoError(t, err)

	metadata := module.Metadata()
	assert.Equal(t, "greeting", metadata.Name)
	assert.Equal(t, "a friendly greeting", metadata.Description)

	result, err := module.Render(map[string]any{"user": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", result)
}

func TestE2E_Document_PlainText(t *testing.T) {
	module, err := soupprompt.ParseModuleDocument([]byte("Hello, {{user}}!"))
	require.NoError(t, err)

	result, err := module.Render(map[string]any{"user": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Bob!", result)
}

func TestE2E_Document_MarshalRoundTrip(t *testing.T) {
	original := soupprompt.MustNewModule("Hello, {{user}}!",
		soupprompt.WithMetadata(soupprompt.Metadata{
			Name:        "greeting",
			Description: "a friendly greeting",
		}))

	data, err := original.MarshalDocument()
	require.NoError(t, err)

	parsed, err := soupprompt.ParseModuleDocument(data)
	require.NoError(t, err)
	assert.Equal(t, original.Template(), parsed.Template())
	assert.Equal(t, original.Metadata().Name, parsed.Metadata().Name)
}

func TestE2E_Document_FileRoundTrip(t *testing.T) {
	module := soupprompt.MustNewModule("Hello, {{user}}!",
		soupprompt.WithName("greeting"))
	path := filepath.Join(t.TempDir(), "greeting.md")

	require.NoError(t, module.WriteDocumentFile(path))

	loaded, err := soupprompt.ParseModuleFile(path)
	require.NoError(t, err)
	assert.Equal(t, "greeting", loaded.Name())

	result, err := loaded.Render(map[string]any{"user": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", result)
}

func TestE2E_Manifest_ParseAndRender(t *testing.T) {
	manifest := []byte(`name: onboarding
description: onboarding prompts
modules:
  - name: welcome
    template: "Welcome, {{user}}!"
  - name: setup
    template: "Configure {{feature}} next."`)

	group, err := soupprompt.ParseGroupManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, "onboarding", group.Name())
	assert.Equal(t, 2, group.Count())

	result, err := group.Render("welcome", map[string]any{"user": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome, Alice!", result)
}

func TestE2E_Manifest_RoundTrip(t *testing.T) {
	group := soupprompt.MustNewGroup("onboarding",
		soupprompt.WithModules(
			soupprompt.MustNewModule("Welcome, {{user}}!", soupprompt.WithName("welcome")),
			soupprompt.MustNewModule("Goodbye, {{user}}!", soupprompt.WithName("farewell")),
		))

	data, err := group.MarshalManifest()
	require.NoError(t, err)

	parsed, err := soupprompt.ParseGroupManifest(data)
	require.NoError(t, err)
	assert.Equal(t, group.Name(), parsed.Name())
	assert.Equal(t, group.ListModules(), parsed.ListModules())

	result, err := parsed.Render("welcome", map[string]any{"user": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome, Bob!", result)
}

func TestE2E_ManifestFile_RoundTrip(t *testing.T) {
	group := soupprompt.MustNewGroup("onboarding",
		soupprompt.WithModules(
			soupprompt.MustNewModule("Welcome, {{user}}!", soupprompt.WithName("welcome")),
		))
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	require.NoError(t, group.WriteManifestFile(path))

	// The manifest on disk is plain YAML
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "name: onboarding")

	loaded, err := soupprompt.ParseGroupManifestFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Has("welcome"))
}
