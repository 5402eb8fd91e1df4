package personafile

import (
	"strings"
	"testing"
)

var testCategorySlugs = []string{"executive", "developer", "sales"}

const validManifest = `
name: my-persona
display_name: My Persona
version: 1.0.0
description: >
  Does things, for people.
author:
  name: Some Person
  github: some-person
category: executive
tags: [ops, automation]
compatible_with:
  - Claude Code
integrations:
  - name: gmail
    type: mcp
    required: true
    purpose: "Email triage"
workflows:
  - command: /gm
    name: Morning Briefing
    description: "Pulls calendar, tasks, inbox"
highlights:
  - one
  - two
  - three
repository: https://github.com/some-person/my-persona
`

func TestParseAndValidateCleanManifest(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Name != "my-persona" || m.Author.Github != "some-person" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
	if problems := m.Validate(testCategorySlugs); len(problems) != 0 {
		t.Fatalf("expected clean validation, got %v", problems)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("name: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateFindsProblems(t *testing.T) {
	m, err := Parse([]byte(strings.NewReplacer(
		"version: 1.0.0", "version: not-a-version",
		"category: executive", "category: astrology",
		"command: /gm", "command: gm",
	).Replace(validManifest)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	problems := m.Validate(testCategorySlugs)
	fields := make(map[string]bool)
	for _, p := range problems {
		fields[p.Field] = true
	}
	for _, want := range []string{"version", "category", "workflows"} {
		if !fields[want] {
			t.Fatalf("expected a %s problem, got %v", want, problems)
		}
	}
}

func TestValidateRequiresCoreFields(t *testing.T) {
	m := &Manifest{}
	problems := m.Validate(testCategorySlugs)
	if len(problems) == 0 {
		t.Fatal("empty manifest must not validate")
	}
	fields := make(map[string]bool)
	for _, p := range problems {
		fields[p.Field] = true
	}
	for _, want := range []string{"name", "display_name", "version", "description", "author.name", "category", "tags"} {
		if !fields[want] {
			t.Fatalf("missing required-field problem for %s: %v", want, problems)
		}
	}
}

func TestValidateTagShape(t *testing.T) {
	m, err := Parse([]byte(strings.Replace(validManifest, "tags: [ops, automation]", "tags: [OPS, automation]", 1)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	problems := m.Validate(testCategorySlugs)
	found := false
	for _, p := range problems {
		if p.Field == "tags" && strings.Contains(p.Message, "OPS") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected uppercase tag to be flagged, got %v", problems)
	}
}
