package catalog

import (
	"testing"

	"github.com/persona-sh/personas-site-go/internal/domain"
)

func TestNewStoreRejectsDuplicateSlug(t *testing.T) {
	personas := testPersonas()
	personas = append(personas, personas[0])
	if _, err := NewStore(personas, testCategories()); err == nil {
		t.Fatal("expected duplicate slug to be rejected")
	}
}

func TestNewStoreRejectsUnknownCategory(t *testing.T) {
	personas := testPersonas()
	personas[0].Category = "nope"
	if _, err := NewStore(personas, testCategories()); err == nil {
		t.Fatal("expected unknown category to be rejected")
	}
}

func TestNewStoreRejectsBadVersion(t *testing.T) {
	personas := testPersonas()
	personas[0].Version = "one point oh"
	if _, err := NewStore(personas, testCategories()); err == nil {
		t.Fatal("expected non-semver version to be rejected")
	}
}

func TestNewStoreRejectsBadWorkflowCommand(t *testing.T) {
	personas := testPersonas()
	personas[0].Workflows = []domain.Workflow{{Command: "gm", Name: "Bad"}}
	if _, err := NewStore(personas, testCategories()); err == nil {
		t.Fatal("expected workflow command without leading slash to be rejected")
	}
}

func TestStoreDefaultsListFieldsToEmpty(t *testing.T) {
	s := mustStore(t)
	p, ok := s.BySlug("c")
	if !ok {
		t.Fatal("persona c missing")
	}
	if p.Tags == nil || p.Integrations == nil || p.CompatibleWith == nil ||
		p.Workflows == nil || p.Blueprints == nil || p.Highlights == nil {
		t.Fatalf("list fields must default to empty, got %+v", p)
	}
}

func TestCategoryLabelFallsBackToSlug(t *testing.T) {
	s := mustStore(t)
	if got := s.CategoryLabel("sales"); got != "Sales" {
		t.Fatalf("expected label Sales, got %q", got)
	}
	if got := s.CategoryLabel("mystery"); got != "mystery" {
		t.Fatalf("expected raw slug fallback, got %q", got)
	}
}

func TestDefaultRegistryIsValid(t *testing.T) {
	s := Default()
	if s.Len() == 0 {
		t.Fatal("compiled-in registry should not be empty")
	}
	for _, p := range s.Personas() {
		if _, ok := s.BySlug(p.Slug); !ok {
			t.Fatalf("slug index missing %s", p.Slug)
		}
	}
}
