package placement

import (
	"testing"

	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/api"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/java"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/source"
	"github.com/exadel-inc/etoolbox-authoring-kit-sub005/target"
	"github.com/google/go-cmp/cmp"
)

func TestDoPlacementDefaultAcceptor(t *testing.T) {
	untagged := placed("untagged", "")
	first := placed("first", "first")
	orphan := placed("orphan", "NoSuchTab")
	members := NewMembersRegistry(list(untagged, first, orphan))

	// The default acceptor is whichever section comes first, whatever its
	// title.
	sections := NewSectionsRegistry(KindTab, From(tab("Second"), true), From(tab("First"), true))
	container := target.New("items")
	h := &Helper{Container: container, Sections: sections, Members: members, Renderer: &nameRenderer{}}
	h.DoPlacement()

	if diff := cmp.Diff([]string{"untagged"}, childNames(container.Get("second/items"))); diff != "" {
		t.Errorf("Second mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"first"}, childNames(container.Get("first/items"))); diff != "" {
		t.Errorf("First mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"orphan"}, sourceNames(members.GetAvailable())); diff != "" {
		t.Errorf("GetAvailable() mismatch (-want +got):\n%s", diff)
	}
}

func TestDoPlacementTombstone(t *testing.T) {
	hidden := placed("hidden", "Extra")
	shown := placed("shown", "")
	members := NewMembersRegistry(list(hidden, shown))

	sections := NewSectionsRegistry(KindTab, From(tab("Main"), true), From(tab("Extra"), true))
	sections.applyIgnored([]string{"Extra"}, true)

	container := target.New("items")
	r := &nameRenderer{}
	h := &Helper{Container: container, Sections: sections, Members: members, Renderer: r}
	h.DoPlacement()

	if diff := cmp.Diff([]string{"main"}, childNames(container)); diff != "" {
		t.Errorf("section nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"shown"}, r.rendered); diff != "" {
		t.Errorf("rendered mismatch (-want +got):\n%s", diff)
	}
	if got := members.State(hidden); got != CheckedOut {
		t.Errorf("State(hidden) = %v, want %v", got, CheckedOut)
	}
	if got := len(members.GetAvailable()); got != 0 {
		t.Errorf("len(GetAvailable()) = %d, want 0", got)
	}
}

func TestDoPlacementTombstoneFirst(t *testing.T) {
	untagged := placed("untagged", "")
	gone := placed("gone", "Gone")
	members := NewMembersRegistry(list(untagged, gone))

	// Ignoring the first section must not turn its tombstone into the
	// default acceptor.
	sections := NewSectionsRegistry(KindTab, From(tab("Gone"), true), From(tab("Main"), true))
	sections.applyIgnored([]string{"Gone"}, true)

	container := target.New("items")
	r := &nameRenderer{}
	h := &Helper{Container: container, Sections: sections, Members: members, Renderer: r}
	h.DoPlacement()

	if diff := cmp.Diff([]string{"Main", "Gone"}, sections.Titles()); diff != "" {
		t.Errorf("Titles() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"untagged"}, childNames(container.Get("main/items"))); diff != "" {
		t.Errorf("Main mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"untagged"}, r.rendered); diff != "" {
		t.Errorf("rendered mismatch (-want +got):\n%s", diff)
	}
	if got := members.State(gone); got != CheckedOut {
		t.Errorf("State(gone) = %v, want %v", got, CheckedOut)
	}
}

func TestDoPlacementRanking(t *testing.T) {
	t.Run("bound and selected", func(t *testing.T) {
		sec := From(tab("Main"), true)
		sec.AddSources(ranked("bound", "", 5))
		selected := ranked("selected", "Main", 1)
		members := NewMembersRegistry(list(selected))

		r := &nameRenderer{}
		h := &Helper{Container: target.New("items"), Sections: NewSectionsRegistry(KindTab, sec), Members: members, Renderer: r}
		h.DoPlacement()

		if diff := cmp.Diff([]string{"selected", "bound"}, r.rendered); diff != "" {
			t.Errorf("rendered mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bound only", func(t *testing.T) {
		sec := From(tab("Main"), true)
		sec.AddSources(ranked("high", "", 5), ranked("low", "", 1))

		r := &nameRenderer{}
		h := &Helper{Container: target.New("items"), Sections: NewSectionsRegistry(KindTab, sec), Members: NewMembersRegistry(nil), Renderer: r}
		h.DoPlacement()

		if diff := cmp.Diff([]string{"high", "low"}, r.rendered); diff != "" {
			t.Errorf("rendered mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDoPlacementSoftClaimFallback(t *testing.T) {
	inner := source.FromField(testClass, java.FieldModel{
		Name:        "inner",
		Type:        java.TypeModel{Name: "com.example.Inner"},
		Annotations: []java.AnnotationModel{ann(api.Tabs, "value", tabList("Inner"))},
	})
	deep := placed("deep", "Main/Inner")
	elsewhere := placed("elsewhere", "Other/Inner")
	members := NewMembersRegistry(list(inner, deep, elsewhere))

	// The renderer does not descend into the container, so the soft claim
	// on deep is never taken and deep falls back into Main.
	var during State
	r := &callbackRenderer{fn: func(m *source.Source) {
		if m == inner {
			during = members.State(deep)
		}
	}}
	container := target.New("items")
	h := &Helper{Container: container, Sections: NewSectionsRegistry(KindTab, From(tab("Main"), true)), Members: members, Renderer: r}
	h.DoPlacement()

	if during != SoftCheckedOut {
		t.Errorf("State(deep) while rendering the container = %v, want %v", during, SoftCheckedOut)
	}
	if got := members.State(deep); got != CheckedOut {
		t.Errorf("State(deep) = %v, want %v", got, CheckedOut)
	}
	if diff := cmp.Diff([]string{"inner", "deep"}, childNames(container.Get("main/items"))); diff != "" {
		t.Errorf("Main mismatch (-want +got):\n%s", diff)
	}
	if got := members.State(elsewhere); got != Available {
		t.Errorf("State(elsewhere) = %v, want %v", got, Available)
	}
}

type callbackRenderer struct {
	fn func(m *source.Source)
}

func (r *callbackRenderer) Render(m *source.Source, items *target.Target) *target.Target {
	r.fn(m)
	return items.CreateUniqueTarget(m.Name())
}
