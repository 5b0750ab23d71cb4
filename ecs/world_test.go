package ecs

import (
	"errors"
	"slices"
	"testing"

	"github.com/milk9111/roomscroller/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

type pos struct{ X, Y float64 }

type vel struct{ X, Y float64 }

type solid struct{}

type label struct{ Name string }

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld()
	a, b, c := CreateEntity(w), CreateEntity(w), CreateEntity(w)
	if got := len(Entities(w)); got != 3 {
		t.Fatalf("entities = %d, want 3", got)
	}
	if !DestroyEntity(w, b) {
		t.Fatalf("destroy of live entity failed")
	}
	if DestroyEntity(w, b) {
		t.Fatalf("second destroy should report false")
	}
	if IsAlive(w, b) || !IsAlive(w, a) || !IsAlive(w, c) {
		t.Fatalf("alive set wrong after destroy")
	}
	if got := Entities(w); !slices.Equal(got, []Entity{a, c}) {
		t.Fatalf("entities = %v, want [%v %v]", got, a, c)
	}
	if IsAlive(w, NoEntity) {
		t.Fatalf("NoEntity reported alive")
	}
}

func TestComponentStorage(t *testing.T) {
	w := NewWorld()
	hp := component.NewComponent[pos]()
	hv := component.NewComponent[vel]()
	e := CreateEntity(w)

	if err := Add(w, e, hp, &pos{X: 1}); err != nil {
		t.Fatalf("add pos: %v", err)
	}
	if err := Add(w, e, hp, &pos{X: 2}); err != nil {
		t.Fatalf("replace pos: %v", err)
	}
	p, ok := Get(w, e, hp)
	if !ok || p.X != 2 {
		t.Fatalf("pos = %+v ok=%v, want replaced value", p, ok)
	}
	p.Y = 5
	if again, _ := Get(w, e, hp); again.Y != 5 {
		t.Fatalf("Get must return the stored pointer")
	}

	if Has(w, e, hv) {
		t.Fatalf("vel present before add")
	}
	if _, ok := Get(w, e, hv); ok {
		t.Fatalf("Get of missing component reported ok")
	}
	if !Remove(w, e, hp) || Remove(w, e, hp) {
		t.Fatalf("remove should succeed once")
	}
	if Has(w, e, hp) {
		t.Fatalf("pos present after remove")
	}

	var zero component.ComponentHandle[pos]
	if err := Add(w, e, zero, &pos{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("zero handle: err = %v", err)
	}
}

func TestForEachArity(t *testing.T) {
	w := NewWorld()
	hp := component.NewComponent[pos]()
	hv := component.NewComponent[vel]()
	hs := component.NewComponent[solid]()
	hl := component.NewComponent[label]()

	// membership: which of pos, vel, solid, label each entity has
	members := [][4]bool{
		{true, false, false, false},
		{true, true, false, false},
		{true, true, true, false},
		{true, true, true, true},
		{false, true, true, true},
	}
	ents := make([]Entity, len(members))
	for i, m := range members {
		e := CreateEntity(w)
		ents[i] = e
		if m[0] {
			_ = Add(w, e, hp, &pos{X: float64(i)})
		}
		if m[1] {
			_ = Add(w, e, hv, &vel{})
		}
		if m[2] {
			_ = Add(w, e, hs, &solid{})
		}
		if m[3] {
			_ = Add(w, e, hl, &label{Name: e.String()})
		}
	}
	// destroyed entities must drop out of every query
	doomed := CreateEntity(w)
	_ = Add(w, doomed, hp, &pos{})
	_ = Add(w, doomed, hv, &vel{})
	_ = Add(w, doomed, hs, &solid{})
	_ = Add(w, doomed, hl, &label{})
	DestroyEntity(w, doomed)

	collect := func(run func(func(Entity))) []Entity {
		var out []Entity
		run(func(e Entity) { out = append(out, e) })
		slices.Sort(out)
		return out
	}

	tests := []struct {
		name string
		got  []Entity
		want []Entity
	}{
		{
			name: "one",
			got: collect(func(add func(Entity)) {
				ForEach(w, hp.Kind(), func(e Entity, _ *pos) { add(e) })
			}),
			want: ents[:4],
		},
		{
			name: "two",
			got: collect(func(add func(Entity)) {
				ForEach2(w, hp.Kind(), hv.Kind(), func(e Entity, _ *pos, _ *vel) { add(e) })
			}),
			want: ents[1:4],
		},
		{
			name: "three",
			got: collect(func(add func(Entity)) {
				ForEach3(w, hp.Kind(), hv.Kind(), hs.Kind(), func(e Entity, _ *pos, _ *vel, _ *solid) { add(e) })
			}),
			want: ents[2:4],
		},
		{
			name: "four",
			got: collect(func(add func(Entity)) {
				ForEach4(w, hp.Kind(), hv.Kind(), hs.Kind(), hl.Kind(), func(e Entity, _ *pos, _ *vel, _ *solid, l *label) {
					if l.Name != e.String() {
						t.Fatalf("label %q on %v", l.Name, e)
					}
					add(e)
				})
			}),
			want: ents[3:4],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestForEachUnusedStore(t *testing.T) {
	w := NewWorld()
	hp := component.NewComponent[pos]()
	hv := component.NewComponent[vel]()
	e := CreateEntity(w)
	_ = Add(w, e, hp, &pos{})

	calls := 0
	ForEach2(w, hp.Kind(), hv.Kind(), func(Entity, *pos, *vel) { calls++ })
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 when a store has never been used", calls)
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("reused handle must differ by generation")
	}
	if Has(w, fresh, h) {
		t.Fatalf("components must not survive destroy")
	}
	if err := Add(w, old, h, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
	if err := Add[int](w, fresh, h, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	for _, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, ha, intPtr(int(e.id()))); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, e3, hb, stringPtr("tag")); err != nil {
		t.Fatal(err)
	}

	if got := w.Query(ha.Kind()); len(got) != 3 {
		t.Fatalf("expected 3 entities with ha, got %v", got)
	}
	if got := w.Query(ha.Kind(), hb.Kind()); len(got) != 1 || got[0] != e3 {
		t.Fatalf("expected only e3, got %v", got)
	}
	if e, ok := w.First(hb.Kind()); !ok || e != e3 {
		t.Fatalf("expected First to find e3, got %v ok=%v", e, ok)
	}
	if got := w.Query(); got != nil {
		t.Fatalf("empty query should return nil, got %v", got)
	}

	Remove(w, e3, hb)
	if _, ok := w.First(hb.Kind()); ok {
		t.Fatalf("expected no entity after remove")
	}
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	reused := CreateEntity(w)

	tests := []struct {
		e    Entity
		want string
	}{
		{NoEntity, "none"},
		{first, "1@0"},
		{reused, "1@1"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
	if NoEntity.Valid() || !reused.Valid() {
		t.Fatalf("Valid mismatch")
	}
}
