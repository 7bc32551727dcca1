package dict_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-utility-belts/dict"
)

func profile() *dict.Map[string, any] {
	address := dict.New[string, any]().Set("city", "London").Set("zip", "EC1")
	user := dict.New[string, any]().Set("name", "Alice").Set("address", address)
	return dict.New[string, any]().Set("user", user).Set("active", true)
}

// ─── Flatten / Unflatten ──────────────────────────────────────────────────────

func TestFlatten(t *testing.T) {
	flat := dict.Flatten(profile())
	assertSlice(t, flat.Keys(), []string{"user.name", "user.address.city", "user.address.zip", "active"})
	if v, _ := flat.Get("user.address.city"); v != "London" {
		t.Fatalf("user.address.city = %v; want London", v)
	}
}

func TestFlattenCustomSeparatorAndPlainMaps(t *testing.T) {
	m := dict.New[string, any]().
		Set("db", map[string]any{"port": 5432, "host": "localhost"}).
		Set("empty", map[string]any{})
	flat := dict.Flatten(m, "/")
	assertSlice(t, flat.Keys(), []string{"db/host", "db/port", "empty"})
}

func TestUnflattenInvertsFlatten(t *testing.T) {
	original := profile()
	nested, err := dict.Unflatten(dict.Flatten(original))
	if err != nil {
		t.Fatalf("Unflatten: %v", err)
	}
	if got, want := nested.String(), original.String(); got != want {
		t.Fatalf("Unflatten(Flatten(m)) = %s; want %s", got, want)
	}
}

func TestUnflattenConflicts(t *testing.T) {
	leafFirst := dict.New[string, any]().Set("a", 1).Set("a.b", 2)
	if _, err := dict.Unflatten(leafFirst); !errors.Is(err, dict.ErrInvalidPath) {
		t.Fatalf("leaf then nested: err = %v; want ErrInvalidPath", err)
	}
	nestedFirst := dict.New[string, any]().Set("a.b", 2).Set("a", 1)
	if _, err := dict.Unflatten(nestedFirst); !errors.Is(err, dict.ErrInvalidPath) {
		t.Fatalf("nested then leaf: err = %v; want ErrInvalidPath", err)
	}
	emptySegment := dict.New[string, any]().Set("a..b", 1)
	if _, err := dict.Unflatten(emptySegment); !errors.Is(err, dict.ErrInvalidPath) {
		t.Fatalf("empty segment: err = %v; want ErrInvalidPath", err)
	}
}

// ─── DeepGet ──────────────────────────────────────────────────────────────────

func TestDeepGet(t *testing.T) {
	m := profile()
	m.Set("meta", map[string]any{"tags": map[string]any{"primary": "admin"}})

	tests := []struct {
		path []string
		want any
		ok   bool
	}{
		{[]string{"user", "address", "city"}, "London", true},
		{[]string{"meta", "tags", "primary"}, "admin", true},
		{[]string{"user", "missing"}, nil, false},
		{[]string{"active", "nested"}, nil, false},
		{[]string{"active"}, true, true},
	}
	for _, tc := range tests {
		got, ok := dict.DeepGet(m, tc.path...).Get()
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("DeepGet(%v) = %v, %v; want %v, %v", tc.path, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNative(t *testing.T) {
	native, ok := dict.Native(profile()).(map[string]any)
	if !ok {
		t.Fatalf("Native returned %T; want map[string]any", dict.Native(profile()))
	}
	user := native["user"].(map[string]any)
	address := user["address"].(map[string]any)
	if address["city"] != "London" {
		t.Fatalf("city = %v; want London", address["city"])
	}
}

// ─── Dot paths ────────────────────────────────────────────────────────────────

func plainTree() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"address": map[string]any{"city": "London"},
		},
		"count": 3,
	}
}

func TestDotGet(t *testing.T) {
	m := plainTree()
	if v := dict.Get(m, "user.address.city").OrEmpty(); v != "London" {
		t.Fatalf("Get(user.address.city) = %v; want London", v)
	}
	for _, path := range []string{"user.missing", "count.nested", "", "user..name"} {
		if dict.Get(m, path).IsPresent() {
			t.Fatalf("Get(%q) present; want absent", path)
		}
	}
}

func TestDotSet(t *testing.T) {
	m := plainTree()
	if err := dict.Set(m, "user.address.zip", "EC1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := dict.Set(m, "count.value", 4); err != nil {
		t.Fatalf("Set over leaf: %v", err)
	}
	if !dict.HasAll(m, "user.address.zip", "user.address.city", "count.value") {
		t.Fatal("HasAll = false after Set")
	}
	if err := dict.Set(m, "a..b", 1); !errors.Is(err, dict.ErrInvalidPath) {
		t.Fatalf("Set(a..b) err = %v; want ErrInvalidPath", err)
	}
}

func TestDotHasAndForget(t *testing.T) {
	m := plainTree()
	if !dict.HasAny(m, "nope", "user.name") || dict.HasAny(m, "nope", "user.nope") {
		t.Fatal("HasAny returned the wrong answer")
	}
	if !dict.Forget(m, "user.address") {
		t.Fatal("Forget(user.address) = false; want true")
	}
	if dict.Has(m, "user.address.city") || !dict.Has(m, "user.name") {
		t.Fatal("Forget removed the wrong value")
	}
	if dict.Forget(m, "user.address") {
		t.Fatal("second Forget = true; want false")
	}
}

func TestDeepMerge(t *testing.T) {
	dst := plainTree()
	dict.DeepMerge(dst, map[string]any{
		"user":  map[string]any{"address": map[string]any{"zip": "EC1"}},
		"count": 5,
	})
	if !dict.HasAll(dst, "user.name", "user.address.city", "user.address.zip") {
		t.Fatal("DeepMerge lost nested keys")
	}
	if dst["count"] != 5 {
		t.Fatalf("count = %v; want 5", dst["count"])
	}
}

// ─── Query ────────────────────────────────────────────────────────────────────

func TestQuery(t *testing.T) {
	doc := dict.New[string, any]().Set("users", []any{
		dict.New[string, any]().Set("name", "Alice"),
		map[string]any{"name": "Bob"},
	})

	got, err := dict.Query(doc, "$.users[0].name")
	if err != nil || got != "Alice" {
		t.Fatalf("Query first name = %v, %v; want Alice", got, err)
	}

	all, err := dict.Query(doc, "$.users[*].name")
	if err != nil {
		t.Fatalf("Query wildcard: %v", err)
	}
	names, ok := all.([]any)
	if !ok || len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Fatalf("Query wildcard = %v; want [Alice Bob]", all)
	}

	if _, err := dict.Query(doc, "$.missing"); !errors.Is(err, dict.ErrInvalidPath) {
		t.Fatalf("Query missing err = %v; want ErrInvalidPath", err)
	}
}

// ─── Encoding ─────────────────────────────────────────────────────────────────

func TestToJSONKeepsOrder(t *testing.T) {
	m := dict.New[string, any]().Set("name", "Alice").Set("age", 30).Set("tags", []string{"a"})
	got, err := dict.ToJSON(m)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if want := `{"name":"Alice","age":30,"tags":["a"]}`; got != want {
		t.Fatalf("ToJSON = %s; want %s", got, want)
	}

	pretty, err := dict.ToJSON(dict.New[string, int]().Set("b", 1), "  ")
	if err != nil {
		t.Fatalf("ToJSON indent: %v", err)
	}
	if want := "{\n  \"b\": 1\n}"; pretty != want {
		t.Fatalf("ToJSON indent = %q; want %q", pretty, want)
	}
}

func TestToYAMLKeepsOrder(t *testing.T) {
	got, err := dict.ToYAML(profile())
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	want := "user:\n  name: Alice\n  address:\n    city: London\n    zip: EC1\nactive: true\n"
	if got != want {
		t.Fatalf("ToYAML =\n%s\nwant\n%s", got, want)
	}
}

func TestToTOML(t *testing.T) {
	m := dict.New[string, any]().Set("title", "demo").Set("owner", dict.New[string, any]().Set("name", "Alice"))
	got, err := dict.ToTOML(m)
	if err != nil {
		t.Fatalf("ToTOML: %v", err)
	}
	for _, want := range []string{`title = "demo"`, "[owner]", `name = "Alice"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("ToTOML output %q missing %q", got, want)
		}
	}
	if _, err := dict.ToTOML([]any{1}); err == nil {
		t.Fatal("ToTOML(list) err = nil; want error")
	}
}
